package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tasca-io/tasca/internal/task"
)

var (
	listPending  bool
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `Lists tasks with their one-based numbers. The numbers are what 'done' and 'delete' take.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listPending, "pending", false, "Show only tasks that are not completed")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Show only tasks in this category")
}

// numberedTask pairs a task with its one-based display number, which has to
// survive filtering.
type numberedTask struct {
	n int
	t *task.Task
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, _, err := loadStore()
	if err != nil {
		return err
	}

	var categoryFilter task.Category
	if listCategory != "" {
		if categoryFilter, err = task.ParseCategory(listCategory); err != nil {
			return err
		}
	}

	if store.Len() == 0 {
		fmt.Println("No tasks yet. Add one with 'tasca add <title>'.")
		return nil
	}

	var rows []numberedTask
	for i, t := range store.Tasks() {
		if listPending && t.Completed {
			continue
		}
		if categoryFilter != "" && t.Category != categoryFilter {
			continue
		}
		rows = append(rows, numberedTask{n: i + 1, t: t})
	}

	if len(rows) == 0 {
		fmt.Println("No tasks match the filter.")
		return nil
	}

	return printTaskTable(rows)
}

// printTaskTable renders numbered tasks as an aligned table.
func printTaskTable(rows []numberedTask) error {
	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSTATUS\tPRIORITY\tCATEGORY\tTITLE\tDUE\tCREATED")

	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.n,
			checkbox(row.t),
			row.t.Priority,
			row.t.Category,
			row.t.Title,
			formatDue(row.t, now),
			humanize.Time(row.t.CreatedAt),
		)
	}

	return w.Flush()
}
