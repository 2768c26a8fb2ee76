package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tasca-io/tasca/internal/task"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store, _, _, err := loadStore()
	if err != nil {
		return err
	}

	st := store.Stats()
	fmt.Printf("Tasks: %d total, %d completed, %d pending (%s done)\n",
		st.Total, st.Completed, st.Pending, completionPercent(st))

	if st.Total == 0 {
		return nil
	}

	fmt.Println("\nBy category:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range task.Categories() {
		if count, ok := st.ByCategory[c]; ok {
			fmt.Fprintf(w, "  %s\t%d\n", c, count)
		}
	}
	return w.Flush()
}

// completionPercent renders the completed share of st, with a defined answer
// for the empty collection.
func completionPercent(st task.Stats) string {
	if st.Total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", st.Completed*100/st.Total)
}
