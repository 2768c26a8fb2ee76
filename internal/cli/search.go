package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tasca-io/tasca/internal/task"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find tasks by title or description",
	Long:  `Searches titles and descriptions case-insensitively. Numbers in the output refer to positions in the full list.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, _, _, err := loadStore()
	if err != nil {
		return err
	}

	term := strings.Join(args, " ")
	matches, err := store.Search(term)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Printf("No tasks match %q.\n", term)
		return nil
	}

	// Positions come from the full list so the numbers stay usable with
	// 'done' and 'delete'.
	matched := make(map[*task.Task]bool, len(matches))
	for _, m := range matches {
		matched[m] = true
	}

	var rows []numberedTask
	for i, t := range store.Tasks() {
		if matched[t] {
			rows = append(rows, numberedTask{n: i + 1, t: t})
		}
	}

	return printTaskTable(rows)
}
