package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tasca-io/tasca/internal/task"
)

var (
	addDesc     string
	addPriority string
	addDue      string
	addCategory string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long:  `Adds a task to the list. Multiple words are joined into one title, so quoting is optional.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addDesc, "desc", "d", "", "Task description")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: low, medium, high")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category: work, personal, general, shopping, other")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, path, cfg, err := loadStore()
	if err != nil {
		return err
	}

	priority := cfg.Priority()
	if addPriority != "" {
		if priority, err = task.ParsePriority(addPriority); err != nil {
			return err
		}
	}

	category := cfg.Category()
	if addCategory != "" {
		if category, err = task.ParseCategory(addCategory); err != nil {
			return err
		}
	}

	due, err := parseDueDate(addDue)
	if err != nil {
		return err
	}

	t, err := store.Add(strings.Join(args, " "), addDesc, priority, due, category)
	if err != nil {
		return err
	}
	if err := saveStore(store, path); err != nil {
		return err
	}

	fmt.Printf("Added task %d: %s\n", store.Len(), t.Title)
	return nil
}
