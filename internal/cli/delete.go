package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <number>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long:    `Deletes the task with the given number. Tasks after it move up one position.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	i, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	store, path, _, err := loadStore()
	if err != nil {
		return err
	}

	t, err := store.Task(i)
	if err != nil {
		return err
	}
	title := t.Title

	if err := store.Delete(i); err != nil {
		return err
	}
	if err := saveStore(store, path); err != nil {
		return err
	}

	fmt.Printf("Deleted: %s\n", title)
	return nil
}
