package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <number>",
	Short: "Toggle a task between completed and pending",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	i, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	store, path, _, err := loadStore()
	if err != nil {
		return err
	}

	completed, err := store.Complete(i)
	if err != nil {
		return err
	}
	if err := saveStore(store, path); err != nil {
		return err
	}

	t, err := store.Task(i)
	if err != nil {
		return err
	}
	if completed {
		fmt.Printf("Completed: %s\n", t.Title)
	} else {
		fmt.Printf("Reopened: %s\n", t.Title)
	}
	return nil
}
