package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasca-io/tasca/internal/config"
	"github.com/tasca-io/tasca/internal/task"
	"github.com/tasca-io/tasca/internal/taskfile"
)

var doctorCmd = &cobra.Command{
	Use:          "doctor",
	Short:        "Check config and tasks file health",
	Long:         `Checks that the config parses, the tasks file is readable, and every stored record matches the expected layout.`,
	SilenceUsage: true,
	RunE:         runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println("Tasca Doctor")
	fmt.Println("============")
	fmt.Println()

	allOK := true

	// Config
	fmt.Printf("Config: %s\n", config.Path())
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  ❌ %v\n", err)
		allOK = false
	} else if _, statErr := os.Stat(config.Path()); statErr != nil {
		fmt.Println("  ✅ not present, using defaults")
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	if cfg == nil && tasksFlag == "" {
		// Without config there is no tasks file path to check.
		return fmt.Errorf("doctor found problems")
	}

	var path string
	if cfg != nil {
		path = tasksPath(cfg)
	} else {
		path = tasksFlag
	}

	// Tasks file
	fmt.Printf("Tasks file: %s\n", path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("  ✅ not created yet (first save will create it)")
		if allOK {
			return nil
		}
		return fmt.Errorf("doctor found problems")
	}

	records, err := taskfile.Load(path)
	if err != nil {
		fmt.Printf("  ❌ %v\n", err)
		allOK = false
	} else {
		fmt.Printf("  ✅ parses (%d record(s))\n", len(records))

		store := task.NewStore()
		if err := store.LoadRecords(records); err != nil {
			fmt.Printf("  ❌ %v\n", err)
			allOK = false
		} else {
			fmt.Println("  ✅ every record loads as a task")
		}
	}

	// Strict layout check
	result, err := taskfile.Validate(path)
	if err != nil {
		fmt.Printf("  ❌ schema check failed: %v\n", err)
		allOK = false
	} else if result.Valid {
		fmt.Println("  ✅ matches the expected layout")
	} else {
		allOK = false
		for _, verr := range result.Errors {
			fmt.Printf("  ❌ %v\n", verr)
		}
	}

	if !allOK {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("\nAll good.")
	return nil
}
