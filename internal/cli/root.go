package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tasca-io/tasca/internal/version"
)

var (
	verbose   bool
	tasksFlag string

	// logger reports CLI diagnostics on stderr so command output stays
	// pipeable. Debug level is gated behind --verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
)

var rootCmd = &cobra.Command{
	Use:     "tasca",
	Short:   "Personal task tracker for the terminal",
	Long:    `Tasca keeps your tasks in a plain JSON file. Run it without arguments for the interactive session, or use the subcommands below when scripting.`,
	Version: version.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&tasksFlag, "file", "f", "", "Tasks file path (overrides config)")
	rootCmd.AddCommand(addCmd, listCmd, doneCmd, deleteCmd, searchCmd, statsCmd, doctorCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
