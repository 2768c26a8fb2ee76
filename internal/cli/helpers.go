package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tasca-io/tasca/internal/config"
	"github.com/tasca-io/tasca/internal/task"
	"github.com/tasca-io/tasca/internal/taskfile"
)

// tasksPath resolves the tasks file location: the --file flag when given,
// the configured path otherwise.
func tasksPath(cfg *config.Config) string {
	if tasksFlag != "" {
		return tasksFlag
	}
	return cfg.TasksFile
}

// loadStore reads config and the tasks file into a fresh store.
func loadStore() (*task.Store, string, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", nil, err
	}
	path := tasksPath(cfg)

	records, err := taskfile.Load(path)
	if err != nil {
		return nil, "", nil, err
	}

	store := task.NewStore()
	if err := store.LoadRecords(records); err != nil {
		return nil, "", nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	logger.Debug("loaded tasks", "path", path, "count", store.Len())
	return store, path, cfg, nil
}

// saveStore writes the store back to path.
func saveStore(store *task.Store, path string) error {
	start := time.Now()
	if err := taskfile.Save(path, store.Records()); err != nil {
		return err
	}
	logger.Debug("saved tasks", "path", path, "count", store.Len(), "took", time.Since(start))
	return nil
}

// parsePosition converts a one-based task number argument to a zero-based
// store position.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: task number must be a positive integer, got %q", task.ErrInvalidArgument, arg)
	}
	return n - 1, nil
}

// parseDueDate parses a --due flag value. Empty means no due date.
func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	due, err := time.Parse(task.DueDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date %q (expected YYYY-MM-DD)", task.ErrInvalidArgument, value)
	}
	return &due, nil
}

// checkbox renders the completion state of a task.
func checkbox(t *task.Task) string {
	if t.Completed {
		return "[x]"
	}
	return "[ ]"
}

// formatDue renders a task's due date column, flagging overdue tasks.
func formatDue(t *task.Task, now time.Time) string {
	if t.DueDate == nil {
		return "-"
	}
	due := t.DueDate.Format(task.DueDateLayout)
	if t.IsOverdue(now) {
		return due + " (overdue)"
	}
	return due
}
