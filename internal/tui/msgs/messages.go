// Package msgs defines shared message types for TUI view transitions and
// data changes.
package msgs

import (
	"time"

	"github.com/tasca-io/tasca/internal/task"
)

// View transition messages

// GoToHomeMsg signals transition to the home view.
type GoToHomeMsg struct{}

// GoToListMsg signals transition to the task list view.
type GoToListMsg struct{}

// GoToAddMsg signals transition to the add-task form.
type GoToAddMsg struct{}

// GoToSearchMsg signals transition to the search view.
type GoToSearchMsg struct{}

// GoToStatsMsg signals transition to the statistics view.
type GoToStatsMsg struct{}

// Data change messages

// TaskAddedMsg carries a validated add-form submission. The app applies it
// to the store and persists.
type TaskAddedMsg struct {
	Title       string
	Description string
	Priority    task.Priority
	DueDate     *time.Time
	Category    task.Category
}

// TasksChangedMsg signals that a view mutated the store in memory and the
// collection needs to be persisted.
type TasksChangedMsg struct{}
