package task

import (
	"fmt"
	"strings"
	"time"
)

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority applies when a task is created without an explicit priority.
const DefaultPriority = PriorityMedium

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority validates and normalizes a priority value.
func ParsePriority(value string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(value)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: invalid priority %q (valid: low, medium, high)", ErrInvalidArgument, value)
	}
	return p, nil
}

// Category groups related tasks.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryGeneral  Category = "general"
	CategoryShopping Category = "shopping"
	CategoryOther    Category = "other"
)

// DefaultCategory applies when a task is created without an explicit category.
const DefaultCategory = CategoryGeneral

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryGeneral, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

// ParseCategory validates and normalizes a category value.
func ParseCategory(value string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(value)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: invalid category %q (valid: work, personal, general, shopping, other)", ErrInvalidArgument, value)
	}
	return c, nil
}

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryGeneral, CategoryShopping, CategoryOther}
}

// Priorities lists every known priority from least to most urgent.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Task represents a single tracked task.
type Task struct {
	Title       string
	Description string
	Priority    Priority
	Category    Category
	DueDate     *time.Time
	Completed   bool
	CreatedAt   time.Time
}

// New creates a task. The title is trimmed and must not end up empty. An
// empty priority or category selects the default; any other unknown value
// is rejected with ErrInvalidArgument. CreatedAt is set here and never
// touched again.
func New(title, description string, priority Priority, due *time.Time, category Category) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}

	if priority == "" {
		priority = DefaultPriority
	} else if !priority.IsValid() {
		return nil, fmt.Errorf("%w: invalid priority %q", ErrInvalidArgument, string(priority))
	}

	if category == "" {
		category = DefaultCategory
	} else if !category.IsValid() {
		return nil, fmt.Errorf("%w: invalid category %q", ErrInvalidArgument, string(category))
	}

	return &Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		Category:    category,
		DueDate:     due,
		CreatedAt:   time.Now(),
	}, nil
}

// ToggleComplete flips the completion state and returns the task.
func (t *Task) ToggleComplete() *Task {
	t.Completed = !t.Completed
	return t
}

// IsOverdue reports whether the due date lies before now on a task that is
// not completed. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return t.DueDate.Before(now)
}
