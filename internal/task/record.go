package task

import (
	"fmt"
	"strings"
	"time"
)

// DueDateLayout is the wire form of a due date, a bare calendar date.
const DueDateLayout = "2006-01-02"

// Record is the plain-data form of a task, shaped exactly like one element
// of the tasks file. DueDate serializes as a date string or null.
type Record struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"createdAt"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Category    string  `json:"category"`
}

// Record converts the task to its plain-data form.
func (t *Task) Record() Record {
	r := Record{
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		Priority:    string(t.Priority),
		Category:    string(t.Category),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(DueDateLayout)
		r.DueDate = &due
	}
	return r
}

// FromRecord reconstructs a task from its plain-data form. A record without
// a title is malformed; an unknown priority or category falls back to the
// default, an unparseable createdAt falls back to the current time, and an
// unparseable dueDate is dropped.
func FromRecord(r Record) (*Task, error) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: missing title", ErrMalformedRecord)
	}

	t := &Task{
		Title:       title,
		Description: r.Description,
		Completed:   r.Completed,
		Priority:    Priority(r.Priority),
		Category:    Category(r.Category),
	}
	if !t.Priority.IsValid() {
		t.Priority = DefaultPriority
	}
	if !t.Category.IsValid() {
		t.Category = DefaultCategory
	}

	if created, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		t.CreatedAt = created
	} else {
		t.CreatedAt = time.Now()
	}

	if r.DueDate != nil {
		if due, err := time.Parse(DueDateLayout, *r.DueDate); err == nil {
			t.DueDate = &due
		}
	}

	return t, nil
}
