package task

import (
	"fmt"
	"strings"
	"time"
)

// Store holds an ordered collection of tasks. Positions are zero-based;
// user-facing surfaces show one-based numbers and convert before calling in.
// The store is not safe for concurrent use; callers own the serialization.
type Store struct {
	tasks []*Task
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add validates and appends a new task and returns it. The collection is
// unchanged when validation fails.
func (s *Store) Add(title, description string, priority Priority, due *time.Time, category Category) (*Task, error) {
	t, err := New(title, description, priority, due, category)
	if err != nil {
		return nil, err
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Tasks returns the tasks in insertion order. The slice is a fresh copy;
// the tasks themselves are shared.
func (s *Store) Tasks() []*Task {
	out := make([]*Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Task returns the task at position i.
func (s *Store) Task(i int) (*Task, error) {
	if i < 0 || i >= len(s.tasks) {
		return nil, fmt.Errorf("%w: position %d, have %d task(s)", ErrOutOfRange, i, len(s.tasks))
	}
	return s.tasks[i], nil
}

// Complete toggles the completion state of the task at position i and
// returns the new state.
func (s *Store) Complete(i int) (bool, error) {
	t, err := s.Task(i)
	if err != nil {
		return false, err
	}
	return t.ToggleComplete().Completed, nil
}

// Delete removes the task at position i. Tasks after it shift down one
// position.
func (s *Store) Delete(i int) error {
	if _, err := s.Task(i); err != nil {
		return err
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// Search returns the tasks whose title or description contains term,
// case-insensitively, in insertion order. No match is an empty result, not
// an error.
func (s *Store) Search(term string) ([]*Task, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, fmt.Errorf("%w: empty search term", ErrInvalidArgument)
	}

	var matches []*Task
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Title), term) ||
			strings.Contains(strings.ToLower(t.Description), term) {
			matches = append(matches, t)
		}
	}
	return matches, nil
}

// Stats summarizes a task collection.
type Stats struct {
	Total      int
	Completed  int
	Pending    int
	ByCategory map[Category]int
}

// Stats counts tasks by completion state and category. Categories with no
// tasks do not appear in ByCategory. Raw counts only; percentages are a
// presentation concern.
func (s *Store) Stats() Stats {
	st := Stats{
		Total:      len(s.tasks),
		ByCategory: make(map[Category]int),
	}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
		st.ByCategory[t.Category]++
	}
	st.Pending = st.Total - st.Completed
	return st
}

// Records converts every task to its plain-data form, in order.
func (s *Store) Records() []Record {
	records := make([]Record, len(s.tasks))
	for i, t := range s.tasks {
		records[i] = t.Record()
	}
	return records
}

// LoadRecords replaces the store contents with tasks rebuilt from records.
// All records must convert; on any failure the store keeps its previous
// contents.
func (s *Store) LoadRecords(records []Record) error {
	loaded := make([]*Task, 0, len(records))
	for i, r := range records {
		t, err := FromRecord(r)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		loaded = append(loaded, t)
	}
	s.tasks = loaded
	return nil
}
