package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/tasca-io/tasca/internal/task"
)

func TestParsePosition(t *testing.T) {
	t.Run("converts one-based to zero-based", func(t *testing.T) {
		for arg, want := range map[string]int{"1": 0, "2": 1, "10": 9} {
			got, err := parsePosition(arg)
			if err != nil {
				t.Errorf("parsePosition(%q): unexpected error: %v", arg, err)
				continue
			}
			if got != want {
				t.Errorf("parsePosition(%q) = %d, want %d", arg, got, want)
			}
		}
	})

	t.Run("rejects non-numbers and non-positives", func(t *testing.T) {
		for _, arg := range []string{"zero", "", "0", "-3", "1.5"} {
			if _, err := parsePosition(arg); !errors.Is(err, task.ErrInvalidArgument) {
				t.Errorf("parsePosition(%q): got %v, want ErrInvalidArgument", arg, err)
			}
		}
	})
}

func TestParseDueDate(t *testing.T) {
	t.Run("empty means none", func(t *testing.T) {
		due, err := parseDueDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if due != nil {
			t.Errorf("got %v, want nil", due)
		}
	})

	t.Run("parses calendar dates", func(t *testing.T) {
		due, err := parseDueDate("2026-03-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		if due == nil || !due.Equal(want) {
			t.Errorf("got %v, want %v", due, want)
		}
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, arg := range []string{"15/03/2026", "tomorrow", "2026-3-15"} {
			if _, err := parseDueDate(arg); !errors.Is(err, task.ErrInvalidArgument) {
				t.Errorf("parseDueDate(%q): got %v, want ErrInvalidArgument", arg, err)
			}
		}
	})
}

func TestFormatDue(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := formatDue(&task.Task{Title: "x"}, now); got != "-" {
		t.Errorf("got %q, want %q", got, "-")
	}
	if got := formatDue(&task.Task{Title: "x", DueDate: &past}, now); got != "2020-01-01 (overdue)" {
		t.Errorf("got %q, want overdue marker", got)
	}
	if got := formatDue(&task.Task{Title: "x", DueDate: &past, Completed: true}, now); got != "2020-01-01" {
		t.Errorf("got %q, completed task should not be flagged overdue", got)
	}
	if got := formatDue(&task.Task{Title: "x", DueDate: &future}, now); got != "2030-01-01" {
		t.Errorf("got %q, want plain date", got)
	}
}

func TestCompletionPercent(t *testing.T) {
	for name, tc := range map[string]struct {
		stats task.Stats
		want  string
	}{
		"empty collection": {task.Stats{}, "0%"},
		"partial":          {task.Stats{Total: 3, Completed: 1}, "33%"},
		"all done":         {task.Stats{Total: 4, Completed: 4}, "100%"},
	} {
		if got := completionPercent(tc.stats); got != tc.want {
			t.Errorf("%s: got %q, want %q", name, got, tc.want)
		}
	}
}
