package task

import (
	"errors"
	"testing"
	"time"
)

func seedStore(t *testing.T, titles ...string) *Store {
	t.Helper()
	s := NewStore()
	for _, title := range titles {
		if _, err := s.Add(title, "", "", nil, ""); err != nil {
			t.Fatalf("failed to seed store with %q: %v", title, err)
		}
	}
	return s
}

func TestStoreAdd(t *testing.T) {
	t.Run("appends in insertion order", func(t *testing.T) {
		s := seedStore(t, "first", "second", "third")

		tasks := s.Tasks()
		if len(tasks) != 3 {
			t.Fatalf("got %d tasks, want 3", len(tasks))
		}
		for i, want := range []string{"first", "second", "third"} {
			if tasks[i].Title != want {
				t.Errorf("task %d: got %q, want %q", i, tasks[i].Title, want)
			}
		}
	})

	t.Run("invalid task leaves collection unchanged", func(t *testing.T) {
		s := seedStore(t, "only")

		if _, err := s.Add("", "", "", nil, ""); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("got %v, want ErrInvalidArgument", err)
		}
		if s.Len() != 1 {
			t.Errorf("got %d tasks, want 1", s.Len())
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		s := seedStore(t, "keep me")

		tasks := s.Tasks()
		tasks[0] = nil
		if got := s.Tasks()[0]; got == nil || got.Title != "keep me" {
			t.Error("mutating the returned slice changed the store")
		}
	})
}

func TestStoreComplete(t *testing.T) {
	t.Run("toggles and reports new state", func(t *testing.T) {
		s := seedStore(t, "a", "b")

		done, err := s.Complete(1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !done {
			t.Error("got pending, want completed")
		}

		done, err = s.Complete(1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if done {
			t.Error("got completed, want pending")
		}
	})

	t.Run("position past the end is out of range", func(t *testing.T) {
		s := seedStore(t, "a", "b", "c")

		if _, err := s.Complete(5); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("got %v, want ErrOutOfRange", err)
		}
	})

	t.Run("negative position is out of range", func(t *testing.T) {
		s := seedStore(t, "a")

		if _, err := s.Complete(-1); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("got %v, want ErrOutOfRange", err)
		}
	})

	t.Run("empty store has no valid position", func(t *testing.T) {
		s := NewStore()

		if _, err := s.Complete(0); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("got %v, want ErrOutOfRange", err)
		}
	})
}

func TestStoreDelete(t *testing.T) {
	t.Run("removes and shifts the tail down", func(t *testing.T) {
		s := seedStore(t, "a", "b", "c")

		if err := s.Delete(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tasks := s.Tasks()
		if len(tasks) != 2 {
			t.Fatalf("got %d tasks, want 2", len(tasks))
		}
		if tasks[0].Title != "a" || tasks[1].Title != "c" {
			t.Errorf("got [%q %q], want [%q %q]", tasks[0].Title, tasks[1].Title, "a", "c")
		}
	})

	t.Run("out of range leaves collection unchanged", func(t *testing.T) {
		s := seedStore(t, "a", "b")

		if err := s.Delete(2); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("got %v, want ErrOutOfRange", err)
		}
		if s.Len() != 2 {
			t.Errorf("got %d tasks, want 2", s.Len())
		}
	})
}

func TestStoreSearch(t *testing.T) {
	t.Run("matches title case-insensitively", func(t *testing.T) {
		s := seedStore(t, "Buy milk", "Call bank")

		matches, err := s.Search("milk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 1 || matches[0].Title != "Buy milk" {
			t.Errorf("got %d match(es), want exactly [Buy milk]", len(matches))
		}
	})

	t.Run("matches description", func(t *testing.T) {
		s := NewStore()
		if _, err := s.Add("Groceries", "remember the MILK", "", nil, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		matches, err := s.Search("milk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 1 {
			t.Errorf("got %d match(es), want 1", len(matches))
		}
	})

	t.Run("no match is empty, not an error", func(t *testing.T) {
		s := seedStore(t, "Buy milk")

		matches, err := s.Search("bread")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 0 {
			t.Errorf("got %d match(es), want 0", len(matches))
		}
	})

	t.Run("empty term is invalid", func(t *testing.T) {
		s := seedStore(t, "a")

		if _, err := s.Search("   "); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("got %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		s := seedStore(t, "milk run", "other", "milk again")

		matches, err := s.Search("milk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 2 || matches[0].Title != "milk run" || matches[1].Title != "milk again" {
			t.Errorf("got %d match(es) out of order", len(matches))
		}
	})
}

func TestStoreStats(t *testing.T) {
	t.Run("counts by category", func(t *testing.T) {
		s := NewStore()
		for _, c := range []Category{CategoryWork, CategoryWork, CategoryPersonal} {
			if _, err := s.Add("task", "", "", nil, c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		st := s.Stats()
		if st.Total != 3 {
			t.Errorf("got total %d, want 3", st.Total)
		}
		if st.ByCategory[CategoryWork] != 2 {
			t.Errorf("got %d work tasks, want 2", st.ByCategory[CategoryWork])
		}
		if st.ByCategory[CategoryPersonal] != 1 {
			t.Errorf("got %d personal tasks, want 1", st.ByCategory[CategoryPersonal])
		}
		if _, ok := st.ByCategory[CategoryShopping]; ok {
			t.Error("absent category should not appear in ByCategory")
		}
	})

	t.Run("splits completed and pending", func(t *testing.T) {
		s := seedStore(t, "a", "b", "c")
		if _, err := s.Complete(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		st := s.Stats()
		if st.Completed != 1 {
			t.Errorf("got %d completed, want 1", st.Completed)
		}
		if st.Pending != 2 {
			t.Errorf("got %d pending, want 2", st.Pending)
		}
	})

	t.Run("empty store yields zero stats", func(t *testing.T) {
		st := NewStore().Stats()
		if st.Total != 0 || st.Completed != 0 || st.Pending != 0 || len(st.ByCategory) != 0 {
			t.Errorf("got %+v, want all zeros", st)
		}
	})
}

func TestStoreRecords(t *testing.T) {
	t.Run("load replaces previous contents", func(t *testing.T) {
		s := seedStore(t, "old")

		err := s.LoadRecords([]Record{
			{Title: "new one", Priority: "low", Category: "work", CreatedAt: time.Now().Format(time.RFC3339)},
			{Title: "new two", Priority: "high", Category: "personal", CreatedAt: time.Now().Format(time.RFC3339)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tasks := s.Tasks()
		if len(tasks) != 2 || tasks[0].Title != "new one" || tasks[1].Title != "new two" {
			t.Errorf("got %d task(s), want the two loaded records in order", len(tasks))
		}
	})

	t.Run("malformed record keeps previous contents", func(t *testing.T) {
		s := seedStore(t, "survivor")

		err := s.LoadRecords([]Record{
			{Title: "fine"},
			{Title: ""},
		})
		if !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("got %v, want ErrMalformedRecord", err)
		}

		tasks := s.Tasks()
		if len(tasks) != 1 || tasks[0].Title != "survivor" {
			t.Errorf("store changed after failed load: got %d task(s)", len(tasks))
		}
	})

	t.Run("round trip preserves every field", func(t *testing.T) {
		due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		s := NewStore()
		if _, err := s.Add("Ship release", "tag and announce", PriorityHigh, &due, CategoryWork); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := s.Complete(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		restored := NewStore()
		if err := restored.LoadRecords(s.Records()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := s.Tasks()[0]
		got := restored.Tasks()[0]
		if got.Title != want.Title || got.Description != want.Description ||
			got.Priority != want.Priority || got.Category != want.Category ||
			got.Completed != want.Completed {
			t.Errorf("round trip changed the task: got %+v, want %+v", got, want)
		}
		if got.DueDate == nil || !got.DueDate.Equal(due) {
			t.Errorf("got due date %v, want %v", got.DueDate, due)
		}
	})

	t.Run("empty store yields empty records", func(t *testing.T) {
		if got := NewStore().Records(); len(got) != 0 {
			t.Errorf("got %d record(s), want 0", len(got))
		}
	})
}
