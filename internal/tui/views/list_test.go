package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tasca-io/tasca/internal/task"
	"github.com/tasca-io/tasca/internal/tui/msgs"
)

func TestNewListModel(t *testing.T) {
	m := NewListModel(storeWithTasks(t, "Buy milk"))

	if m.Cursor() != 0 {
		t.Errorf("expected cursor to be 0, got %d", m.Cursor())
	}
	if m.ConfirmingDelete() {
		t.Error("expected no pending delete confirmation")
	}
}

func TestListModel_Update_Navigation(t *testing.T) {
	m := NewListModel(storeWithTasks(t, "One", "Two", "Three"))

	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if newM.cursor != 1 {
		t.Errorf("expected cursor to be 1 after down, got %d", newM.cursor)
	}

	newM, _ = newM.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if newM.cursor != 2 {
		t.Errorf("expected cursor to be 2 after 'j', got %d", newM.cursor)
	}

	// Past the end
	newM, _ = newM.Update(tea.KeyMsg{Type: tea.KeyDown})
	if newM.cursor != 2 {
		t.Errorf("expected cursor to stay at 2, got %d", newM.cursor)
	}

	newM, _ = newM.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if newM.cursor != 1 {
		t.Errorf("expected cursor to be 1 after 'k', got %d", newM.cursor)
	}
}

func TestListModel_Update_SpaceTogglesTask(t *testing.T) {
	store := storeWithTasks(t, "Buy milk")
	m := NewListModel(store)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})

	if cmd == nil {
		t.Fatal("expected command after toggle")
	}
	msg := cmd()
	if _, ok := msg.(msgs.TasksChangedMsg); !ok {
		t.Fatalf("expected msgs.TasksChangedMsg, got %T", msg)
	}

	got, err := store.Task(0)
	if err != nil {
		t.Fatalf("failed to read task: %v", err)
	}
	if !got.Completed {
		t.Error("expected task to be completed after toggle")
	}
}

func TestListModel_Update_EnterTogglesBack(t *testing.T) {
	store := storeWithTasks(t, "Buy milk")
	if _, err := store.Complete(0); err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}
	m := NewListModel(store)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("expected command after toggle")
	}
	msg := cmd()
	if _, ok := msg.(msgs.TasksChangedMsg); !ok {
		t.Fatalf("expected msgs.TasksChangedMsg, got %T", msg)
	}

	got, err := store.Task(0)
	if err != nil {
		t.Fatalf("failed to read task: %v", err)
	}
	if got.Completed {
		t.Error("expected task to be pending again after second toggle")
	}
}

func TestListModel_Update_DeleteFlow(t *testing.T) {
	store := storeWithTasks(t, "One", "Two")
	m := NewListModel(store)

	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if !newM.ConfirmingDelete() {
		t.Fatal("expected delete confirmation after 'd'")
	}

	newM, cmd := newM.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if cmd == nil {
		t.Fatal("expected command after confirmed delete")
	}
	msg := cmd()
	if _, ok := msg.(msgs.TasksChangedMsg); !ok {
		t.Fatalf("expected msgs.TasksChangedMsg, got %T", msg)
	}

	if newM.ConfirmingDelete() {
		t.Error("expected confirmation to be cleared after 'y'")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 task left, got %d", store.Len())
	}
	got, err := store.Task(0)
	if err != nil {
		t.Fatalf("failed to read task: %v", err)
	}
	if got.Title != "Two" {
		t.Errorf("expected remaining task to be Two, got %q", got.Title)
	}
}

func TestListModel_Update_DeleteCancelled(t *testing.T) {
	store := storeWithTasks(t, "One")
	m := NewListModel(store)

	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	newM, cmd := newM.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	if cmd != nil {
		t.Error("expected no command after cancelled delete")
	}
	if newM.ConfirmingDelete() {
		t.Error("expected confirmation to be cleared after 'n'")
	}
	if store.Len() != 1 {
		t.Errorf("expected store untouched, got %d task(s)", store.Len())
	}
}

func TestListModel_Update_DeleteLastClampsCursor(t *testing.T) {
	store := storeWithTasks(t, "One", "Two")
	m := NewListModel(store)
	m.cursor = 1

	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	newM, _ = newM.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

	if newM.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", newM.Cursor())
	}
}

func TestListModel_Update_EscGoesHome(t *testing.T) {
	m := NewListModel(storeWithTasks(t, "One"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if cmd == nil {
		t.Fatal("expected command from esc")
	}
	msg := cmd()
	if _, ok := msg.(msgs.GoToHomeMsg); !ok {
		t.Errorf("expected msgs.GoToHomeMsg, got %T", msg)
	}
}

func TestListModel_Update_AGoesToAdd(t *testing.T) {
	m := NewListModel(emptyStore())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	if cmd == nil {
		t.Fatal("expected command from 'a'")
	}
	msg := cmd()
	if _, ok := msg.(msgs.GoToAddMsg); !ok {
		t.Errorf("expected msgs.GoToAddMsg, got %T", msg)
	}
}

func TestListModel_View_NoSize(t *testing.T) {
	m := NewListModel(emptyStore())
	if m.View() != "" {
		t.Error("expected empty view when width/height are 0")
	}
}

func TestListModel_View_Empty(t *testing.T) {
	m := NewListModel(emptyStore())
	m.SetSize(80, 24)

	view := m.View()
	if !strings.Contains(view, "No tasks yet.") {
		t.Errorf("expected empty state message, got: %s", view)
	}
}

func TestListModel_View_RendersTasks(t *testing.T) {
	store := storeWithTasks(t, "Buy milk", "Call bank")
	if _, err := store.Complete(1); err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}
	m := NewListModel(store)
	m.SetSize(120, 30)

	view := stripANSI(m.View())
	if !strings.Contains(view, "Buy milk") {
		t.Errorf("expected view to contain Buy milk, got: %s", view)
	}
	if !strings.Contains(view, "[x]") {
		t.Errorf("expected a completed checkbox, got: %s", view)
	}
	if !strings.Contains(view, "[ ]") {
		t.Errorf("expected a pending checkbox, got: %s", view)
	}
	if !strings.Contains(view, " 1. ") {
		t.Errorf("expected one-based numbering, got: %s", view)
	}
}

func TestListModel_View_ShowsOverdue(t *testing.T) {
	store := task.NewStore()
	due := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	if _, err := store.Add("Renew passport", "", task.PriorityHigh, &due, task.CategoryOther); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	m := NewListModel(store)
	m.SetSize(120, 30)

	view := stripANSI(m.View())
	if !strings.Contains(view, "due 2020-01-02 (overdue)") {
		t.Errorf("expected overdue marker, got: %s", view)
	}
}

func TestListModel_View_ShowsErrorNotice(t *testing.T) {
	m := NewListModel(storeWithTasks(t, "One"))
	m.SetSize(100, 24)
	m.SetError("save failed: disk full")

	view := stripANSI(m.View())
	if !strings.Contains(view, "save failed: disk full") {
		t.Errorf("expected save notice in status bar, got: %s", view)
	}
}

func TestListModel_View_ConfirmPromptShowsTitle(t *testing.T) {
	store := storeWithTasks(t, "Buy milk")
	m := NewListModel(store)
	m.SetSize(120, 30)

	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	view := stripANSI(newM.View())
	if !strings.Contains(view, `Delete "Buy milk"? (y/n)`) {
		t.Errorf("expected delete prompt, got: %s", view)
	}
}
