package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tasca-io/tasca/internal/task"
	"github.com/tasca-io/tasca/internal/tui/components"
	"github.com/tasca-io/tasca/internal/tui/msgs"
	"github.com/tasca-io/tasca/internal/tui/styles"
)

// ListModel is the model for the task list view. It mutates the shared
// store directly and asks the app to persist via TasksChangedMsg.
type ListModel struct {
	store         *task.Store
	cursor        int
	confirmDelete int // store position awaiting y/n confirmation, -1 when idle
	viewport      components.TaskViewport
	width         int
	height        int
	errorMsg      string
}

// NewListModel creates a list view over the shared store.
func NewListModel(store *task.Store) ListModel {
	return ListModel{
		store:         store,
		confirmDelete: -1,
		viewport:      components.NewTaskViewport(0, 0),
	}
}

// Init implements tea.Model.
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	next, cmd := m.update(msg)
	next.refreshViewport()
	return next, cmd
}

func (m ListModel) update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.confirmDelete >= 0 {
			return m.updateConfirm(msg)
		}

		if m.store.Len() == 0 {
			switch msg.String() {
			case "a":
				return m, func() tea.Msg { return msgs.GoToAddMsg{} }
			case "esc":
				return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
		case "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.store.Len()-1 {
				m.cursor++
			}
		case " ", "enter":
			m.errorMsg = ""
			if _, err := m.store.Complete(m.cursor); err != nil {
				m.errorMsg = err.Error()
				return m, nil
			}
			return m, func() tea.Msg { return msgs.TasksChangedMsg{} }
		case "d":
			m.confirmDelete = m.cursor
		case "a":
			return m, func() tea.Msg { return msgs.GoToAddMsg{} }
		}
	}
	return m, nil
}

// updateConfirm handles keys while a delete confirmation is pending.
func (m ListModel) updateConfirm(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		pos := m.confirmDelete
		m.confirmDelete = -1
		m.errorMsg = ""
		if err := m.store.Delete(pos); err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		if m.cursor >= m.store.Len() && m.cursor > 0 {
			m.cursor = m.store.Len() - 1
		}
		return m, func() tea.Msg { return msgs.TasksChangedMsg{} }
	case "n", "esc":
		m.confirmDelete = -1
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m ListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.store.Len() == 0 {
		return m.renderEmptyView()
	}
	return m.renderNormalView()
}

// refreshViewport rebuilds the rendered rows after any change to the
// cursor, the store, or the dimensions.
func (m *ListModel) refreshViewport() {
	if m.width == 0 || m.height == 0 || m.store.Len() == 0 {
		return
	}

	now := time.Now()
	tasks := m.store.Tasks()
	rows := make([]string, len(tasks))
	widest := 0
	for i, t := range tasks {
		rows[i] = m.formatTaskLine(i, t, now)
		if w := lipgloss.Width(rows[i]); w > widest {
			widest = w
		}
	}

	maxHeight := m.height - 3 - 2*len(m.extraLines())
	if maxHeight < 3 {
		maxHeight = 3
	}
	height := len(rows)
	if height > maxHeight {
		height = maxHeight
	}

	width := widest + 1
	if width > m.width {
		width = m.width
	}

	m.viewport.SetSize(width, height)
	m.viewport.SetRows(rows, m.cursor)
}

// extraLines returns the lines shown under the list: selected task
// description, confirm prompt, error message.
func (m ListModel) extraLines() []string {
	var extra []string
	if sel, err := m.store.Task(m.cursor); err == nil && sel.Description != "" {
		extra = append(extra, styles.SubtleStyle.Render(sel.Description))
	}
	if m.confirmDelete >= 0 && m.confirmDelete < m.store.Len() {
		target, err := m.store.Task(m.confirmDelete)
		if err == nil {
			prompt := fmt.Sprintf("Delete %q? (y/n)", target.Title)
			extra = append(extra, styles.ErrorStyle.Render(prompt))
		}
	}
	return extra
}

func (m ListModel) renderNormalView() string {
	var b strings.Builder

	title := styles.TitleStyle.Render("Tasks")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)

	taskList := m.viewport.View()
	extra := m.extraLines()

	statusBarHeight := 1
	contentHeight := 2 + lipgloss.Height(taskList) + 2*len(extra)
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 3
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, taskList))
	for _, line := range extra {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line))
	}

	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	var statusItems []string
	if m.confirmDelete >= 0 {
		statusItems = []string{"y Delete", "n Cancel"}
	} else {
		statusItems = []string{"↑↓ Navigate", "Space Toggle", "d Delete", "a Add", "Esc Back"}
	}
	b.WriteString(components.NewStatusBar().RenderWithNotice(m.width, m.errorMsg, statusItems))

	return b.String()
}

// formatTaskLine renders one task row: cursor, checkbox, number, title,
// then styled priority/category badges and timing info.
func (m ListModel) formatTaskLine(index int, t *task.Task, now time.Time) string {
	indicator := "○"
	if index == m.cursor {
		indicator = "●"
	}

	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	main := fmt.Sprintf("%s %s %2d. %-30s", indicator, checkbox, index+1, truncate(t.Title, 30))
	if index == m.cursor {
		main = styles.SelectedStyle.Render(main)
	} else if t.Completed {
		main = styles.SubtleStyle.Render(main)
	}

	line := main
	line += " " + styles.PriorityStyle(t.Priority).Render(fmt.Sprintf("%-6s", t.Priority))
	line += " " + styles.CategoryStyle(t.Category).Render(fmt.Sprintf("%-8s", t.Category))

	if t.DueDate != nil {
		due := "due " + t.DueDate.Format(task.DueDateLayout)
		if t.IsOverdue(now) {
			line += " " + styles.ErrorStyle.Render(due+" (overdue)")
		} else {
			line += " " + styles.SubtleStyle.Render(due)
		}
	}
	line += " " + styles.SubtleStyle.Render(humanize.Time(t.CreatedAt))

	return line
}

func (m ListModel) renderEmptyView() string {
	var b strings.Builder

	title := styles.TitleStyle.Render("Tasks")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)

	msg1 := "No tasks yet."
	msg2 := "Press 'a' to add your first task, or Esc to go back."
	msg1Line := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, msg1)
	msg2Line := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.SubtleStyle.Render(msg2))

	statusBarHeight := 1
	contentHeight := 5
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 3
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n\n")
	b.WriteString(msg1Line)
	b.WriteString("\n\n")
	b.WriteString(msg2Line)

	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	statusItems := []string{"a Add task", "Esc Back"}
	b.WriteString(components.NewStatusBar().RenderWithNotice(m.width, m.errorMsg, statusItems))

	return b.String()
}

// truncate shortens s to max runes, ending with an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// SetSize updates the model dimensions.
func (m *ListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refreshViewport()
}

// Cursor returns the current cursor position.
func (m ListModel) Cursor() int {
	return m.cursor
}

// ConfirmingDelete reports whether a delete confirmation is pending.
func (m ListModel) ConfirmingDelete() bool {
	return m.confirmDelete >= 0
}

// SetError sets an error message to display under the list.
func (m *ListModel) SetError(msg string) {
	m.errorMsg = msg
	m.refreshViewport()
}

// Error returns the current error message.
func (m ListModel) Error() string {
	return m.errorMsg
}
