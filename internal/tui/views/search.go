package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tasca-io/tasca/internal/task"
	"github.com/tasca-io/tasca/internal/tui/components"
	"github.com/tasca-io/tasca/internal/tui/msgs"
	"github.com/tasca-io/tasca/internal/tui/styles"
)

// SearchModel is the live search view. Results refresh on every
// keystroke; matches keep their position from the full list.
type SearchModel struct {
	store   *task.Store
	input   textinput.Model
	results []*task.Task

	width  int
	height int
}

// NewSearchModel creates a search view over the shared store.
func NewSearchModel(store *task.Store) SearchModel {
	input := textinput.New()
	input.Placeholder = "Search titles and descriptions..."
	input.CharLimit = 120
	input.Width = 40
	input.Focus()

	return SearchModel{store: store, input: input}
}

// Init implements tea.Model.
func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.requery()
	return m, cmd
}

// requery refreshes results for the current input. An empty term means
// no query, not an error.
func (m *SearchModel) requery() {
	term := strings.TrimSpace(m.input.Value())
	if term == "" {
		m.results = nil
		return
	}
	matches, err := m.store.Search(term)
	if err != nil {
		m.results = nil
		return
	}
	m.results = matches
}

// View implements tea.Model.
func (m SearchModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Search")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.input.View()))
	b.WriteString("\n\n")

	term := strings.TrimSpace(m.input.Value())
	switch {
	case term == "":
		hint := styles.SubtleStyle.Render("Type to search titles and descriptions.")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hint))
	case len(m.results) == 0:
		none := styles.SubtleStyle.Render(fmt.Sprintf("No tasks match %q.", term))
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, none))
	default:
		count := styles.SubtleStyle.Render(fmt.Sprintf("%d match(es)", len(m.results)))
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, count))
		b.WriteString("\n\n")

		// Matches keep their one-based position from the full list so
		// numbers line up with the list view and the CLI.
		positions := make(map[*task.Task]int, m.store.Len())
		for i, t := range m.store.Tasks() {
			positions[t] = i
		}

		now := time.Now()
		var lines []string
		for _, t := range m.results {
			lines = append(lines, formatMatchLine(positions[t], t, now))
		}
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(lines, "\n")))
	}

	statusBarHeight := 1
	contentHeight := lipgloss.Height(b.String())
	bottomPadding := m.height - statusBarHeight - contentHeight
	if bottomPadding > 0 {
		b.WriteString(strings.Repeat("\n", bottomPadding))
	}

	statusItems := []string{"Type to filter", "Esc Back"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

// formatMatchLine renders one search hit with its full-list position.
func formatMatchLine(index int, t *task.Task, now time.Time) string {
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	main := fmt.Sprintf("%s %2d. %-30s", checkbox, index+1, truncate(t.Title, 30))
	if t.Completed {
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

	return line
}

// SetSize updates the model dimensions.
func (m *SearchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Getters

// Query returns the current search input.
func (m SearchModel) Query() string {
	return m.input.Value()
}

// Results returns a copy of the current matches.
func (m SearchModel) Results() []*task.Task {
	out := make([]*task.Task, len(m.results))
	copy(out, m.results)
	return out
}
