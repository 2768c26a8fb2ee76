package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tasca-io/tasca/internal/task"
	"github.com/tasca-io/tasca/internal/tui/components"
	"github.com/tasca-io/tasca/internal/tui/msgs"
	"github.com/tasca-io/tasca/internal/tui/styles"
)

// MenuItem represents a menu option in the home view.
type MenuItem struct {
	Label       string
	Shortcut    string
	Description string
}

// MenuSection represents a group of related menu items.
type MenuSection struct {
	Title string
	Items []MenuItem
}

// HomeModel is the model for the home view landing screen.
type HomeModel struct {
	sections []MenuSection
	cursor   int
	pending  int
	total    int
	width    int
	height   int
	errorMsg string
}

// NewHomeModel creates the home menu. The store is only read for the
// pending/total counts shown under the title.
func NewHomeModel(store *task.Store) HomeModel {
	st := store.Stats()

	return HomeModel{
		sections: []MenuSection{
			{
				Title: "Tasks",
				Items: []MenuItem{
					{Label: "List Tasks", Shortcut: "l", Description: "Browse, complete, and delete tasks"},
					{Label: "Add Task", Shortcut: "a", Description: "Create a new task"},
					{Label: "Search", Shortcut: "s", Description: "Find tasks by title or description"},
					{Label: "Statistics", Shortcut: "t", Description: "Totals and per-category counts"},
				},
			},
			{
				Title: "",
				Items: []MenuItem{
					{Label: "Quit", Shortcut: "q", Description: ""},
				},
			},
		},
		pending: st.Pending,
		total:   st.Total,
	}
}

// Init implements tea.Model.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "l":
			return m, func() tea.Msg { return msgs.GoToListMsg{} }
		case "a":
			return m, func() tea.Msg { return msgs.GoToAddMsg{} }
		case "s":
			return m, func() tea.Msg { return msgs.GoToSearchMsg{} }
		case "t":
			return m, func() tea.Msg { return msgs.GoToStatsMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.totalMenuItems()-1 {
				m.cursor++
			}
		case "enter":
			return m.selectCurrentItem()
		}
	}
	return m, nil
}

// totalMenuItems returns the total number of menu items across all sections.
func (m HomeModel) totalMenuItems() int {
	total := 0
	for _, section := range m.sections {
		total += len(section.Items)
	}
	return total
}

// selectCurrentItem returns the transition message for the selected item.
func (m HomeModel) selectCurrentItem() (HomeModel, tea.Cmd) {
	switch m.getShortcutAtCursor() {
	case "l":
		return m, func() tea.Msg { return msgs.GoToListMsg{} }
	case "a":
		return m, func() tea.Msg { return msgs.GoToAddMsg{} }
	case "s":
		return m, func() tea.Msg { return msgs.GoToSearchMsg{} }
	case "t":
		return m, func() tea.Msg { return msgs.GoToStatsMsg{} }
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// getShortcutAtCursor returns the shortcut key for the selected item.
func (m HomeModel) getShortcutAtCursor() string {
	idx := 0
	for _, section := range m.sections {
		for _, item := range section.Items {
			if idx == m.cursor {
				return item.Shortcut
			}
			idx++
		}
	}
	return ""
}

// View implements tea.Model.
func (m HomeModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("T A S C A")
	tagline := styles.SubtleStyle.Render(m.taglineText())
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)
	taglineLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tagline)

	// Build menu with sections
	var menuLines []string
	cursorIdx := 0

	for sectionIdx, section := range m.sections {
		if section.Title != "" {
			menuLines = append(menuLines, styles.TitleStyle.Render(section.Title))
		}

		for _, item := range section.Items {
			mainPart := fmt.Sprintf("%-16s", "["+item.Shortcut+"] "+item.Label)

			var line string
			if cursorIdx == m.cursor {
				line = styles.SelectedStyle.Render(mainPart)
			} else {
				line = styles.SubtleStyle.Render(mainPart)
			}
			if item.Description != "" {
				line += "  " + styles.SubtleStyle.Render(item.Description)
			}
			menuLines = append(menuLines, line)
			cursorIdx++
		}

		if sectionIdx < len(m.sections)-1 {
			menuLines = append(menuLines, "")
		}
	}

	menu := strings.Join(menuLines, "\n")

	// Vertical centering: status bar takes the last line
	statusBarHeight := 1
	contentHeight := 2 + 2 + len(menuLines)
	if m.errorMsg != "" {
		contentHeight += 2
	}
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n")
	b.WriteString(taglineLine)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menu))

	if m.errorMsg != "" {
		b.WriteString("\n\n")
		errorLine := styles.ErrorStyle.Render(m.errorMsg)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errorLine))
	}

	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	statusItems := []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

// taglineText summarizes the collection under the title.
func (m HomeModel) taglineText() string {
	if m.total == 0 {
		return "Personal task tracker"
	}
	return fmt.Sprintf("%d task(s), %d pending", m.total, m.pending)
}

// SetSize updates the model dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the current cursor position.
func (m HomeModel) Cursor() int {
	return m.cursor
}

// SetError sets an error message to display under the menu.
func (m *HomeModel) SetError(msg string) {
	m.errorMsg = msg
}

// Error returns the current error message.
func (m HomeModel) Error() string {
	return m.errorMsg
}
