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

// AddField identifies which form field currently has focus.
type AddField int

const (
	FieldTitle AddField = iota
	FieldDescription
	FieldPriority
	FieldDue
	FieldCategory
)

const fieldCount = int(FieldCategory) + 1

// AddModel handles the new-task form. On submit it emits a TaskAddedMsg
// for the app to apply; it never touches the store itself.
type AddModel struct {
	title       textinput.Model
	description textinput.Model
	due         textinput.Model

	priorities     []task.Priority
	priorityCursor int
	categories     []task.Category
	categoryCursor int

	focus    AddField
	errorMsg string

	width  int
	height int
}

// NewAddModel creates the form with the selectors preset to the
// configured defaults.
func NewAddModel(defaultPriority task.Priority, defaultCategory task.Category) AddModel {
	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.CharLimit = 120
	title.Width = 40
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Details (optional)"
	description.CharLimit = 256
	description.Width = 40

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD (optional)"
	due.CharLimit = 10
	due.Width = 40

	m := AddModel{
		title:       title,
		description: description,
		due:         due,
		priorities:  task.Priorities(),
		categories:  task.Categories(),
		focus:       FieldTitle,
	}

	for i, p := range m.priorities {
		if p == defaultPriority {
			m.priorityCursor = i
		}
	}
	for i, c := range m.categories {
		if c == defaultCategory {
			m.categoryCursor = i
		}
	}

	return m
}

// Init implements tea.Model.
func (m AddModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m AddModel) Update(msg tea.Msg) (AddModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }

		case "enter":
			if m.focus == FieldCategory {
				return m.submit()
			}
			return m.moveFocus(1)

		case "tab", "down":
			return m.moveFocus(1)

		case "shift+tab", "up":
			return m.moveFocus(-1)

		case "left":
			switch m.focus {
			case FieldPriority:
				if m.priorityCursor > 0 {
					m.priorityCursor--
				}
				return m, nil
			case FieldCategory:
				if m.categoryCursor > 0 {
					m.categoryCursor--
				}
				return m, nil
			}

		case "right":
			switch m.focus {
			case FieldPriority:
				if m.priorityCursor < len(m.priorities)-1 {
					m.priorityCursor++
				}
				return m, nil
			case FieldCategory:
				if m.categoryCursor < len(m.categories)-1 {
					m.categoryCursor++
				}
				return m, nil
			}
		}
	}

	// Pass everything else to the focused text input
	var cmd tea.Cmd
	switch m.focus {
	case FieldTitle:
		m.title, cmd = m.title.Update(msg)
	case FieldDescription:
		m.description, cmd = m.description.Update(msg)
	case FieldDue:
		m.due, cmd = m.due.Update(msg)
	}
	return m, cmd
}

// moveFocus shifts focus by delta, wrapping around the form.
func (m AddModel) moveFocus(delta int) (AddModel, tea.Cmd) {
	next := (int(m.focus) + delta + fieldCount) % fieldCount
	return m.setFocus(AddField(next))
}

// setFocus places focus on the given field.
func (m AddModel) setFocus(field AddField) (AddModel, tea.Cmd) {
	m.focus = field

	m.title.Blur()
	m.description.Blur()
	m.due.Blur()

	switch m.focus {
	case FieldTitle:
		m.title.Focus()
	case FieldDescription:
		m.description.Focus()
	case FieldDue:
		m.due.Focus()
	default:
		return m, nil
	}
	return m, textinput.Blink
}

// submit validates the form and emits a TaskAddedMsg.
func (m AddModel) submit() (AddModel, tea.Cmd) {
	title := strings.TrimSpace(m.title.Value())
	if title == "" {
		m.errorMsg = "title is required"
		result, cmd := m.setFocus(FieldTitle)
		return result, cmd
	}

	var due *time.Time
	if v := strings.TrimSpace(m.due.Value()); v != "" {
		parsed, err := time.Parse(task.DueDateLayout, v)
		if err != nil {
			m.errorMsg = fmt.Sprintf("due date must be YYYY-MM-DD, got %q", v)
			result, cmd := m.setFocus(FieldDue)
			return result, cmd
		}
		due = &parsed
	}

	m.errorMsg = ""
	added := msgs.TaskAddedMsg{
		Title:       title,
		Description: strings.TrimSpace(m.description.Value()),
		Priority:    m.priorities[m.priorityCursor],
		DueDate:     due,
		Category:    m.categories[m.categoryCursor],
	}
	return m, func() tea.Msg { return added }
}

// View implements tea.Model.
func (m AddModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Add Task")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	rows := []string{
		m.renderRow(FieldTitle, "Title", m.title.View()),
		m.renderRow(FieldDescription, "Description", m.description.View()),
		m.renderRow(FieldPriority, "Priority", m.renderPriorityOptions()),
		m.renderRow(FieldDue, "Due date", m.due.View()),
		m.renderRow(FieldCategory, "Category", m.renderCategoryOptions()),
	}
	form := strings.Join(rows, "\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, form))
	b.WriteString("\n\n")

	if m.errorMsg != "" {
		errLine := styles.ErrorStyle.Render(m.errorMsg)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errLine))
		b.WriteString("\n")
	}

	// Pad so the status bar sits at the bottom
	statusBarHeight := 1
	contentHeight := lipgloss.Height(b.String())
	bottomPadding := m.height - statusBarHeight - contentHeight
	if bottomPadding > 0 {
		b.WriteString(strings.Repeat("\n", bottomPadding))
	}

	b.WriteString(m.renderActionBar())

	return b.String()
}

// renderRow renders a label plus the field body, highlighting the
// focused row's label.
func (m AddModel) renderRow(field AddField, label, body string) string {
	padded := fmt.Sprintf("%-12s", label)
	if m.focus == field {
		padded = styles.SelectedStyle.Render(padded)
	} else {
		padded = styles.SubtleStyle.Render(padded)
	}
	return padded + " " + body
}

func (m AddModel) renderPriorityOptions() string {
	parts := make([]string, len(m.priorities))
	for i, p := range m.priorities {
		label := string(p)
		switch {
		case i == m.priorityCursor && m.focus == FieldPriority:
			parts[i] = styles.SelectedStyle.Render("[" + label + "]")
		case i == m.priorityCursor:
			parts[i] = styles.PriorityStyle(p).Render("[" + label + "]")
		default:
			parts[i] = styles.SubtleStyle.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m AddModel) renderCategoryOptions() string {
	parts := make([]string, len(m.categories))
	for i, c := range m.categories {
		label := string(c)
		switch {
		case i == m.categoryCursor && m.focus == FieldCategory:
			parts[i] = styles.SelectedStyle.Render("[" + label + "]")
		case i == m.categoryCursor:
			parts[i] = styles.CategoryStyle(c).Render("[" + label + "]")
		default:
			parts[i] = styles.SubtleStyle.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

// renderActionBar returns the bottom action bar.
func (m AddModel) renderActionBar() string {
	var items []string
	switch m.focus {
	case FieldCategory:
		items = []string{"←→ Choose", "Enter Save", "Esc Cancel"}
	case FieldPriority:
		items = []string{"←→ Choose", "Enter Next", "Esc Cancel"}
	default:
		items = []string{"Enter Next", "Tab Next field", "Esc Cancel"}
	}
	return components.NewStatusBar().Render(m.width, items)
}

// SetSize updates the model dimensions.
func (m *AddModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	inputWidth := width - 20
	if inputWidth > 60 {
		inputWidth = 60
	}
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.title.Width = inputWidth
	m.description.Width = inputWidth
	m.due.Width = inputWidth
}

// Getters

// Focus returns the field that currently has focus.
func (m AddModel) Focus() AddField {
	return m.focus
}

// Priority returns the currently selected priority.
func (m AddModel) Priority() task.Priority {
	return m.priorities[m.priorityCursor]
}

// Category returns the currently selected category.
func (m AddModel) Category() task.Category {
	return m.categories[m.categoryCursor]
}

// TitleValue returns the current title input text.
func (m AddModel) TitleValue() string {
	return m.title.Value()
}

// SetError sets a validation message to display under the form.
func (m *AddModel) SetError(msg string) {
	m.errorMsg = msg
}

// Error returns the current validation message.
func (m AddModel) Error() string {
	return m.errorMsg
}
