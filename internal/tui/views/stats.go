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

// StatsModel shows collection totals and the per-category breakdown.
// It snapshots the counts when built; the app rebuilds it on navigation.
type StatsModel struct {
	stats  task.Stats
	width  int
	height int
}

// NewStatsModel snapshots the store's current counts.
func NewStatsModel(store *task.Store) StatsModel {
	return StatsModel{stats: store.Stats()}
}

// Init implements tea.Model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
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
	return m, nil
}

// View implements tea.Model.
func (m StatsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Statistics")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)

	var contentLines []string
	if m.stats.Total == 0 {
		contentLines = append(contentLines,
			"No tasks yet.",
			"",
			styles.SubtleStyle.Render("Add a task and check back."),
		)
	} else {
		bar := components.NewProgress(m.stats.Completed, m.stats.Total, 30).View()
		summary := fmt.Sprintf("%d total • %d completed • %d pending",
			m.stats.Total, m.stats.Completed, m.stats.Pending)

		contentLines = append(contentLines, bar, "", summary)

		if breakdown := m.renderBreakdown(); len(breakdown) > 0 {
			contentLines = append(contentLines, "")
			contentLines = append(contentLines, styles.SubtleStyle.Render("By category"))
			contentLines = append(contentLines, breakdown...)
		}
	}
	content := strings.Join(contentLines, "\n")

	statusBarHeight := 1
	contentHeight := 2 + len(contentLines)
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 3
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content))

	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	statusItems := []string{"Esc Back"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

// renderBreakdown lists categories that have at least one task, in the
// fixed category order.
func (m StatsModel) renderBreakdown() []string {
	var lines []string
	for _, c := range task.Categories() {
		n := m.stats.ByCategory[c]
		if n == 0 {
			continue
		}
		name := styles.CategoryStyle(c).Render(fmt.Sprintf("%-10s", c))
		lines = append(lines, fmt.Sprintf("%s %3d", name, n))
	}
	return lines
}

// SetSize updates the model dimensions.
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Stats returns the snapshot the view was built with.
func (m StatsModel) Stats() task.Stats {
	return m.stats
}
