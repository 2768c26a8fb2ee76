// Package styles defines shared lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tasca-io/tasca/internal/task"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors
	warnColor      = lipgloss.Color("#AF875F") // Muted amber for medium urgency
	accentColor    = lipgloss.Color("#AF87AF") // Muted violet accent

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for selected items in lists
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// BoxStyle for panel borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondaryColor).
			Padding(1, 2)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

// fallbackStyle renders values outside the known enums.
var fallbackStyle = lipgloss.NewStyle().Foreground(secondaryColor)

var priorityStyles = map[task.Priority]lipgloss.Style{
	task.PriorityLow:    lipgloss.NewStyle().Foreground(secondaryColor),
	task.PriorityMedium: lipgloss.NewStyle().Foreground(warnColor),
	task.PriorityHigh:   lipgloss.NewStyle().Foreground(errorColor).Bold(true),
}

var categoryStyles = map[task.Category]lipgloss.Style{
	task.CategoryWork:     lipgloss.NewStyle().Foreground(primaryColor),
	task.CategoryPersonal: lipgloss.NewStyle().Foreground(successColor),
	task.CategoryGeneral:  lipgloss.NewStyle().Foreground(secondaryColor),
	task.CategoryShopping: lipgloss.NewStyle().Foreground(accentColor),
	task.CategoryOther:    lipgloss.NewStyle().Foreground(secondaryColor),
}

// PriorityStyle returns the badge style for a priority, with a defined
// fallback for unknown values.
func PriorityStyle(p task.Priority) lipgloss.Style {
	if s, ok := priorityStyles[p]; ok {
		return s
	}
	return fallbackStyle
}

// CategoryStyle returns the badge style for a category, with a defined
// fallback for unknown values.
func CategoryStyle(c task.Category) lipgloss.Style {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return fallbackStyle
}
