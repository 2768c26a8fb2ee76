package components

import (
	"strings"

	"github.com/tasca-io/tasca/internal/tui/styles"
)

// StatusBar renders a bottom help bar showing contextual help items.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width and items.
// Items are joined with " • " and padded to fill the width.
func (s StatusBar) Render(width int, items []string) string {
	if len(items) == 0 {
		return styles.StatusBarStyle.Width(width).Render("")
	}

	return styles.StatusBarStyle.Width(width).Render(strings.Join(items, " • "))
}

// RenderWithNotice renders the status bar with a leading notice segment,
// used to surface save failures without leaving the current view.
func (s StatusBar) RenderWithNotice(width int, notice string, items []string) string {
	if notice == "" {
		return s.Render(width, items)
	}

	content := styles.ErrorStyle.Render(notice)
	if len(items) > 0 {
		content += styles.StatusBarStyle.Render(" • " + strings.Join(items, " • "))
	}
	return content
}
