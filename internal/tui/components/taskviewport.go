package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// TaskViewport windows task rows inside a bubbles viewport, keeping the
// cursor row visible and drawing a 1-column scrollbar on the right.
type TaskViewport struct {
	viewport viewport.Model
	count    int // total rows
	width    int // total width including scrollbar
	height   int
}

// NewTaskViewport creates a viewport with the given dimensions. The
// width includes 1 column for the scrollbar.
func NewTaskViewport(width, height int) TaskViewport {
	contentWidth := width - 1
	if contentWidth < 0 {
		contentWidth = 0
	}

	vp := viewport.New(contentWidth, height)
	vp.SetContent("")

	return TaskViewport{
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// SetSize updates the dimensions. Width includes the scrollbar column.
func (v *TaskViewport) SetSize(width, height int) {
	if v.width == width && v.height == height {
		return
	}

	v.width = width
	v.height = height

	contentWidth := width - 1
	if contentWidth < 0 {
		contentWidth = 0
	}

	v.viewport.Width = contentWidth
	v.viewport.Height = height

	// Clamp the offset after resize
	v.viewport.SetYOffset(v.viewport.YOffset)
}

// SetRows replaces the rendered rows and scrolls the minimum amount
// needed to keep the cursor row visible.
func (v *TaskViewport) SetRows(rows []string, cursor int) {
	v.count = len(rows)
	v.viewport.SetContent(strings.Join(rows, "\n"))
	v.ensureVisible(cursor)
}

// ensureVisible scrolls so that row is inside the window.
func (v *TaskViewport) ensureVisible(row int) {
	if row < 0 || row >= v.count {
		return
	}

	top := v.viewport.YOffset
	bottom := top + v.height - 1

	if row < top {
		v.viewport.SetYOffset(row)
	} else if row > bottom {
		v.viewport.SetYOffset(row - v.height + 1)
	}
}

// View renders the visible rows with the scrollbar gutter. Rows carry
// ANSI styling, so padding is measured with lipgloss.
func (v TaskViewport) View() string {
	content := v.viewport.View()
	scrollbar := v.renderScrollbar()

	contentLines := strings.Split(content, "\n")
	scrollbarLines := strings.Split(scrollbar, "\n")

	contentWidth := v.width - 1
	if contentWidth < 0 {
		contentWidth = 0
	}

	var b strings.Builder
	for i := 0; i < v.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}

		cl := ""
		if i < len(contentLines) {
			cl = contentLines[i]
		}
		sl := ""
		if i < len(scrollbarLines) {
			sl = scrollbarLines[i]
		}

		b.WriteString(cl)
		padding := contentWidth - lipgloss.Width(cl)
		if padding > 0 {
			b.WriteString(strings.Repeat(" ", padding))
		}
		b.WriteString(sl)
	}

	return b.String()
}

// renderScrollbar draws the gutter: blank while all rows fit, otherwise
// a track with a proportional thumb.
func (v TaskViewport) renderScrollbar() string {
	if v.height <= 0 {
		return ""
	}

	const (
		track = "│"
		thumb = "█"
	)

	if v.count <= v.height {
		return strings.Repeat(" \n", v.height-1) + " "
	}

	thumbSize := v.height * v.height / v.count
	if thumbSize < 1 {
		thumbSize = 1
	}

	maxYOffset := v.count - v.height
	thumbMaxTop := v.height - thumbSize

	thumbTop := 0
	if maxYOffset > 0 {
		thumbTop = v.viewport.YOffset * thumbMaxTop / maxYOffset
	}
	if thumbTop > thumbMaxTop {
		thumbTop = thumbMaxTop
	}
	if thumbTop < 0 {
		thumbTop = 0
	}

	var b strings.Builder
	for i := 0; i < v.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= thumbTop && i < thumbTop+thumbSize {
			b.WriteString(thumb)
		} else {
			b.WriteString(track)
		}
	}

	return b.String()
}

// Count returns the total number of rows.
func (v TaskViewport) Count() int {
	return v.count
}

// YOffset returns the current scroll offset.
func (v TaskViewport) YOffset() int {
	return v.viewport.YOffset
}
