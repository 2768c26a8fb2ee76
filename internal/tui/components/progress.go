package components

import (
	"fmt"
	"strings"

	"github.com/tasca-io/tasca/internal/tui/styles"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Progress renders a completion bar like: ■■■■□□□□ 50%
type Progress struct {
	Done  int
	Total int
	Width int // character width of the bar portion
}

// NewProgress creates a new Progress instance.
func NewProgress(done, total, width int) Progress {
	return Progress{
		Done:  done,
		Total: total,
		Width: width,
	}
}

// View returns the rendered bar. A zero total renders as an empty bar
// at 0% so the stats view has something to show before the first task.
func (p Progress) View() string {
	if p.Width <= 0 {
		return ""
	}

	total := p.Total
	if total < 0 {
		total = 0
	}

	// Clamp done to valid range
	done := p.Done
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}

	percent := 0
	filled := 0
	if total > 0 {
		percent = (done * 100) / total
		filled = (done * p.Width) / total
	}

	bar := styles.SuccessStyle.Render(strings.Repeat(filledChar, filled)) +
		styles.SubtleStyle.Render(strings.Repeat(emptyChar, p.Width-filled))

	return fmt.Sprintf("%s %d%%", bar, percent)
}
