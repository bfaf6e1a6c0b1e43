package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MoreDelay/inori/internal/ui/render"
)

const (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// RenderProgressBar renders "1:23 ▓▓▓░░░ 4:56" in at most width cells.
// Below a usable bar width only the times are shown.
func RenderProgressBar(elapsed, duration time.Duration, width int) string {
	pos := clock(elapsed)
	dur := clock(duration)

	barWidth := width - lipgloss.Width(pos) - lipgloss.Width(dur) - 2
	if barWidth < 3 {
		return pos + " / " + dur
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(elapsed) / float64(duration)
	}
	filled := min(max(int(float64(barWidth)*ratio), 0), barWidth)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)
	return pos + " " + bar + " " + dur
}

func clock(d time.Duration) string {
	if d <= 0 {
		return "0:00"
	}
	return render.Duration(d)
}
