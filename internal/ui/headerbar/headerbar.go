// Package headerbar draws the screen tabs at the top of the window.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MoreDelay/inori/internal/ui/render"
	"github.com/MoreDelay/inori/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

// Tab is one screen tab. Key is the binding shown before the name.
type Tab struct {
	Key  string
	Name string
	ID   string
}

// Render returns the tab line with the tab whose ID is current
// highlighted, and right on the far side.
func Render(tabs []Tab, current, right string, theme *styles.Theme, width int) string {
	if width < 20 {
		return ""
	}

	active := theme.BlockActive.Bold(true)
	inactiveKey := theme.Muted
	inactiveName := theme.Base
	sep := theme.Muted.Render(" │ ")

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		keyStyle, nameStyle := inactiveKey, inactiveName
		if t.ID == current {
			keyStyle, nameStyle = active, active
		}
		part := nameStyle.Render(t.Name)
		if t.Key != "" {
			part = keyStyle.Render(t.Key) + " " + part
		}
		parts = append(parts, part)
	}
	left := " " + strings.Join(parts, sep)

	if right == "" {
		return left + strings.Repeat(" ", max(width-lipgloss.Width(left), 0))
	}
	room := width - lipgloss.Width(left) - 2
	if room < 4 {
		return left + strings.Repeat(" ", max(width-lipgloss.Width(left), 0))
	}
	return render.Row(left, theme.Muted.Render(render.Truncate(right, room))+" ", width)
}
