// Package footer draws the two bottom lines: the search prompt (or the
// last status message) and the key help.
package footer

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/MoreDelay/inori/internal/filter"
	"github.com/MoreDelay/inori/internal/ui/render"
	"github.com/MoreDelay/inori/internal/ui/styles"
)

// Height is the number of lines Render returns.
const Height = 2

const cursorBlock = "█"

// State is what the search line shows.
type State struct {
	Query   string
	Filter  filter.State
	Typing  bool
	Pending []string // keys of an unfinished sequence
	Message string
	IsError bool
}

// Render returns the search line and the help line.
func Render(s State, h help.Model, keys help.KeyMap, theme *styles.Theme, width int) string {
	h.Width = width
	helpLine := h.View(keys)
	return fit(searchLine(s, theme, width), width) + "\n" + fit(helpLine, width)
}

func searchLine(s State, theme *styles.Theme, width int) string {
	var right string
	if len(s.Pending) > 0 {
		right = theme.Muted.Render(strings.Join(s.Pending, " ") + " ")
	}

	var left string
	switch {
	case s.Filter != filter.Inactive:
		queryStyle := theme.SearchQueryInactive
		if s.Typing {
			queryStyle = theme.SearchQueryActive
		}
		room := max(width-lipgloss.Width(right)-3, 1)
		left = theme.SlashSpan.Render("/") + queryStyle.Render(render.Truncate(s.Query, room))
		if s.Typing {
			left += theme.SlashSpan.Render(cursorBlock)
		}
	case s.Message != "":
		style := theme.Muted
		if s.IsError {
			style = theme.Error
		}
		left = style.Render(render.Truncate(s.Message, max(width-lipgloss.Width(right)-1, 1)))
	}
	if right == "" {
		return left
	}
	return render.Row(left, right, width)
}

// fit pads or cuts a line to exactly width cells.
func fit(line string, width int) string {
	if lipgloss.Width(line) > width {
		line = ansi.Truncate(line, width, render.Ellipsis)
	}
	return line + strings.Repeat(" ", max(width-lipgloss.Width(line), 0))
}
