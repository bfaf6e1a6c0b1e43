// Package librarypane draws the library screen: the artist list on the
// left and the focused artist's albums and tracks on the right.
package librarypane

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MoreDelay/inori/internal/engine"
	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/ui"
	"github.com/MoreDelay/inori/internal/ui/styles"
)

const (
	expandedSymbol  = "▾"
	collapsedSymbol = "▸"
)

// Model renders library views. It holds no list state of its own.
type Model struct {
	ui.Base
	theme *styles.Theme
}

// New creates a library pane drawn with theme.
func New(theme *styles.Theme) Model {
	return Model{theme: theme}
}

// View renders v into the pane's size.
func (m Model) View(v engine.LibraryView) string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	artistWidth := ui.ArtistWidth(m.Width())
	artists := m.artistPanel(v, artistWidth)

	trackWidth := m.Width() - artistWidth
	if trackWidth <= ui.BorderHeight {
		return artists
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, artists, m.trackPanel(v, trackWidth))
}

// rowStyle returns the base style of a row, given whether the cursor is on
// it and whether its list has focus.
func (m Model) rowStyle(cursor, focused bool) lipgloss.Style {
	switch {
	case cursor && focused:
		return m.theme.ItemHighlightActive
	case cursor:
		return m.theme.ItemHighlightInactive
	default:
		return m.theme.Base
	}
}

func (m Model) panel(focused bool, width int, content string) string {
	return m.theme.Panel(focused).
		Width(width - ui.BorderHeight).
		Render(content)
}

func focusedOn(v engine.LibraryView, s library.Selector) bool {
	return v.Active == s
}
