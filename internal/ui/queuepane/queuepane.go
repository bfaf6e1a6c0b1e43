// Package queuepane draws the play queue as a table of title, artist and
// album columns.
package queuepane

import (
	"github.com/MoreDelay/inori/internal/ui"
	"github.com/MoreDelay/inori/internal/ui/styles"
)

const playingSymbol = "▶"

// Model renders queue views.
type Model struct {
	ui.Base
	theme *styles.Theme
}

// New creates a queue pane drawn with theme.
func New(theme *styles.Theme) Model {
	return Model{theme: theme}
}

// columns splits the row width after the two-cell marker and the duration.
type columns struct {
	title, artist, album, duration int
}

func layout(width int) columns {
	const durationWidth = 8
	rest := max(width-2-durationWidth, 0)
	title := rest * 2 / 5
	artist := rest * 3 / 10
	return columns{
		title:    title,
		artist:   artist,
		album:    rest - title - artist,
		duration: durationWidth,
	}
}
