package queuepane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/queue"
	"github.com/MoreDelay/inori/internal/ui/render"
)

// View renders v into the pane's size.
func (m Model) View(v queue.View) string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	inner := m.InnerWidth()
	rows := m.ListHeight()

	lines := []string{m.header(v, inner), render.Separator(inner)}
	start, end := v.Cursor.VisibleRange(len(v.Songs), rows)
	sel, hasSel := v.Cursor.Selected()
	for i := range rows {
		idx := start + i
		if idx >= end {
			lines = append(lines, strings.Repeat(" ", inner))
			continue
		}
		lines = append(lines, m.songLine(v, idx, inner, hasSel && idx == sel))
	}

	return m.theme.Panel(true).
		Width(inner).
		Render(strings.Join(lines, "\n"))
}

func (m Model) header(v queue.View, width int) string {
	pos := 0
	for i, s := range v.Songs {
		if v.Current != 0 && s.ID == v.Current {
			pos = i + 1
			break
		}
	}
	count := fmt.Sprintf("%s/%s", humanize.Comma(int64(pos)), humanize.Comma(int64(len(v.Songs))))
	return render.Row(
		m.theme.Base.Bold(true).Render("Queue"),
		m.theme.Muted.Render(count),
		width,
	)
}

func (m Model) songLine(v queue.View, idx, width int, cursor bool) string {
	s := v.Songs[idx]
	playing := v.Current != 0 && s.ID == v.Current

	base := m.theme.Base
	switch {
	case cursor:
		base = m.theme.ItemHighlightActive
	case playing:
		base = m.theme.Playing
	}
	if cursor && playing {
		base = m.theme.Playing.Inherit(base)
	}
	match := m.theme.Match

	marker := "  "
	if playing {
		marker = playingSymbol + " "
	}

	cols := layout(width)
	hl := func(source int) []int {
		if v.Sources[idx] == source {
			return v.Highlights[idx]
		}
		return nil
	}
	cell := func(text string, source, w int) string {
		if w <= 0 {
			return ""
		}
		// One trailing space separates the columns.
		return render.Highlight(text, hl(source), w-1, base, match) + base.Render(" ")
	}

	return base.Render(marker) +
		cell(s.DisplayTitle(), queue.SourceTitle, cols.title) +
		cell(s.Artist, queue.SourceArtist, cols.artist) +
		cell(s.Album, queue.SourceAlbum, cols.album) +
		base.Render(duration(s, cols.duration))
}

func duration(s library.Song, width int) string {
	d := render.Duration(s.Duration)
	return strings.Repeat(" ", max(width-lipgloss.Width(d), 0)) + d
}
