package librarypane

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/MoreDelay/inori/internal/engine"
	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/ui/render"
)

func (m Model) artistPanel(v engine.LibraryView, width int) string {
	inner := width - 2
	rows := m.ListHeight()
	focused := focusedOn(v, library.ArtistSelector)
	av := v.Artists

	header := render.Row(
		m.theme.Base.Bold(true).Render("Artists"),
		m.theme.Muted.Render(humanize.Comma(int64(len(av.Artists)))),
		inner,
	)

	lines := []string{header, render.Separator(inner)}
	start, end := av.Cursor.VisibleRange(len(av.Artists), rows)
	sel, hasSel := av.Cursor.Selected()
	for i := range rows {
		idx := start + i
		if idx >= end {
			lines = append(lines, strings.Repeat(" ", inner))
			continue
		}
		cursor := hasSel && idx == sel
		lines = append(lines, m.artistLine(av.Artists[idx], av.Highlights[idx], av.Sources[idx], inner, cursor, focused))
	}
	return m.panel(focused, width, strings.Join(lines, "\n"))
}

// artistLine renders the name followed by a dimmed sort name when the
// artist has one. Highlights go to whichever of the two matched.
func (m Model) artistLine(a *library.ArtistData, hl []int, source, width int, cursor, focused bool) string {
	base := m.rowStyle(cursor, focused)
	sortStyle := m.theme.ArtistSort.Inherit(base)
	match := m.theme.Match

	strs := a.SearchStrings()
	nameHL, sortHL := hl, []int(nil)
	sortName := ""
	if len(strs) > 1 {
		sortName = strs[1]
	}
	if source > 0 && source < len(strs) {
		sortName = strs[source]
		nameHL, sortHL = nil, hl
	}

	avail := width - 1
	line := base.Render(" ")
	nameWidth := render.Width(render.Sanitize(a.Name))
	rest := avail - nameWidth
	if sortName == "" || rest < 4 {
		return line + render.Highlight(a.Name, nameHL, avail, base, match)
	}
	return line +
		render.Highlight(a.Name, nameHL, nameWidth, base, match) +
		render.Highlight(" ("+sortName+")", render.Shift(sortHL, 2), rest, sortStyle, match)
}

func (m Model) trackPanel(v engine.LibraryView, width int) string {
	inner := width - 2
	rows := m.ListHeight()
	focused := focusedOn(v, library.TrackSelector)

	title := "Tracks"
	count := ""
	if sel, ok := v.Artists.Cursor.Selected(); ok && v.HasTracks {
		title = v.Artists.Artists[sel].Name
		if v.Fetched {
			n := len(v.Artists.Artists[sel].Albums())
			count = humanize.Comma(int64(n)) + " " + plural(n, "album", "albums")
		}
	}
	header := render.Row(
		m.theme.Base.Bold(true).Render(render.Truncate(title, max(inner-lipgloss.Width(count)-1, 0))),
		m.theme.Muted.Render(count),
		inner,
	)

	lines := []string{header, render.Separator(inner)}
	var body []string
	switch {
	case !v.HasTracks:
		body = []string{m.theme.Muted.Render(render.Fit(" No artist selected", inner))}
	case !v.Fetched:
		body = []string{m.theme.Muted.Render(render.Fit(" Loading…", inner))}
	default:
		body = m.trackLines(v.Tracks, inner, rows, focused)
	}
	lines = append(lines, body...)
	for len(lines) < rows+2 {
		lines = append(lines, strings.Repeat(" ", inner))
	}
	return m.panel(focused, width, strings.Join(lines, "\n"))
}

func (m Model) trackLines(tv library.TrackView, width, rows int, focused bool) []string {
	start, end := tv.Cursor.VisibleRange(len(tv.Rows), rows)
	sel, hasSel := tv.Cursor.Selected()

	lines := make([]string, 0, end-start)
	for idx := start; idx < end; idx++ {
		base := m.rowStyle(hasSel && idx == sel, focused)
		switch r := tv.Rows[idx].(type) {
		case library.AlbumRow:
			lines = append(lines, m.albumLine(r, tv.Highlights[idx], width, base))
		case library.SongRow:
			lines = append(lines, m.songLine(r, tv.Highlights[idx], width, base))
		}
	}
	return lines
}

func (m Model) albumLine(r library.AlbumRow, hl []int, width int, base lipgloss.Style) string {
	symbol := collapsedSymbol
	if r.Album.Expanded {
		symbol = expandedSymbol
	}
	style := m.theme.Album.Inherit(base)
	count := humanize.Comma(int64(len(r.Album.Tracks)))
	countWidth := lipgloss.Width(count) + 1

	prefix := " " + symbol + " "
	nameWidth := width - lipgloss.Width(prefix) - countWidth
	if nameWidth < 1 {
		return render.Highlight(prefix+r.Album.Name, render.Shift(hl, 3), width, style, m.theme.Match)
	}
	return style.Render(prefix) +
		render.Highlight(r.Album.Name, hl, nameWidth, style, m.theme.Match) +
		m.theme.Muted.Inherit(base).Render(" "+count)
}

func (m Model) songLine(r library.SongRow, hl []int, width int, base lipgloss.Style) string {
	const indent = "     "
	dur := render.Duration(r.Song.Duration)
	durWidth := 0
	if dur != "" {
		durWidth = lipgloss.Width(dur) + 1
	}
	titleWidth := width - len(indent) - durWidth
	if titleWidth < 1 {
		return render.Highlight(r.SearchString(), hl, width, base, m.theme.Match)
	}
	line := base.Render(indent) + render.Highlight(r.SearchString(), hl, titleWidth, base, m.theme.Match)
	if dur != "" {
		line += m.theme.Muted.Inherit(base).Render(" " + dur)
	}
	return line
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
