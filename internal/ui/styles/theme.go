// Package styles builds the lipgloss styles of every theme slot.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/MoreDelay/inori/internal/config"
)

// Theme holds one style per configurable slot plus the panel borders.
type Theme struct {
	ItemHighlightActive   lipgloss.Style // cursor row of the focused list
	ItemHighlightInactive lipgloss.Style // cursor row of an unfocused list
	BlockActive           lipgloss.Style // border of the focused panel
	StatusArtist          lipgloss.Style
	StatusAlbum           lipgloss.Style
	StatusTitle           lipgloss.Style
	ArtistSort            lipgloss.Style // sort name next to an artist
	Album                 lipgloss.Style // album header rows
	Playing               lipgloss.Style
	Paused                lipgloss.Style
	Stopped               lipgloss.Style
	SlashSpan             lipgloss.Style // the "/" prompt of the search line
	SearchQueryActive     lipgloss.Style // query while typing
	SearchQueryInactive   lipgloss.Style // query while browsing results
	Match                 lipgloss.Style // matched characters

	Base   lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Border lipgloss.Color
}

var (
	primary  = lipgloss.Color("#a78bfa")
	accent   = lipgloss.Color("#f1a208")
	fgBase   = lipgloss.Color("#c0c0c0")
	fgMuted  = lipgloss.Color("#808080")
	fgSubtle = lipgloss.Color("#585858")
	bgCursor = lipgloss.Color("#303030")
	success  = lipgloss.Color("#42b883")
	failure  = lipgloss.Color("#ff5555")
)

// Default returns the built-in theme.
func Default() *Theme {
	base := lipgloss.NewStyle().Foreground(fgBase)
	return &Theme{
		ItemHighlightActive:   lipgloss.NewStyle().Background(bgCursor).Foreground(fgBase).Bold(true),
		ItemHighlightInactive: lipgloss.NewStyle().Background(bgCursor).Foreground(fgMuted),
		BlockActive:           lipgloss.NewStyle().Foreground(primary),
		StatusArtist:          lipgloss.NewStyle().Foreground(primary),
		StatusAlbum:           lipgloss.NewStyle().Foreground(fgMuted).Italic(true),
		StatusTitle:           base.Bold(true),
		ArtistSort:            lipgloss.NewStyle().Foreground(fgSubtle),
		Album:                 lipgloss.NewStyle().Foreground(accent),
		Playing:               lipgloss.NewStyle().Foreground(success).Bold(true),
		Paused:                lipgloss.NewStyle().Foreground(accent),
		Stopped:               lipgloss.NewStyle().Foreground(fgSubtle),
		SlashSpan:             lipgloss.NewStyle().Foreground(primary).Bold(true),
		SearchQueryActive:     base.Underline(true),
		SearchQueryInactive:   lipgloss.NewStyle().Foreground(fgMuted),
		Match:                 lipgloss.NewStyle().Foreground(primary).Bold(true),

		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(fgMuted),
		Error:  lipgloss.NewStyle().Foreground(failure),
		Border: fgSubtle,
	}
}

// FromConfig returns the default theme with the configured slots applied.
// Slot names and colors are expected to be validated already.
func FromConfig(slots map[string]config.StyleConfig) *Theme {
	t := Default()
	for name, sc := range slots {
		if s := t.slot(name); s != nil {
			*s = apply(*s, sc)
		}
	}
	return t
}

func (t *Theme) slot(name string) *lipgloss.Style {
	switch name {
	case config.SlotItemHighlightActive:
		return &t.ItemHighlightActive
	case config.SlotItemHighlightInactive:
		return &t.ItemHighlightInactive
	case config.SlotBlockActive:
		return &t.BlockActive
	case config.SlotStatusArtist:
		return &t.StatusArtist
	case config.SlotStatusAlbum:
		return &t.StatusAlbum
	case config.SlotStatusTitle:
		return &t.StatusTitle
	case config.SlotArtistSort:
		return &t.ArtistSort
	case config.SlotAlbum:
		return &t.Album
	case config.SlotPlaying:
		return &t.Playing
	case config.SlotPaused:
		return &t.Paused
	case config.SlotStopped:
		return &t.Stopped
	case config.SlotSlashSpan:
		return &t.SlashSpan
	case config.SlotSearchQueryActive:
		return &t.SearchQueryActive
	case config.SlotSearchQueryInactive:
		return &t.SearchQueryInactive
	case config.SlotMatch:
		return &t.Match
	}
	return nil
}

// apply overrides the parts of s that sc sets.
func apply(s lipgloss.Style, sc config.StyleConfig) lipgloss.Style {
	if c, ok := color(sc.Fg); ok {
		s = s.Foreground(c)
	}
	if c, ok := color(sc.Bg); ok {
		s = s.Background(c)
	}
	if sc.Bold {
		s = s.Bold(true)
	}
	if sc.Italic {
		s = s.Italic(true)
	}
	if sc.Underline {
		s = s.Underline(true)
	}
	if sc.Dim {
		s = s.Faint(true)
	}
	return s
}

// color converts a configured color. Hex colors are normalized to
// #rrggbb so short forms render the same on every terminal profile.
func color(c string) (lipgloss.Color, bool) {
	if c == "" {
		return "", false
	}
	if c[0] == '#' {
		hex, err := colorful.Hex(c)
		if err != nil {
			return "", false
		}
		return lipgloss.Color(hex.Hex()), true
	}
	return lipgloss.Color(c), true
}
