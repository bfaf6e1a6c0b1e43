// Package playerbar draws the one-line now-playing bar: play state,
// current song, playback flags and progress.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MoreDelay/inori/internal/mpd"
	"github.com/MoreDelay/inori/internal/ui/render"
	"github.com/MoreDelay/inori/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
	separator   = " · "
)

// State holds everything needed to render the bar.
type State struct {
	Play     mpd.PlayState
	Title    string
	Artist   string
	Album    string
	Elapsed  time.Duration
	Duration time.Duration

	Repeat, Random, Single, Consume bool
}

// NewState builds a State from a server status.
func NewState(st mpd.Status) State {
	s := State{
		Play:     st.State,
		Elapsed:  st.Elapsed,
		Duration: st.Duration,
		Repeat:   st.Repeat,
		Random:   st.Random,
		Single:   st.Single,
		Consume:  st.Consume,
	}
	if st.HasCurrent {
		s.Title = st.Current.DisplayTitle()
		s.Artist = st.Current.Artist
		s.Album = st.Current.Album
	}
	return s
}

// Render returns the bar for the given width.
func Render(s State, theme *styles.Theme, width int) string {
	if width <= 0 {
		return ""
	}

	status := theme.Stopped.Render(stopSymbol)
	switch s.Play {
	case mpd.Playing:
		status = theme.Playing.Render(playSymbol)
	case mpd.Paused:
		status = theme.Paused.Render(pauseSymbol)
	case mpd.Stopped:
	}

	flags := renderFlags(s, theme)
	var progress string
	if s.Play != mpd.Stopped {
		progress = RenderProgressBar(s.Elapsed, s.Duration, min(width/3, 40))
	}
	right := flags
	if progress != "" {
		right = flags + "  " + theme.Muted.Render(progress)
	}

	infoWidth := width - lipgloss.Width(status) - 1 - lipgloss.Width(right) - 2
	if infoWidth < 8 {
		return render.Row(status, flags, width)
	}
	return render.Row(status+" "+renderSong(s, theme, infoWidth), right, width)
}

// renderSong renders "title · artist · album", cutting from the end.
func renderSong(s State, theme *styles.Theme, width int) string {
	type part struct {
		text  string
		style lipgloss.Style
	}
	parts := []part{
		{s.Title, theme.StatusTitle},
		{s.Artist, theme.StatusArtist},
		{s.Album, theme.StatusAlbum},
	}

	var b strings.Builder
	left := width
	for _, p := range parts {
		if p.text == "" {
			continue
		}
		if b.Len() > 0 {
			if left <= lipgloss.Width(separator) {
				break
			}
			b.WriteString(theme.Muted.Render(separator))
			left -= lipgloss.Width(separator)
		}
		text := render.Truncate(p.text, left)
		b.WriteString(p.style.Render(text))
		left -= lipgloss.Width(text)
		if left <= 0 {
			break
		}
	}
	return b.String()
}

// renderFlags shows repeat, random, single and consume as r z s c, muted
// when off.
func renderFlags(s State, theme *styles.Theme) string {
	flags := []struct {
		on     bool
		letter string
	}{
		{s.Repeat, "r"},
		{s.Random, "z"},
		{s.Single, "s"},
		{s.Consume, "c"},
	}
	out := make([]string, len(flags))
	for i, f := range flags {
		if f.on {
			out[i] = theme.Base.Bold(true).Render(f.letter)
		} else {
			out[i] = theme.Muted.Faint(true).Render("-")
		}
	}
	return "[" + strings.Join(out, "") + "]"
}
