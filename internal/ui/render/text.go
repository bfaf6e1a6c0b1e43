// Package render draws list rows: sanitizing server metadata, fitting it
// to a column width and styling the characters a query matched.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Sanitize drops control characters (except tab) and invalid UTF-8 and
// turns non-breaking spaces into plain ones. Tags from the server can
// contain anything.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c < 0x20 && c != '\t' {
			return true
		}
		if c >= 0x80 && c <= 0x9f {
			return true
		}
		if c == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Width returns the display width of s, ignoring escape sequences.
func Width(s string) int {
	return uniseg.StringWidth(ansi.Strip(s))
}

// Truncate shortens s to maxWidth cells, ending in Ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, Ellipsis)
}

// Fit truncates s and pads it with spaces to exactly width cells.
func Fit(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Row places left and right at the edges of a line of width cells,
// keeping at least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator returns a horizontal rule.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// Highlight renders s into exactly width cells: runes whose index is in
// positions use hl, everything else (including padding) uses base.
// Positions are rune indices into s as given to the matcher.
func Highlight(s string, positions []int, width int, base, hl lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	clean := Sanitize(s)
	if clean != s {
		// Indices no longer line up with the sanitized text.
		positions = nil
	}

	runes := []rune(clean)
	keep, tail := len(runes), ""
	if runewidth.StringWidth(clean) > width {
		limit := width - runewidth.StringWidth(Ellipsis)
		keep = 0
		used := 0
		for keep < len(runes) {
			w := runewidth.RuneWidth(runes[keep])
			if used+w > limit {
				break
			}
			used += w
			keep++
		}
		tail = Ellipsis
	}

	marked := make(map[int]bool, len(positions))
	for _, p := range positions {
		marked[p] = true
	}

	hl = hl.Inherit(base)
	var b strings.Builder
	start := 0
	for start < keep {
		end := start + 1
		for end < keep && marked[end] == marked[start] {
			end++
		}
		style := base
		if marked[start] {
			style = hl
		}
		b.WriteString(style.Render(string(runes[start:end])))
		start = end
	}

	used := runewidth.StringWidth(string(runes[:keep])) + runewidth.StringWidth(tail)
	if pad := width - used; pad > 0 || tail != "" {
		b.WriteString(base.Render(tail + strings.Repeat(" ", max(pad, 0))))
	}
	return b.String()
}

// Shift moves highlight positions right by n runes, for text rendered
// after a prefix.
func Shift(positions []int, n int) []int {
	if len(positions) == 0 {
		return nil
	}
	out := make([]int, len(positions))
	for i, p := range positions {
		out[i] = p + n
	}
	return out
}

// Duration formats a track length as m:ss, or h:mm:ss past an hour.
func Duration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	s := int(d.Round(time.Second) / time.Second)
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
