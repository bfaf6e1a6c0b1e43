// Package match provides the fuzzy-match oracles used to filter library and queue lists.
//
// An Oracle is a pure function of (query, candidate): it either rejects the
// candidate or returns a score and the rune positions that matched, which the
// render layer uses for highlighting.
package match

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// ErrUnknownMatcher is returned by New for an unrecognized matcher name.
var ErrUnknownMatcher = errors.New("unknown matcher")

// Matcher names accepted by New and the configuration file.
const (
	NameFuzzy = "fuzzy"
	NameFZF   = "fzf"
)

// Result is a successful match of a query against one candidate string.
type Result struct {
	Score     int
	Positions []int // rune indices into the candidate, ascending
}

// Oracle scores a candidate string against a query.
// ok is false when the candidate does not match at all.
type Oracle interface {
	Match(query, candidate string) (res Result, ok bool)
}

// Func adapts a plain function to the Oracle interface.
type Func func(query, candidate string) (Result, bool)

// Match implements Oracle.
func (f Func) Match(query, candidate string) (Result, bool) {
	return f(query, candidate)
}

// New returns the oracle registered under name. An empty name selects the default.
func New(name string) (Oracle, error) {
	switch name {
	case "", NameFuzzy:
		return Fuzzy{}, nil
	case NameFZF:
		return NewFZF(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatcher, name)
	}
}

// byteToRune converts ascending byte offsets in s into rune indices.
func byteToRune(s string, offsets []int) []int {
	if len(offsets) == 0 {
		return nil
	}
	out := make([]int, 0, len(offsets))
	next := 0
	runeIdx := 0
	for i := range s {
		for next < len(offsets) && offsets[next] == i {
			out = append(out, runeIdx)
			next++
		}
		if next == len(offsets) {
			break
		}
		runeIdx++
	}
	return out
}

func sortedCopy(positions []int) []int {
	out := make([]int, len(positions))
	copy(out, positions)
	sort.Ints(out)
	return out
}

// isASCII reports whether s can use byte offsets as rune indices directly.
func isASCII(s string) bool {
	return utf8.RuneCountInString(s) == len(s)
}
