package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrBadKey is returned for a key that cannot be parsed.
var ErrBadKey = errors.New("invalid key")

var namedKeys = map[string]string{
	"<space>":     " ",
	"<esc>":       "esc",
	"<tab>":       "tab",
	"<backspace>": "backspace",
	"<delete>":    "delete",
	"<enter>":     "enter",
	"<up>":        "up",
	"<down>":      "down",
	"<left>":      "left",
	"<right>":     "right",
	"<home>":      "home",
	"<end>":       "end",
	"<pgup>":      "pgup",
	"<pgdown>":    "pgdown",
}

// ParseSequence parses a space-separated key sequence such as "g g",
// "C-a", "M-<enter>" or "<space>" into terminal key names.
func ParseSequence(s string) ([]string, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrBadKey)
	}
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		k, err := ParseKey(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// ParseKey parses one key. Modifier prefixes are C- (ctrl), M- (alt),
// S- (shift) and their combination C-M-.
func ParseKey(s string) (string, error) {
	var ctrl, alt, shift bool
	rest := s
	for len(rest) > 2 && rest[1] == '-' {
		switch rest[0] {
		case 'C':
			ctrl = true
		case 'M':
			alt = true
		case 'S':
			shift = true
		default:
			return "", fmt.Errorf("%w: %q", ErrBadKey, s)
		}
		rest = rest[2:]
	}

	base, ok := namedKeys[rest]
	if !ok {
		if utf8.RuneCountInString(rest) != 1 {
			return "", fmt.Errorf("%w: %q", ErrBadKey, s)
		}
		base = rest
		if shift {
			base = strings.ToUpper(base)
			shift = false
		}
	}

	var b strings.Builder
	if alt {
		b.WriteString("alt+")
	}
	if ctrl {
		if base == " " {
			base = "@"
		}
		b.WriteString("ctrl+")
		base = strings.ToLower(base)
	}
	if shift {
		b.WriteString("shift+")
	}
	b.WriteString(base)
	return b.String(), nil
}

// Display renders a terminal key name for help text.
func Display(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
