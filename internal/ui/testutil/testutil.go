// Package testutil holds helpers for asserting on rendered panes.
package testutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Lines strips escape sequences from a rendered view and splits it into
// lines.
func Lines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}

// FindLine returns the first plain-text line containing substr.
func FindLine(view, substr string) (string, bool) {
	for _, line := range Lines(view) {
		if strings.Contains(line, substr) {
			return line, true
		}
	}
	return "", false
}

// LineIndex returns the index of the first line containing substr, or -1.
func LineIndex(view, substr string) int {
	for i, line := range Lines(view) {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// Width returns the widest line of a rendered view.
func Width(view string) int {
	w := 0
	for _, line := range strings.Split(view, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}
