package keymap

import (
	"fmt"
	"slices"
)

// Binding maps key sequences to one action.
type Binding struct {
	Action      Action
	Keys        []string // sequences in configuration syntax, e.g. "g g" or "C-a"
	Description string
}

// Defaults contains the built-in bindings.
var Defaults = []Binding{
	{ActionMoveUp, []string{"k", "<up>"}, "Move up"},
	{ActionMoveDown, []string{"j", "<down>"}, "Move down"},
	{ActionMoveLeft, []string{"h", "<left>"}, "Artists"},
	{ActionMoveRight, []string{"l", "<right>"}, "Tracks"},
	{ActionSelect, []string{"<enter>"}, "Select"},
	{ActionFold, []string{"<space>"}, "Fold album"},
	{ActionLocalSearch, []string{"/"}, "Search"},
	{ActionGlobalSearch, []string{"g"}, "Search artists"},
	{ActionEscape, []string{"<esc>"}, "Clear search"},
	{ActionSwitchToLibrary, []string{"1"}, "Library"},
	{ActionSwitchToQueue, []string{"2"}, "Queue"},
	{ActionToggleScreen, []string{"<tab>"}, "Switch screen"},
	{ActionDelete, []string{"<backspace>"}, "Remove from queue"},
	{ActionClearQueue, []string{"-"}, "Clear queue"},
	{ActionPlayPause, []string{"p"}, "Play/pause"},
	{ActionToggleRepeat, []string{"r"}, "Repeat"},
	{ActionToggleSingle, []string{"s"}, "Single"},
	{ActionToggleConsume, []string{"c"}, "Consume"},
	{ActionToggleRandom, []string{"z"}, "Random"},
	{ActionQuit, []string{"q"}, "Quit"},
}

// WithOverrides returns the default bindings with one sequence added per
// named action. A default sequence that collides with an
// override (equal, or one a prefix of the other) is dropped, so the user's
// binding wins and two actions can swap keys.
func WithOverrides(overrides map[string]string) ([]Binding, error) {
	added := make(map[Action][]string, len(overrides))
	var claimed [][]string
	for name, seq := range overrides {
		action, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("keybinding %q: %w", name, err)
		}
		keys, err := ParseSequence(seq)
		if err != nil {
			return nil, fmt.Errorf("keybinding %q: %w", name, err)
		}
		added[action] = append(added[action], seq)
		claimed = append(claimed, keys)
	}

	out := make([]Binding, len(Defaults))
	for i, b := range Defaults {
		out[i] = b
		out[i].Keys = nil
		for _, seq := range b.Keys {
			keys, err := ParseSequence(seq)
			if err != nil {
				return nil, err
			}
			if collides(keys, claimed) {
				continue
			}
			out[i].Keys = append(out[i].Keys, seq)
		}
		for _, seq := range added[b.Action] {
			if !slices.Contains(out[i].Keys, seq) {
				out[i].Keys = append(out[i].Keys, seq)
			}
		}
	}
	return out, nil
}

// collides reports whether keys equals or prefixes any claimed sequence, or
// is prefixed by one.
func collides(keys []string, claimed [][]string) bool {
	for _, c := range claimed {
		n := min(len(keys), len(c))
		if slices.Equal(keys[:n], c[:n]) {
			return true
		}
	}
	return false
}

// Describe returns the description of an action.
func Describe(action Action) string {
	for _, b := range Defaults {
		if b.Action == action {
			return b.Description
		}
	}
	return string(action)
}
