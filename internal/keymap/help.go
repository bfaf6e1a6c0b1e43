package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// shortActions are shown in the one-line footer.
var shortActions = []Action{
	ActionLocalSearch,
	ActionSelect,
	ActionFold,
	ActionToggleScreen,
	ActionPlayPause,
	ActionQuit,
}

// Help adapts a Resolver's bindings to bubbles/help.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelp builds the help entries for the bound actions of r.
func NewHelp(r *Resolver) Help {
	var h Help
	for _, a := range shortActions {
		if b, ok := helpBinding(r, a); ok {
			h.short = append(h.short, b)
		}
	}

	const perColumn = 7
	var column []key.Binding
	for _, a := range Actions {
		b, ok := helpBinding(r, a)
		if !ok {
			continue
		}
		column = append(column, b)
		if len(column) == perColumn {
			h.full = append(h.full, column)
			column = nil
		}
	}
	if len(column) > 0 {
		h.full = append(h.full, column)
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding { return h.full }

func helpBinding(r *Resolver, a Action) (key.Binding, bool) {
	seqs := r.KeysFor(a)
	if len(seqs) == 0 {
		return key.Binding{}, false
	}
	shown := make([]string, len(seqs))
	for i, seq := range seqs {
		shown[i] = displaySequence(seq)
	}
	return key.NewBinding(
		key.WithKeys(seqs...),
		key.WithHelp(strings.Join(shown, "/"), Describe(a)),
	), true
}

// displaySequence renders a stored sequence ("g g", " ") for help text.
func displaySequence(seq string) string {
	if seq == " " {
		return Display(seq)
	}
	parts := strings.Split(seq, " ")
	for i, p := range parts {
		parts[i] = Display(p)
	}
	return strings.Join(parts, " ")
}
