package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MoreDelay/inori/internal/engine"
	"github.com/MoreDelay/inori/internal/keymap"
	"github.com/MoreDelay/inori/internal/mpd"
)

// actionOps maps bindings that are plain engine commands.
var actionOps = map[keymap.Action]engine.Op{
	keymap.ActionMoveUp:          engine.OpMoveUp,
	keymap.ActionMoveDown:        engine.OpMoveDown,
	keymap.ActionMoveLeft:        engine.OpMoveLeft,
	keymap.ActionMoveRight:       engine.OpMoveRight,
	keymap.ActionSelect:          engine.OpSelect,
	keymap.ActionFold:            engine.OpToggleFold,
	keymap.ActionLocalSearch:     engine.OpEnterSearch,
	keymap.ActionEscape:          engine.OpExitSearch,
	keymap.ActionSwitchToLibrary: engine.OpSwitchToLibrary,
	keymap.ActionSwitchToQueue:   engine.OpSwitchToQueue,
	keymap.ActionToggleScreen:    engine.OpToggleScreen,
	keymap.ActionDelete:          engine.OpDelete,
	keymap.ActionClearQueue:      engine.OpClearQueue,
}

var actionFlags = map[keymap.Action]mpd.Flag{
	keymap.ActionToggleRepeat:  mpd.FlagRepeat,
	keymap.ActionToggleRandom:  mpd.FlagRandom,
	keymap.ActionToggleSingle:  mpd.FlagSingle,
	keymap.ActionToggleConsume: mpd.FlagConsume,
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	m.clearMessage()

	var cmd tea.Cmd
	if m.engine.Typing() {
		cmd = m.handleTypingKey(msg)
	} else {
		var quit bool
		cmd, quit = m.handleBoundKey(msg.String())
		if quit {
			m.saveState()
			return m, tea.Quit
		}
	}
	m.saveState()
	return m, cmd
}

// handleTypingKey edits the query. Printable keys are text here, never
// bindings.
func (m Model) handleTypingKey(msg tea.KeyMsg) tea.Cmd {
	var cmds []engine.Command
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			cmds = append(cmds, engine.Append(r))
		}
	case tea.KeySpace:
		cmds = append(cmds, engine.Append(' '))
	case tea.KeyBackspace:
		cmds = append(cmds, engine.Do(engine.OpBackspace))
	case tea.KeyEnter:
		cmds = append(cmds, engine.Do(engine.OpSelect))
	case tea.KeyEsc:
		cmds = append(cmds, engine.Do(engine.OpExitSearch))
	case tea.KeyUp:
		cmds = append(cmds, engine.Do(engine.OpMoveUp))
	case tea.KeyDown:
		cmds = append(cmds, engine.Do(engine.OpMoveDown))
	}

	var effects []engine.Effect
	for _, c := range cmds {
		effects = append(effects, m.engine.Handle(c)...)
	}
	return m.runEffects(effects)
}

// handleBoundKey feeds one key to the resolver and runs the action of a
// completed sequence.
func (m Model) handleBoundKey(key string) (tea.Cmd, bool) {
	action, res := m.resolver.Feed(key)
	if res != keymap.Matched {
		return nil, false
	}

	if op, ok := actionOps[action]; ok {
		return m.runEffects(m.engine.Handle(engine.Do(op))), false
	}
	if f, ok := actionFlags[action]; ok {
		return m.toggleFlag(f), false
	}

	switch action {
	case keymap.ActionQuit:
		return nil, true
	case keymap.ActionGlobalSearch:
		var effects []engine.Effect
		for _, op := range []engine.Op{engine.OpSwitchToLibrary, engine.OpMoveLeft, engine.OpEnterSearch} {
			effects = append(effects, m.engine.Handle(engine.Do(op))...)
		}
		return m.runEffects(effects), false
	case keymap.ActionPlayPause:
		return m.togglePause(), false
	}
	return nil, false
}
