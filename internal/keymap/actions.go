// Package keymap defines key bindings and resolves key sequences to actions.
package keymap

import "errors"

// ErrUnknownAction is returned for a binding whose action name is not known.
var ErrUnknownAction = errors.New("unknown command")

// Action represents a user-triggerable action. The string is the name used
// in the [keybindings] section of the configuration file.
type Action string

const (
	// Global actions
	ActionQuit            Action = "quit"
	ActionSwitchToLibrary Action = "switch_to_library"
	ActionSwitchToQueue   Action = "switch_to_queue"
	ActionToggleScreen    Action = "toggle_screen_lq"
	ActionLocalSearch     Action = "local_search"
	ActionGlobalSearch    Action = "global_search"
	ActionEscape          Action = "escape"

	// Navigation actions
	ActionMoveUp    Action = "up"
	ActionMoveDown  Action = "down"
	ActionMoveLeft  Action = "left"
	ActionMoveRight Action = "right"

	// Selection/activation actions
	ActionSelect Action = "select" // enqueue in the library, play in the queue
	ActionFold   Action = "fold"

	// Queue actions
	ActionDelete     Action = "delete"
	ActionClearQueue Action = "clear_queue"

	// Playback actions
	ActionPlayPause     Action = "toggle_playpause"
	ActionToggleRepeat  Action = "tog_repeat"
	ActionToggleSingle  Action = "tog_single"
	ActionToggleConsume Action = "tog_consume"
	ActionToggleRandom  Action = "tog_random"
)

// Actions lists every action in help order.
var Actions = []Action{
	ActionMoveUp,
	ActionMoveDown,
	ActionMoveLeft,
	ActionMoveRight,
	ActionSelect,
	ActionFold,
	ActionLocalSearch,
	ActionGlobalSearch,
	ActionEscape,
	ActionSwitchToLibrary,
	ActionSwitchToQueue,
	ActionToggleScreen,
	ActionDelete,
	ActionClearQueue,
	ActionPlayPause,
	ActionToggleRepeat,
	ActionToggleSingle,
	ActionToggleConsume,
	ActionToggleRandom,
	ActionQuit,
}

// ParseAction validates an action name.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if string(a) == name {
			return a, nil
		}
	}
	return "", ErrUnknownAction
}
