package engine

// Op is an abstract command produced by the key resolver.
type Op int

const (
	OpMoveUp Op = iota
	OpMoveDown
	OpMoveLeft
	OpMoveRight
	OpToggleFold
	OpEnterSearch
	OpExitSearch
	OpAppendQuery
	OpBackspace
	OpSelect
	OpSwitchToLibrary
	OpSwitchToQueue
	OpToggleScreen
	OpDelete
	OpClearQueue
)

var opNames = map[Op]string{
	OpMoveUp:          "up",
	OpMoveDown:        "down",
	OpMoveLeft:        "left",
	OpMoveRight:       "right",
	OpToggleFold:      "fold",
	OpEnterSearch:     "search",
	OpExitSearch:      "escape",
	OpAppendQuery:     "append",
	OpBackspace:       "backspace",
	OpSelect:          "select",
	OpSwitchToLibrary: "switch_to_library",
	OpSwitchToQueue:   "switch_to_queue",
	OpToggleScreen:    "toggle_screen_lq",
	OpDelete:          "delete",
	OpClearQueue:      "clear_queue",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "unknown"
}

// Command is one input to the engine. Char is only used by OpAppendQuery.
type Command struct {
	Op   Op
	Char rune
}

// Do returns a command without an argument.
func Do(op Op) Command {
	return Command{Op: op}
}

// Append returns the command that adds r to the focused query.
func Append(r rune) Command {
	return Command{Op: OpAppendQuery, Char: r}
}
