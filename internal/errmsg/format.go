// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants, grouped by what they act on.
const (
	// Library operations
	OpArtistsLoad Op = "load artists"
	OpAlbumsLoad  Op = "load albums"

	// Queue operations
	OpQueueLoad   Op = "load queue"
	OpQueueAdd    Op = "add to queue"
	OpQueueDelete Op = "remove from queue"
	OpQueueClear  Op = "clear queue"

	// Playback operations
	OpPlay        Op = "play queue entry"
	OpPause       Op = "toggle pause"
	OpToggleFlag  Op = "toggle playback option"
	OpStatusFetch Op = "read player status"

	// Connection
	OpConnect Op = "connect to music server"

	// Session state
	OpStateSave Op = "save session state"
	OpStateLoad Op = "restore session state"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
