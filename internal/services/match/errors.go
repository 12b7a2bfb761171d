package match

import "errors"

// Define errors
var (
	// ErrUnexpectedMessage indicates a game message type that is unknown or
	// out of sequence for the session's current phase. This is a protocol
	// violation and is never silently swallowed.
	ErrUnexpectedMessage = errors.New("unexpected game message for current phase")

	// ErrTerminalSession indicates a message arrived for a session that has
	// already completed or been terminated.
	ErrTerminalSession = errors.New("session is in a terminal phase")
)
