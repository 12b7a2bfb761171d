package match

import (
	"github.com/q21league/q21player/internal/common/clock"
	"github.com/q21league/q21player/internal/models"
	"github.com/q21league/q21player/internal/strategy"
)

// Config holds configuration for a match session
type Config struct {
	// Params is the immutable match parameter bundle from round start
	Params models.MatchParams

	// Strategy is the decision-making capability driven by the session
	Strategy strategy.Strategy

	// Clock supplies report timestamps
	Clock clock.Clock
}

// HandleMessageInput contains one inbound game message
type HandleMessageInput struct {
	// Type is the game message type (e.g. Q21WARMUPCALL)
	Type string

	// Payload contains the message body
	Payload map[string]any

	// Sender is the referee's address
	Sender string
}

// HandleMessageOutput contains the result of a phase transition
type HandleMessageOutput struct {
	// Response is the message to send back, nil for terminal messages
	Response *models.OutboundMessage

	// Phase is the session phase after the transition
	Phase models.MatchPhase
}
