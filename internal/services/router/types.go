package router

import (
	"github.com/q21league/q21player/internal/models"
	"github.com/q21league/q21player/internal/services/league"
	"github.com/q21league/q21player/internal/services/round"
)

// Config holds configuration for the router service
type Config struct {
	// League handles league-side broadcasts and coordinator messages
	League league.Service

	// Round handles game messages addressed to active match sessions
	Round round.Service
}

// RouteInput contains one inbound message
type RouteInput struct {
	// Type is the message type string
	Type string

	// Payload contains the decoded message body
	Payload map[string]any

	// Sender is the address the message came from
	Sender string
}

// RouteOutput contains the result of dispatching a message
type RouteOutput struct {
	// Response is the message to send back, nil when none is needed
	Response *models.OutboundMessage

	// Matches holds new match parameters when the message started a round
	Matches []models.MatchParams

	// Reports holds match reports the message caused to be emitted
	Reports []*models.MatchReport

	// Summary is set when the message completed the season
	Summary *models.SeasonSummary

	// Handled is false when no handler owns the message type
	Handled bool
}
