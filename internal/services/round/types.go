package round

import (
	"github.com/q21league/q21player/internal/common/clock"
	"github.com/q21league/q21player/internal/common/uuid"
	"github.com/q21league/q21player/internal/models"
	assignmentRepo "github.com/q21league/q21player/internal/repositories/assignment"
	reportRepo "github.com/q21league/q21player/internal/repositories/report"
	"github.com/q21league/q21player/internal/strategy"
)

// Config holds configuration for the round service
type Config struct {
	// PlayerID is the local player's address
	PlayerID string

	// Strategy is handed to every match session the service creates
	Strategy strategy.Strategy

	// Clock supplies report timestamps
	Clock clock.Clock

	// UUID supplies report identifiers
	UUID uuid.UUID

	// AssignmentRepo persists assignments across restarts; optional
	AssignmentRepo assignmentRepo.Repository

	// ReportRepo archives emitted match reports; optional
	ReportRepo reportRepo.Repository
}

// SetAssignmentsInput contains parameters for storing a round's assignments
type SetAssignmentsInput struct {
	// RoundNumber is the round the assignments belong to
	RoundNumber int

	// Assignments is the enriched assignment list for the local player
	Assignments []models.Assignment
}

// HasAssignmentsInput contains parameters for checking a round's assignments
type HasAssignmentsInput struct {
	// RoundNumber is the round to check
	RoundNumber int
}

// HasAssignmentsOutput contains the result of an assignment check
type HasAssignmentsOutput struct {
	// Active indicates the local player has at least one match in the round
	Active bool
}

// StartRoundInput contains parameters for starting a round
type StartRoundInput struct {
	// RoundNumber is the round to start
	RoundNumber int
}

// StartRoundOutput contains the result of a round transition
type StartRoundOutput struct {
	// Matches holds the parameters for every match the player must run
	Matches []models.MatchParams

	// Reports holds the termination reports produced by stopping the
	// previous round
	Reports []*models.MatchReport
}

// StopRoundInput contains parameters for force-stopping the active round
type StopRoundInput struct {
	// Reason is the termination reason code recorded in the reports
	Reason string
}

// StopRoundOutput contains the result of stopping a round
type StopRoundOutput struct {
	// Reports holds one termination report per session that was not yet
	// terminal; empty when the round had no unfinished matches
	Reports []*models.MatchReport
}

// RouteGameMessageInput contains one inbound game message
type RouteGameMessageInput struct {
	// Type is the game message type
	Type string

	// Payload contains the message body, including the match_id key
	Payload map[string]any

	// Sender is the referee's address
	Sender string
}

// RouteGameMessageOutput contains the result of routing a game message
type RouteGameMessageOutput struct {
	// Response is the message to send back, nil when none is needed
	Response *models.OutboundMessage

	// Reports holds the completion report when the message finished the
	// match
	Reports []*models.MatchReport
}
