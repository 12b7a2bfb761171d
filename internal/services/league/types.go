package league

import (
	"github.com/q21league/q21player/internal/models"
	reportRepo "github.com/q21league/q21player/internal/repositories/report"
	"github.com/q21league/q21player/internal/services/round"
)

// Registration statuses the coordinator may answer with that count as accepted
var acceptedStatuses = map[string]bool{
	"REGISTERED": true,
	"ACCEPTED":   true,
	"OK":         true,
}

// Config holds configuration for the league service
type Config struct {
	// PlayerID is the local player's address
	PlayerID string

	// PlayerName is the local player's display name
	PlayerName string

	// Round is the round lifecycle service driven by round transitions
	Round round.Service

	// ReportRepo persists standings snapshots; optional
	ReportRepo reportRepo.Repository
}

// ProcessInput contains one league-classified message
type ProcessInput struct {
	// Type is the league message type
	Type string

	// Payload contains the message body
	Payload map[string]any

	// Sender is the coordinator's address
	Sender string
}

// ProcessOutput contains the result of handling a league message
type ProcessOutput struct {
	// Response is the message to send back, nil when none is needed
	Response *models.OutboundMessage

	// Matches holds parameters for matches to start after a round transition
	Matches []models.MatchParams

	// Reports holds termination reports produced by stopping a round
	Reports []*models.MatchReport

	// Summary is the local season summary, only set on LEAGUE_COMPLETED
	Summary *models.SeasonSummary
}
