package league

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/q21league/q21player/internal/services/league Service

import (
	"context"

	"github.com/q21league/q21player/internal/models"
)

// Service defines the interface for league broadcast handling. It owns the
// season identity, registration state, and standings, and drives the round
// service on round transitions and season end.
type Service interface {
	// Process handles one league-classified message and produces the
	// response and any round-transition side effects
	Process(ctx context.Context, input *ProcessInput) (*ProcessOutput, error)

	// IsRegistered reports whether the player is registered for the season
	IsRegistered() bool

	// SeasonID returns the current season id, empty before a season starts
	SeasonID() string

	// Standings returns the last-known league standings
	Standings() models.Standings
}
