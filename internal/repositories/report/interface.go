package report

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/q21league/q21player/internal/repositories/report Repository

import (
	"context"

	"github.com/q21league/q21player/internal/models"
)

// Repository defines the interface for match report and standings
// persistence. Every report the core emits is archived here before the
// transport forwards it to the league coordinator.
type Repository interface {
	// SaveReport persists a match report
	SaveReport(ctx context.Context, input *SaveReportInput) error

	// GetReport retrieves the report for a match
	GetReport(ctx context.Context, input *GetReportInput) (*models.MatchReport, error)

	// ListReports retrieves all reports archived for a round
	ListReports(ctx context.Context, input *ListReportsInput) ([]*models.MatchReport, error)

	// SaveStandings persists the latest standings snapshot for a season
	SaveStandings(ctx context.Context, input *SaveStandingsInput) error

	// GetStandings retrieves the standings snapshot for a season
	GetStandings(ctx context.Context, input *GetStandingsInput) (*models.Standings, error)
}
