package report

import "github.com/q21league/q21player/internal/models"

// SaveReportInput contains parameters for archiving a match report
type SaveReportInput struct {
	// Report is the report to archive
	Report *models.MatchReport
}

// GetReportInput contains parameters for retrieving a match report
type GetReportInput struct {
	// MatchID identifies the match
	MatchID string
}

// ListReportsInput contains parameters for listing a round's reports
type ListReportsInput struct {
	// SeasonID identifies the season
	SeasonID string

	// RoundNumber is the round to list
	RoundNumber int
}

// SaveStandingsInput contains parameters for storing a standings snapshot
type SaveStandingsInput struct {
	// SeasonID identifies the season
	SeasonID string

	// Standings is the snapshot to store
	Standings *models.Standings
}

// GetStandingsInput contains parameters for retrieving a standings snapshot
type GetStandingsInput struct {
	// SeasonID identifies the season
	SeasonID string
}
