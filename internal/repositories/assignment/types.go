package assignment

import "github.com/q21league/q21player/internal/models"

// SaveAssignmentsInput contains parameters for storing a round's assignments
type SaveAssignmentsInput struct {
	// SeasonID identifies the season
	SeasonID string

	// RoundNumber is the round the assignments belong to
	RoundNumber int

	// Assignments is the enriched assignment list for the local player
	Assignments []models.Assignment
}

// GetAssignmentsInput contains parameters for retrieving a round's assignments
type GetAssignmentsInput struct {
	// SeasonID identifies the season
	SeasonID string

	// RoundNumber is the round to retrieve
	RoundNumber int
}
