package assignment

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/q21league/q21player/internal/repositories/assignment Repository

import (
	"context"

	"github.com/q21league/q21player/internal/models"
)

// Repository defines the interface for assignment persistence. The round
// lifecycle manager writes through to it so a restarted player can recover
// its roster for the current round.
type Repository interface {
	// SaveAssignments stores the assignment list for a round, overwriting
	// any previous list for the same round
	SaveAssignments(ctx context.Context, input *SaveAssignmentsInput) error

	// GetAssignments retrieves the assignment list for a round
	GetAssignments(ctx context.Context, input *GetAssignmentsInput) ([]models.Assignment, error)
}
