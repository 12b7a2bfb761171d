package round

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/q21league/q21player/internal/services/round Service

import "context"

// Service defines the interface for round lifecycle operations. It owns
// the set of currently active match sessions; round transitions are atomic
// with respect to message processing because the routing layer is
// single-threaded.
type Service interface {
	// SetSeason records the season the following rounds belong to
	SetSeason(seasonID string)

	// CurrentRound returns the currently active round number
	CurrentRound() int

	// SetAssignments stores the assignment list for a round, overwriting
	// any previous list for that round
	SetAssignments(ctx context.Context, input *SetAssignmentsInput) error

	// HasAssignments reports whether the local player has assignments for
	// a round
	HasAssignments(ctx context.Context, input *HasAssignmentsInput) (*HasAssignmentsOutput, error)

	// StartRound stops the previous round and creates sessions for the
	// new round's assignments
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// StopRound force-stops all active sessions, producing one termination
	// report per session that had not yet finished
	StopRound(ctx context.Context, input *StopRoundInput) (*StopRoundOutput, error)

	// RouteGameMessage forwards a game message to the session owning its
	// match id
	RouteGameMessage(ctx context.Context, input *RouteGameMessageInput) (*RouteGameMessageOutput, error)
}
