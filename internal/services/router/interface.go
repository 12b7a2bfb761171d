package router

import "context"

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/q21league/q21player/internal/services/router Service

// Service dispatches inbound messages to the league or game handler
type Service interface {
	// Route classifies one inbound message by its type prefix and hands it
	// to the matching handler. Messages neither handler owns come back with
	// Handled set to false.
	Route(ctx context.Context, input *RouteInput) (*RouteOutput, error)
}
