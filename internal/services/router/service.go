// Package router classifies inbound messages by type prefix and dispatches
// them to the league or game handler. Unrecognized types are reported as
// not handled rather than treated as errors, so foreign traffic on a shared
// channel stays inert.
package router

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/q21league/q21player/internal/protocol"
	"github.com/q21league/q21player/internal/services/league"
	"github.com/q21league/q21player/internal/services/round"
)

// service implements the Service interface
type service struct {
	league league.Service
	round  round.Service
}

// NewService creates a new router service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.League == nil {
		return nil, errors.New("league service cannot be nil")
	}

	if cfg.Round == nil {
		return nil, errors.New("round service cannot be nil")
	}

	return &service{
		league: cfg.League,
		round:  cfg.Round,
	}, nil
}

// Route dispatches one inbound message
func (s *service) Route(ctx context.Context, input *RouteInput) (*RouteOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch protocol.Classify(input.Type) {
	case protocol.KindLeague:
		processed, err := s.league.Process(ctx, &league.ProcessInput{
			Type:    input.Type,
			Payload: input.Payload,
			Sender:  input.Sender,
		})
		if err != nil {
			return nil, fmt.Errorf("league message %s: %w", input.Type, err)
		}
		return &RouteOutput{
			Response: processed.Response,
			Matches:  processed.Matches,
			Reports:  processed.Reports,
			Summary:  processed.Summary,
			Handled:  true,
		}, nil

	case protocol.KindGame:
		routed, err := s.round.RouteGameMessage(ctx, &round.RouteGameMessageInput{
			Type:    input.Type,
			Payload: input.Payload,
			Sender:  input.Sender,
		})
		if err != nil {
			return nil, fmt.Errorf("game message %s: %w", input.Type, err)
		}
		return &RouteOutput{
			Response: routed.Response,
			Reports:  routed.Reports,
			Handled:  true,
		}, nil

	default:
		log.Printf("ignoring message with unrecognized type %q from %s", input.Type, input.Sender)
		return &RouteOutput{Handled: false}, nil
	}
}
