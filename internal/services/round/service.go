// Package round implements the round lifecycle manager. It stores the
// assignments broadcast for each round, creates one match session per
// assignment when a round starts, and tears the previous round down
// atomically: unfinished sessions are terminated and reported before any
// new session exists.
package round

import (
	"context"
	"errors"
	"log"

	"github.com/q21league/q21player/internal/common/clock"
	"github.com/q21league/q21player/internal/common/uuid"
	"github.com/q21league/q21player/internal/models"
	"github.com/q21league/q21player/internal/protocol"
	assignmentRepo "github.com/q21league/q21player/internal/repositories/assignment"
	reportRepo "github.com/q21league/q21player/internal/repositories/report"
	"github.com/q21league/q21player/internal/services/match"
	"github.com/q21league/q21player/internal/strategy"
)

// service implements the Service interface
type service struct {
	playerID       string
	strat          strategy.Strategy
	clock          clock.Clock
	uuider         uuid.UUID
	assignmentRepo assignmentRepo.Repository
	reportRepo     reportRepo.Repository

	seasonID     string
	currentRound int
	active       map[string]*match.Session
	assignments  map[int][]models.Assignment
}

// NewService creates a new round service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Strategy == nil {
		return nil, errors.New("strategy cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	u := cfg.UUID
	if u == nil {
		u = uuid.New()
	}

	return &service{
		playerID:       cfg.PlayerID,
		strat:          cfg.Strategy,
		clock:          c,
		uuider:         u,
		assignmentRepo: cfg.AssignmentRepo,
		reportRepo:     cfg.ReportRepo,
		active:         make(map[string]*match.Session),
		assignments:    make(map[int][]models.Assignment),
	}, nil
}

// SetSeason records the season the following rounds belong to
func (s *service) SetSeason(seasonID string) {
	s.seasonID = seasonID
}

// CurrentRound returns the currently active round number
func (s *service) CurrentRound() int {
	return s.currentRound
}

// SetAssignments stores the assignment list for a round. Persistence
// failures are logged and do not block message processing; the in-memory
// list is authoritative for the running process.
func (s *service) SetAssignments(ctx context.Context, input *SetAssignmentsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	s.assignments[input.RoundNumber] = input.Assignments

	if s.assignmentRepo != nil {
		err := s.assignmentRepo.SaveAssignments(ctx, &assignmentRepo.SaveAssignmentsInput{
			SeasonID:    s.seasonID,
			RoundNumber: input.RoundNumber,
			Assignments: input.Assignments,
		})
		if err != nil {
			log.Printf("round %d: failed to persist assignments: %v", input.RoundNumber, err)
		}
	}

	return nil
}

// HasAssignments reports whether the local player is active in a round
func (s *service) HasAssignments(ctx context.Context, input *HasAssignmentsInput) (*HasAssignmentsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &HasAssignmentsOutput{
		Active: len(s.assignmentsForRound(ctx, input.RoundNumber)) > 0,
	}, nil
}

// StartRound flushes the previous round and creates a fresh session plus
// match parameters for every assignment stored for the new round.
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stopped, err := s.StopRound(ctx, &StopRoundInput{Reason: models.ReasonNewRoundStarted})
	if err != nil {
		return nil, err
	}

	s.currentRound = input.RoundNumber

	assignments := s.assignmentsForRound(ctx, input.RoundNumber)
	matches := make([]models.MatchParams, 0, len(assignments))
	for _, a := range assignments {
		params := s.buildParams(a, input.RoundNumber)

		session, err := match.New(&match.Config{
			Params:   params,
			Strategy: s.strat,
			Clock:    s.clock,
		})
		if err != nil {
			return nil, err
		}

		s.active[a.MatchID] = session
		matches = append(matches, params)
	}

	return &StartRoundOutput{
		Matches: matches,
		Reports: stopped.Reports,
	}, nil
}

// StopRound terminates every session that has not finished, producing
// exactly one report each, and clears the active set.
func (s *service) StopRound(ctx context.Context, input *StopRoundInput) (*StopRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	reports := make([]*models.MatchReport, 0)
	for matchID, session := range s.active {
		if session.Phase().Terminal() {
			continue
		}
		report := session.Report(input.Reason)
		report.ReportID = s.uuider.NewUUID()
		session.Terminate()
		s.archiveReport(ctx, report)
		reports = append(reports, report)
		log.Printf("match %s terminated in phase %s: %s", matchID, report.PhaseAtTermination, input.Reason)
	}

	s.active = make(map[string]*match.Session)

	return &StopRoundOutput{Reports: reports}, nil
}

// RouteGameMessage looks up the session owning the payload's match id and
// forwards the message. Messages for unknown or already terminal matches
// are dropped silently: trailing deliveries from a stopped round must not
// resurrect state, and duplicate terminal messages must not produce a
// second report.
func (s *service) RouteGameMessage(ctx context.Context, input *RouteGameMessageInput) (*RouteGameMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	matchID := protocol.StringField(input.Payload, "match_id")
	session, ok := s.active[matchID]
	if !ok {
		log.Printf("game message %s for unknown match %q - stale, dropping", input.Type, matchID)
		return &RouteGameMessageOutput{}, nil
	}

	if session.Phase().Terminal() {
		log.Printf("game message %s for %s match %s - dropping", input.Type, session.Phase(), matchID)
		return &RouteGameMessageOutput{}, nil
	}

	out, err := session.HandleMessage(ctx, &match.HandleMessageInput{
		Type:    input.Type,
		Payload: input.Payload,
		Sender:  input.Sender,
	})
	if err != nil {
		return nil, err
	}

	var reports []*models.MatchReport
	if out.Phase == models.MatchPhaseCompleted {
		report := session.Report(models.ReasonGameCompleted)
		report.ReportID = s.uuider.NewUUID()
		s.archiveReport(ctx, report)
		reports = append(reports, report)
	}

	return &RouteGameMessageOutput{
		Response: out.Response,
		Reports:  reports,
	}, nil
}

// assignmentsForRound returns the stored assignments for a round, falling
// back to the repository so a restarted player can recover its roster.
func (s *service) assignmentsForRound(ctx context.Context, roundNumber int) []models.Assignment {
	if assignments, ok := s.assignments[roundNumber]; ok {
		return assignments
	}

	if s.assignmentRepo == nil {
		return nil
	}

	assignments, err := s.assignmentRepo.GetAssignments(ctx, &assignmentRepo.GetAssignmentsInput{
		SeasonID:    s.seasonID,
		RoundNumber: roundNumber,
	})
	if err != nil {
		if !errors.Is(err, assignmentRepo.ErrAssignmentsNotFound) {
			log.Printf("round %d: failed to load assignments: %v", roundNumber, err)
		}
		return nil
	}

	s.assignments[roundNumber] = assignments
	return assignments
}

// buildParams constructs match parameters from an assignment. All values
// are known at round start; content fields stay empty until the match's
// round-start message supplies them.
func (s *service) buildParams(a models.Assignment, roundNumber int) models.MatchParams {
	return models.MatchParams{
		MatchID:        a.MatchID,
		GameID:         a.GameID,
		SeasonID:       s.seasonID,
		RoundNumber:    roundNumber,
		SequenceNumber: a.SequenceNumber,
		RefereeID:      a.RefereeID,
		OpponentID:     a.OpponentID,
		Role:           a.Role,
	}
}

func (s *service) archiveReport(ctx context.Context, r *models.MatchReport) {
	if s.reportRepo == nil {
		return
	}
	err := s.reportRepo.SaveReport(ctx, &reportRepo.SaveReportInput{Report: r})
	if err != nil {
		log.Printf("match %s: failed to archive report: %v", r.MatchID, err)
	}
}
