// Package league implements the league broadcast handler. It answers
// coordinator broadcasts (season start, assignments, keep-alive, critical
// control), tracks registration and standings, and drives the round
// service when a round transition or season end arrives.
package league

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/q21league/q21player/internal/models"
	"github.com/q21league/q21player/internal/protocol"
	reportRepo "github.com/q21league/q21player/internal/repositories/report"
	"github.com/q21league/q21player/internal/services/round"
)

// service implements the Service interface
type service struct {
	playerID   string
	playerName string
	round      round.Service
	reportRepo reportRepo.Repository

	seasonID   string
	registered bool
	standings  models.Standings
}

// NewService creates a new league service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PlayerID == "" {
		return nil, errors.New("player ID cannot be empty")
	}

	if cfg.Round == nil {
		return nil, errors.New("round service cannot be nil")
	}

	return &service{
		playerID:   cfg.PlayerID,
		playerName: cfg.PlayerName,
		round:      cfg.Round,
		reportRepo: cfg.ReportRepo,
	}, nil
}

// IsRegistered reports whether the player is registered for the season
func (s *service) IsRegistered() bool {
	return s.registered
}

// SeasonID returns the current season id
func (s *service) SeasonID() string {
	return s.seasonID
}

// Standings returns the last-known league standings
func (s *service) Standings() models.Standings {
	return s.standings
}

// Process handles one league message. Every league type is known a priori;
// an unknown one returns ErrUnknownLeagueMessage rather than being dropped.
func (s *service) Process(ctx context.Context, input *ProcessInput) (*ProcessOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Type {
	case protocol.TypeStartSeason:
		return s.handleStartSeason(ctx, input)
	case protocol.TypeRegistrationResponse:
		return s.handleRegistrationResponse(input)
	case protocol.TypeAssignmentTable:
		return s.handleAssignmentTable(ctx, input)
	case protocol.TypeNewRound:
		return s.handleNewRound(ctx, input)
	case protocol.TypeRoundResults:
		return s.handleRoundResults(ctx, input)
	case protocol.TypeKeepAlive:
		return s.handleKeepAlive(input)
	case protocol.TypeCriticalPause:
		return s.ackCritical(protocol.TypeCriticalPauseResponse, input), nil
	case protocol.TypeCriticalContinue:
		return s.ackCritical(protocol.TypeCriticalContinueResponse, input), nil
	case protocol.TypeCriticalReset:
		return s.handleCriticalReset(input)
	case protocol.TypeLeagueCompleted:
		return s.handleLeagueCompleted(ctx, input)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownLeagueMessage, input.Type)
	}
}

// handleStartSeason records the season and emits a registration request
func (s *service) handleStartSeason(ctx context.Context, input *ProcessInput) (*ProcessOutput, error) {
	s.seasonID = protocol.StringField(input.Payload, "season_id")
	s.round.SetSeason(s.seasonID)
	s.restoreStandings(ctx)

	return &ProcessOutput{
		Response: &models.OutboundMessage{
			Type: protocol.TypeRegistrationRequest,
			Payload: map[string]any{
				"season_id":     s.seasonID,
				"player_id":     s.playerID,
				"player_name":   s.playerName,
				"machine_state": "READY",
			},
			Recipient: input.Sender,
		},
	}, nil
}

// handleRegistrationResponse sets the registration flag on an accepted status
func (s *service) handleRegistrationResponse(input *ProcessInput) (*ProcessOutput, error) {
	status := protocol.StringField(input.Payload, "status")
	if acceptedStatuses[status] {
		s.registered = true
	}
	return &ProcessOutput{}, nil
}

// handleAssignmentTable parses the roster, stores the player's assignments
// grouped by round, and acknowledges the count of rows naming the player.
func (s *service) handleAssignmentTable(ctx context.Context, input *ProcessInput) (*ProcessOutput, error) {
	rows := parseRosterRows(protocol.SliceField(input.Payload, "assignments"))

	myRows := 0
	for _, row := range rows {
		if row.Identity == s.playerID &&
			(row.Role == models.RosterRolePlayer1 || row.Role == models.RosterRolePlayer2) {
			myRows++
		}
	}

	byRound := make(map[int][]models.Assignment)
	for _, a := range enrichAssignments(rows, s.playerID) {
		byRound[a.RoundNumber] = append(byRound[a.RoundNumber], a)
	}
	for roundNumber, assignments := range byRound {
		err := s.round.SetAssignments(ctx, &round.SetAssignmentsInput{
			RoundNumber: roundNumber,
			Assignments: assignments,
		})
		if err != nil {
			return nil, fmt.Errorf("storing round %d assignments: %w", roundNumber, err)
		}
	}

	return &ProcessOutput{
		Response: &models.OutboundMessage{
			Type: protocol.TypeAssignmentResponse,
			Payload: map[string]any{
				"season_id":            s.seasonID,
				"player_id":            s.playerID,
				"assignments_received": myRows,
				"status":               "ACKNOWLEDGED",
			},
			Recipient: input.Sender,
		},
	}, nil
}

// handleNewRound is a transition signal: assignments were stored earlier
// from the assignment table, so this only starts the round.
func (s *service) handleNewRound(ctx context.Context, input *ProcessInput) (*ProcessOutput, error) {
	roundNumber := protocol.IntField(input.Payload, "round_number", 1)

	started, err := s.round.StartRound(ctx, &round.StartRoundInput{RoundNumber: roundNumber})
	if err != nil {
		return nil, fmt.Errorf("starting round %d: %w", roundNumber, err)
	}

	return &ProcessOutput{
		Matches: started.Matches,
		Reports: started.Reports,
	}, nil
}

// handleRoundResults updates standings from the broadcast standings list
func (s *service) handleRoundResults(ctx context.Context, input *ProcessInput) (*ProcessOutput, error) {
	for _, entry := range protocol.SliceField(input.Payload, "standings") {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if protocol.StringField(m, "participant_id") != s.playerID {
			continue
		}
		s.standings = models.Standings{
			Score:         protocol.IntField(m, "total_points", 0),
			MatchesPlayed: protocol.IntField(m, "matches_played", 0),
			Rank:          protocol.IntField(m, "rank", 0),
		}
		s.persistStandings(ctx)
		break
	}
	return &ProcessOutput{}, nil
}

// handleKeepAlive acknowledges the keep-alive, echoing readiness
func (s *service) handleKeepAlive(input *ProcessInput) (*ProcessOutput, error) {
	return &ProcessOutput{
		Response: &models.OutboundMessage{
			Type: protocol.TypeKeepAliveResponse,
			Payload: map[string]any{
				"season_id":     s.seasonID,
				"player_id":     s.playerID,
				"machine_state": "READY",
				"registered":    s.registered,
			},
			Recipient: input.Sender,
		},
	}, nil
}

// handleCriticalReset acknowledges the reset and zeroes standings
func (s *service) handleCriticalReset(input *ProcessInput) (*ProcessOutput, error) {
	s.standings = models.Standings{}
	return s.ackCritical(protocol.TypeCriticalResetResponse, input), nil
}

// ackCritical builds the acknowledgment for a critical control broadcast
func (s *service) ackCritical(responseType string, input *ProcessInput) *ProcessOutput {
	return &ProcessOutput{
		Response: &models.OutboundMessage{
			Type: responseType,
			Payload: map[string]any{
				"season_id": s.seasonID,
				"player_id": s.playerID,
				"status":    "ACKNOWLEDGED",
			},
			Recipient: input.Sender,
		},
	}
}

// handleLeagueCompleted finalizes the season: the local summary comes from
// the final standings, and the active round is force-stopped so unfinished
// matches get termination reports.
func (s *service) handleLeagueCompleted(ctx context.Context, input *ProcessInput) (*ProcessOutput, error) {
	summary := &models.SeasonSummary{
		SeasonID:       s.seasonID,
		SeasonComplete: true,
	}
	for _, entry := range protocol.SliceField(input.Payload, "final_standings") {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if protocol.StringField(m, "participant_id") != s.playerID {
			continue
		}
		summary.FinalRank = protocol.IntField(m, "rank", 0)
		summary.TotalPoints = protocol.IntField(m, "total_points", 0)
		break
	}

	stopped, err := s.round.StopRound(ctx, &round.StopRoundInput{Reason: models.ReasonLeagueCompleted})
	if err != nil {
		return nil, fmt.Errorf("stopping round on season end: %w", err)
	}

	return &ProcessOutput{
		Reports: stopped.Reports,
		Summary: summary,
	}, nil
}

// restoreStandings loads the persisted standings snapshot, if any, so a
// restarted player resumes with its last-known position.
func (s *service) restoreStandings(ctx context.Context) {
	if s.reportRepo == nil || s.seasonID == "" {
		return
	}
	standings, err := s.reportRepo.GetStandings(ctx, &reportRepo.GetStandingsInput{SeasonID: s.seasonID})
	if err != nil {
		if !errors.Is(err, reportRepo.ErrStandingsNotFound) {
			log.Printf("season %s: failed to restore standings: %v", s.seasonID, err)
		}
		return
	}
	s.standings = *standings
}

func (s *service) persistStandings(ctx context.Context) {
	if s.reportRepo == nil || s.seasonID == "" {
		return
	}
	err := s.reportRepo.SaveStandings(ctx, &reportRepo.SaveStandingsInput{
		SeasonID:  s.seasonID,
		Standings: &s.standings,
	})
	if err != nil {
		log.Printf("season %s: failed to persist standings: %v", s.seasonID, err)
	}
}
