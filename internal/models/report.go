package models

import "time"

// MatchStatus is the final outcome recorded in a match report
type MatchStatus string

const (
	// MatchStatusCompleted indicates the match ran through score feedback
	MatchStatusCompleted MatchStatus = "COMPLETED"

	// MatchStatusTerminated indicates the match was force-stopped
	MatchStatusTerminated MatchStatus = "TERMINATED"
)

// Termination reason codes
const (
	// ReasonGameCompleted indicates normal completion via score feedback
	ReasonGameCompleted = "GAME_COMPLETED"

	// ReasonNewRoundStarted indicates a round transition stopped the match
	ReasonNewRoundStarted = "NEW_ROUND_STARTED"

	// ReasonLeagueCompleted indicates season end stopped the match
	ReasonLeagueCompleted = "LEAGUE_COMPLETED"
)

// MatchReport is an immutable snapshot of a match taken at normal
// completion or at forced termination. At most one report is produced per
// terminal transition of a session.
type MatchReport struct {
	// ReportID uniquely identifies this report
	ReportID string

	// MatchID is the 7-character SSRRGGG match identifier
	MatchID string

	// GameID equals MatchID in the current protocol version
	GameID string

	// RoundNumber is the round the match was played in
	RoundNumber int

	// SeasonID identifies the season
	SeasonID string

	// Status is COMPLETED or TERMINATED
	Status MatchStatus

	// PhaseAtTermination is the session phase when the snapshot was taken
	PhaseAtTermination MatchPhase

	// LastActor is derived from the phase at termination
	LastActor LastActor

	// LastMessageSent is the type of the last message the player sent
	LastMessageSent string

	// LastMessageReceived is the type of the last message the player received
	LastMessageReceived string

	// ReportedAt is when the snapshot was taken
	ReportedAt time.Time

	// Reason is the termination reason code
	Reason string

	// LeaguePoints is the awarded league score, only set when completed
	LeaguePoints *int

	// PrivateScore is the referee's internal scoring metric, only set when completed
	PrivateScore *float64

	// Breakdown is the detailed score breakdown, only set when completed
	Breakdown map[string]any
}

// ProtocolMessage converts the report into a MATCH_RESULT_REPORT wire
// message addressed to the league coordinator. Score fields are included
// only when present.
func (r *MatchReport) ProtocolMessage(reporterID, reporterRole, recipient string) *OutboundMessage {
	payload := map[string]any{
		"version":               "1.0",
		"report_id":             r.ReportID,
		"match_id":              r.MatchID,
		"game_id":               r.GameID,
		"round_number":          r.RoundNumber,
		"season_id":             r.SeasonID,
		"status":                string(r.Status),
		"phase_at_termination":  string(r.PhaseAtTermination),
		"last_actor":            string(r.LastActor),
		"last_message_sent":     r.LastMessageSent,
		"last_message_received": r.LastMessageReceived,
		"reported_at":           r.ReportedAt.UTC().Format(time.RFC3339),
		"reason":                r.Reason,
		"reporter": map[string]any{
			"id":   reporterID,
			"role": reporterRole,
		},
	}
	if r.LeaguePoints != nil {
		payload["league_points"] = *r.LeaguePoints
	}
	if r.PrivateScore != nil {
		payload["private_score"] = *r.PrivateScore
	}
	if r.Breakdown != nil {
		payload["breakdown"] = r.Breakdown
	}

	return &OutboundMessage{
		Type:      "MATCH_RESULT_REPORT",
		Payload:   payload,
		Recipient: recipient,
	}
}
