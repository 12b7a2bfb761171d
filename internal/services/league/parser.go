package league

import (
	"github.com/q21league/q21player/internal/models"
	"github.com/q21league/q21player/internal/protocol"
)

// parseRosterRows decodes the raw assignment list from a broadcast payload.
// Rows with missing fields keep empty defaults; a malformed row never
// aborts the batch.
func parseRosterRows(raw []any) []models.RosterRow {
	rows := make([]models.RosterRow, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		rows = append(rows, models.RosterRow{
			Role:     protocol.StringField(m, "role"),
			Identity: protocol.StringField(m, "email"),
			MatchID:  protocol.CanonicalMatchID(protocol.StringField(m, "game_id")),
			GroupID:  protocol.StringField(m, "group_id"),
		})
	}
	return rows
}

// enrichAssignments groups roster rows by match id and, for each match the
// local player appears in as player1 or player2, derives the player's role,
// the opponent, and the referee. Matches without the local player are
// discarded. Results keep the order matches first appear in the roster.
func enrichAssignments(rows []models.RosterRow, playerID string) []models.Assignment {
	if playerID == "" {
		return nil
	}

	type matchRoster struct {
		groupID      string
		participants map[string]string // role -> identity
	}

	order := make([]string, 0)
	matches := make(map[string]*matchRoster)
	for _, row := range rows {
		if row.MatchID == "" {
			continue
		}
		roster, ok := matches[row.MatchID]
		if !ok {
			roster = &matchRoster{
				groupID:      row.GroupID,
				participants: make(map[string]string),
			}
			matches[row.MatchID] = roster
			order = append(order, row.MatchID)
		}
		if row.Role != "" {
			roster.participants[row.Role] = row.Identity
		}
	}

	assignments := make([]models.Assignment, 0, len(order))
	for _, matchID := range order {
		roster := matches[matchID]

		var role, opponent string
		switch playerID {
		case roster.participants[models.RosterRolePlayer1]:
			role = models.RolePlayer1
			opponent = roster.participants[models.RosterRolePlayer2]
		case roster.participants[models.RosterRolePlayer2]:
			role = models.RolePlayer2
			opponent = roster.participants[models.RosterRolePlayer1]
		default:
			continue
		}

		assignments = append(assignments, models.Assignment{
			MatchID:        matchID,
			GameID:         matchID,
			RoundNumber:    protocol.RoundNumber(matchID),
			SequenceNumber: protocol.SequenceNumber(matchID),
			RefereeID:      roster.participants[models.RosterRoleReferee],
			OpponentID:     opponent,
			Role:           role,
			GroupID:        roster.groupID,
		})
	}

	return assignments
}
