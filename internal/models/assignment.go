package models

// Roster roles as they appear in BROADCAST_ASSIGNMENT_TABLE rows
const (
	RosterRolePlayer1 = "player1"
	RosterRolePlayer2 = "player2"
	RosterRoleReferee = "referee"
)

// Match roles for the local player
const (
	RolePlayer1 = "PLAYER1"
	RolePlayer2 = "PLAYER2"
)

// RosterRow is one raw row of an assignment table broadcast
type RosterRow struct {
	// Role is the participant's role in the match (player1, player2, referee)
	Role string

	// Identity is the participant's address
	Identity string

	// MatchID is the 7-character SSRRGGG match identifier
	MatchID string

	// GroupID is the group the match belongs to
	GroupID string
}

// Assignment is one match the local player participates in, enriched from
// the raw roster rows sharing its match id
type Assignment struct {
	// MatchID is the 7-character SSRRGGG match identifier
	MatchID string

	// GameID equals MatchID in the current protocol version
	GameID string

	// RoundNumber is derived from the match id
	RoundNumber int

	// SequenceNumber is derived from the match id
	SequenceNumber int

	// RefereeID is the referee's address
	RefereeID string

	// OpponentID is the opposing player's address, empty when unknown
	OpponentID string

	// Role is the local player's role (PLAYER1 or PLAYER2)
	Role string

	// GroupID is the group the match belongs to
	GroupID string
}
