// Package protocol defines the league wire vocabulary: the fixed message
// type strings, message classification, and the SSRRGGG match id encoding.
// The exact strings are part of wire compatibility.
package protocol

import "strings"

// League message types consumed from the coordinator
const (
	TypeStartSeason          = "BROADCAST_START_SEASON"
	TypeRegistrationResponse = "SEASON_REGISTRATION_RESPONSE"
	TypeAssignmentTable      = "BROADCAST_ASSIGNMENT_TABLE"
	TypeNewRound             = "BROADCAST_NEW_LEAGUE_ROUND"
	TypeRoundResults         = "BROADCAST_ROUND_RESULTS"
	TypeKeepAlive            = "BROADCAST_KEEP_ALIVE"
	TypeCriticalPause        = "BROADCAST_CRITICAL_PAUSE"
	TypeCriticalContinue     = "BROADCAST_CRITICAL_CONTINUE"
	TypeCriticalReset        = "BROADCAST_CRITICAL_RESET"
	TypeLeagueCompleted      = "LEAGUE_COMPLETED"
)

// League message types produced by the player
const (
	TypeRegistrationRequest      = "SEASON_REGISTRATION_REQUEST"
	TypeAssignmentResponse       = "GROUP_ASSIGNMENT_RESPONSE"
	TypeKeepAliveResponse        = "KEEP_ALIVE_RESPONSE"
	TypeCriticalPauseResponse    = "CRITICAL_PAUSE_RESPONSE"
	TypeCriticalContinueResponse = "CRITICAL_CONTINUE_RESPONSE"
	TypeCriticalResetResponse    = "CRITICAL_RESET_RESPONSE"
	TypeMatchResultReport        = "MATCH_RESULT_REPORT"
)

// Game message types (Q21G.v1 - no underscore after Q21)
const (
	TypeWarmupCall      = "Q21WARMUPCALL"
	TypeRoundStart      = "Q21ROUNDSTART"
	TypeAnswersBatch    = "Q21ANSWERSBATCH"
	TypeScoreFeedback   = "Q21SCOREFEEDBACK"
	TypeWarmupResponse  = "Q21WARMUPRESPONSE"
	TypeQuestionsBatch  = "Q21QUESTIONSBATCH"
	TypeGuessSubmission = "Q21GUESSSUBMISSION"
)

// Kind classifies a wire message type
type Kind int

const (
	// KindUnknown indicates a type matching neither prefix set
	KindUnknown Kind = iota

	// KindLeague indicates a coordinator broadcast or registration message
	KindLeague

	// KindGame indicates a per-match referee message
	KindGame
)

// leaguePrefixes and gamePrefix are disjoint; a type matches at most one kind.
var leaguePrefixes = [...]string{"BROADCAST_", "SEASON_REGISTRATION", "LEAGUE_"}

const gamePrefix = "Q21"

// Classify determines which handler family owns a message type.
func Classify(msgType string) Kind {
	for _, prefix := range leaguePrefixes {
		if strings.HasPrefix(msgType, prefix) {
			return KindLeague
		}
	}
	if strings.HasPrefix(msgType, gamePrefix) {
		return KindGame
	}
	return KindUnknown
}
