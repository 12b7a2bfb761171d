package models

// MatchPhase represents how far a match session has progressed
type MatchPhase string

const (
	// MatchPhaseInitialized indicates a session was created but no game message has arrived
	MatchPhaseInitialized MatchPhase = "INITIALIZED"

	// MatchPhaseWarmupComplete indicates the warmup answer has been sent
	MatchPhaseWarmupComplete MatchPhase = "WARMUP_COMPLETE"

	// MatchPhaseQuestionsSent indicates the questions batch has been sent
	MatchPhaseQuestionsSent MatchPhase = "QUESTIONS_SENT"

	// MatchPhaseGuessSubmitted indicates the final guess has been sent
	MatchPhaseGuessSubmitted MatchPhase = "GUESS_SUBMITTED"

	// MatchPhaseCompleted indicates score feedback was received and the match is over
	MatchPhaseCompleted MatchPhase = "COMPLETED"

	// MatchPhaseTerminated indicates the session was force-stopped before completing
	MatchPhaseTerminated MatchPhase = "TERMINATED"
)

// Terminal reports whether the phase accepts no further game messages.
// COMPLETED and TERMINATED are the only terminal phases.
func (p MatchPhase) Terminal() bool {
	return p == MatchPhaseCompleted || p == MatchPhaseTerminated
}

// LastActor identifies which side of a match acted last
type LastActor string

const (
	// LastActorPlayer indicates the local player sent the last message
	LastActorPlayer LastActor = "PLAYER"

	// LastActorReferee indicates the referee sent the last message
	LastActorReferee LastActor = "REFEREE"

	// LastActorNone indicates no exchange has taken place
	LastActorNone LastActor = "NONE"
)

// ActorForPhase derives the last actor from a phase. In every reachable
// non-terminal, non-initial phase the last action was an outbound message
// from the local side.
func ActorForPhase(p MatchPhase) LastActor {
	switch p {
	case MatchPhaseInitialized, MatchPhaseCompleted, MatchPhaseTerminated:
		return LastActorNone
	default:
		return LastActorPlayer
	}
}
