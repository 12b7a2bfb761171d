// Package match implements the per-match phase state machine. A session is
// created at round start in phase INITIALIZED, is driven forward solely by
// referee message types, and ends in COMPLETED (score feedback received) or
// TERMINATED (explicit force-stop). Phases only ever move forward.
package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/q21league/q21player/internal/common/clock"
	"github.com/q21league/q21player/internal/models"
	"github.com/q21league/q21player/internal/protocol"
	"github.com/q21league/q21player/internal/strategy"
)

// Session is the live, mutable phase-tracking object for one active match.
// It is not safe for concurrent use; the routing layer processes one
// message to completion before accepting the next.
type Session struct {
	params       models.MatchParams
	strat        strategy.Strategy
	clock        clock.Clock
	phase        models.MatchPhase
	lastSent     string
	lastReceived string
	questions    []*strategy.Question
	leaguePoints *int
	privateScore *float64
	breakdown    map[string]any
}

// New creates a session in phase INITIALIZED for the given match
func New(cfg *Config) (*Session, error) {
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

	return &Session{
		params: cfg.Params,
		strat:  cfg.Strategy,
		clock:  c,
		phase:  models.MatchPhaseInitialized,
	}, nil
}

// Phase returns the session's current phase
func (s *Session) Phase() models.MatchPhase {
	return s.phase
}

// MatchID returns the session's match id
func (s *Session) MatchID() string {
	return s.params.MatchID
}

// Params returns the match parameters, including any content fields
// received from the round-start message
func (s *Session) Params() models.MatchParams {
	return s.params
}

// HandleMessage applies one referee message to the session. The transition
// is selected by message type alone; payload content only feeds the
// strategy call and the outbound payload. An unknown or out-of-sequence
// type returns ErrUnexpectedMessage and leaves the session unchanged. A
// failing strategy call also leaves the session unchanged, so a redelivered
// message can retry.
func (s *Session) HandleMessage(ctx context.Context, input *HandleMessageInput) (*HandleMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if s.phase.Terminal() {
		return nil, fmt.Errorf("%w: %s in phase %s", ErrTerminalSession, input.Type, s.phase)
	}

	var (
		response *models.OutboundMessage
		next     models.MatchPhase
		err      error
	)

	switch input.Type {
	case protocol.TypeWarmupCall:
		response, next, err = s.handleWarmupCall(ctx, input)
	case protocol.TypeRoundStart:
		response, next, err = s.handleRoundStart(ctx, input)
	case protocol.TypeAnswersBatch:
		response, next, err = s.handleAnswersBatch(ctx, input)
	case protocol.TypeScoreFeedback:
		response, next, err = s.handleScoreFeedback(ctx, input)
	default:
		return nil, fmt.Errorf("%w: unknown type %s", ErrUnexpectedMessage, input.Type)
	}
	if err != nil {
		return nil, err
	}

	s.phase = next
	s.lastReceived = input.Type
	if response != nil {
		s.lastSent = response.Type
	}

	return &HandleMessageOutput{
		Response: response,
		Phase:    s.phase,
	}, nil
}

// handleWarmupCall answers the warmup question: INITIALIZED -> WARMUP_COMPLETE
func (s *Session) handleWarmupCall(ctx context.Context, input *HandleMessageInput) (*models.OutboundMessage, models.MatchPhase, error) {
	if s.phase != models.MatchPhaseInitialized {
		return nil, s.phase, s.sequenceError(input.Type)
	}

	question := protocol.StringField(input.Payload, "warmup_question")
	if question == "" {
		question = protocol.StringField(input.Payload, "question")
	}

	answer, err := s.strat.AnswerWarmup(ctx, &strategy.Context{
		Dynamic: map[string]any{"warmup_question": question},
		Service: map[string]string{"match_id": s.params.MatchID},
	})
	if err != nil {
		return nil, s.phase, fmt.Errorf("warmup strategy call: %w", err)
	}

	return &models.OutboundMessage{
		Type: protocol.TypeWarmupResponse,
		Payload: map[string]any{
			"match_id": s.params.MatchID,
			"answer":   answer,
		},
		Recipient: input.Sender,
	}, models.MatchPhaseWarmupComplete, nil
}

// handleRoundStart stores the book content and sends the questions batch:
// INITIALIZED or WARMUP_COMPLETE -> QUESTIONS_SENT
func (s *Session) handleRoundStart(ctx context.Context, input *HandleMessageInput) (*models.OutboundMessage, models.MatchPhase, error) {
	if s.phase != models.MatchPhaseInitialized && s.phase != models.MatchPhaseWarmupComplete {
		return nil, s.phase, s.sequenceError(input.Type)
	}

	bookName := protocol.StringField(input.Payload, "book_name")
	bookHint := protocol.StringField(input.Payload, "book_description")
	if bookHint == "" {
		bookHint = protocol.StringField(input.Payload, "description")
	}
	associationWord := protocol.StringField(input.Payload, "associative_domain")

	questions, err := s.strat.GenerateQuestions(ctx, &strategy.Context{
		Dynamic: map[string]any{
			"book_name":        bookName,
			"book_hint":        bookHint,
			"association_word": associationWord,
		},
		Service: s.serviceContext(),
	})
	if err != nil {
		return nil, s.phase, fmt.Errorf("questions strategy call: %w", err)
	}

	s.params = s.params.WithContent(bookName, bookHint, associationWord)
	s.questions = questions

	return &models.OutboundMessage{
		Type: protocol.TypeQuestionsBatch,
		Payload: map[string]any{
			"match_id":  s.params.MatchID,
			"questions": questionPayload(questions),
		},
		Recipient: input.Sender,
	}, models.MatchPhaseQuestionsSent, nil
}

// handleAnswersBatch formulates and submits the guess:
// QUESTIONS_SENT -> GUESS_SUBMITTED
func (s *Session) handleAnswersBatch(ctx context.Context, input *HandleMessageInput) (*models.OutboundMessage, models.MatchPhase, error) {
	if s.phase != models.MatchPhaseQuestionsSent {
		return nil, s.phase, s.sequenceError(input.Type)
	}

	answers := protocol.SliceField(input.Payload, "answers")

	guess, err := s.strat.FormulateGuess(ctx, &strategy.Context{
		Dynamic: map[string]any{
			"book_name":        s.params.BookName,
			"book_hint":        s.params.BookHint,
			"association_word": s.params.AssociationWord,
			"answers":          answers,
			"questions_sent":   questionPayload(s.questions),
		},
		Service: s.serviceContext(),
	})
	if err != nil {
		return nil, s.phase, fmt.Errorf("guess strategy call: %w", err)
	}

	return &models.OutboundMessage{
		Type: protocol.TypeGuessSubmission,
		Payload: map[string]any{
			"match_id": s.params.MatchID,
			"guess": map[string]any{
				"opening_sentence":       guess.OpeningSentence,
				"sentence_justification": guess.SentenceJustification,
				"associative_word":       guess.AssociativeWord,
				"word_justification":     guess.WordJustification,
				"confidence":             guess.Confidence,
			},
		},
		Recipient: input.Sender,
	}, models.MatchPhaseGuessSubmitted, nil
}

// handleScoreFeedback records the score and completes the match:
// GUESS_SUBMITTED -> COMPLETED. No response is sent.
func (s *Session) handleScoreFeedback(ctx context.Context, input *HandleMessageInput) (*models.OutboundMessage, models.MatchPhase, error) {
	if s.phase != models.MatchPhaseGuessSubmitted {
		return nil, s.phase, s.sequenceError(input.Type)
	}

	leaguePoints := protocol.IntField(input.Payload, "league_points", 0)
	privateScore := protocol.FloatField(input.Payload, "private_score")
	breakdown := protocol.MapField(input.Payload, "breakdown")

	err := s.strat.OnScore(ctx, &strategy.Context{
		Dynamic: map[string]any{
			"league_points": leaguePoints,
			"private_score": privateScore,
			"breakdown":     breakdown,
		},
		Service: map[string]string{"match_id": s.params.MatchID},
	})
	if err != nil {
		return nil, s.phase, fmt.Errorf("score strategy call: %w", err)
	}

	s.leaguePoints = &leaguePoints
	s.privateScore = &privateScore
	s.breakdown = breakdown

	return nil, models.MatchPhaseCompleted, nil
}

// Terminate force-stops the session regardless of phase. It is an explicit
// external operation, never triggered by a protocol message, and is
// idempotent: a completed or already terminated session is left as is.
func (s *Session) Terminate() {
	if s.phase.Terminal() {
		return
	}
	s.phase = models.MatchPhaseTerminated
}

// Report snapshots the session into a match report. Status is COMPLETED iff
// the phase is COMPLETED, otherwise TERMINATED; score fields are populated
// only on completion.
func (s *Session) Report(reason string) *models.MatchReport {
	status := models.MatchStatusTerminated
	if s.phase == models.MatchPhaseCompleted {
		status = models.MatchStatusCompleted
	}

	report := &models.MatchReport{
		MatchID:             s.params.MatchID,
		GameID:              s.params.GameID,
		RoundNumber:         s.params.RoundNumber,
		SeasonID:            s.params.SeasonID,
		Status:              status,
		PhaseAtTermination:  s.phase,
		LastActor:           models.ActorForPhase(s.phase),
		LastMessageSent:     s.lastSent,
		LastMessageReceived: s.lastReceived,
		ReportedAt:          s.clock.Now(),
		Reason:              reason,
	}

	if status == models.MatchStatusCompleted {
		report.LeaguePoints = s.leaguePoints
		report.PrivateScore = s.privateScore
		report.Breakdown = s.breakdown
	}

	return report
}

func (s *Session) sequenceError(msgType string) error {
	return fmt.Errorf("%w: %s in phase %s", ErrUnexpectedMessage, msgType, s.phase)
}

func (s *Session) serviceContext() map[string]string {
	return map[string]string{
		"match_id": s.params.MatchID,
		"game_id":  s.params.GameID,
	}
}

// questionPayload renders questions into the wire shape
func questionPayload(questions []*strategy.Question) []map[string]any {
	out := make([]map[string]any, 0, len(questions))
	for _, q := range questions {
		out = append(out, map[string]any{
			"question_number": q.Number,
			"question_text":   q.Text,
			"options":         q.Options,
		})
	}
	return out
}
