// Package strategy defines the decision-making contract a match session
// drives: answering the warmup question, generating the questions batch,
// formulating the final guess, and receiving score feedback. The core
// treats implementations as black boxes and invokes them synchronously.
package strategy

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_strategy.go github.com/q21league/q21player/internal/strategy Strategy

// Context carries the inputs for one strategy callback. Dynamic holds the
// phase-specific fields, Service the match and game identity.
type Context struct {
	Dynamic map[string]any
	Service map[string]string
}

// Question is one multiple-choice question in the questions batch
type Question struct {
	// Number is the 1-based question number
	Number int

	// Text is the question itself
	Text string

	// Options maps option letters (A-D) to option text
	Options map[string]string
}

// Guess is the final submission for a match
type Guess struct {
	// OpeningSentence is the guessed opening sentence of the book
	OpeningSentence string

	// SentenceJustification explains the opening sentence guess
	SentenceJustification string

	// AssociativeWord is the guessed word from the association domain
	AssociativeWord string

	// WordJustification explains the word guess
	WordJustification string

	// Confidence is the self-assessed confidence in [0, 1]
	Confidence float64
}

// Strategy is the external decision-making capability invoked by a match
// session at each phase.
type Strategy interface {
	// AnswerWarmup answers the referee's warmup question
	AnswerWarmup(ctx context.Context, sc *Context) (string, error)

	// GenerateQuestions produces the batch of questions about the book
	GenerateQuestions(ctx context.Context, sc *Context) ([]*Question, error)

	// FormulateGuess produces the final guess from the referee's answers
	FormulateGuess(ctx context.Context, sc *Context) (*Guess, error)

	// OnScore notifies the strategy of the final match score
	OnScore(ctx context.Context, sc *Context) error
}
