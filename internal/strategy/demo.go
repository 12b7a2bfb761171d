package strategy

import (
	"context"
	"fmt"
	"log"
)

// questionCount is the number of questions a player submits per match
const questionCount = 20

// DemoStrategy is a deterministic Strategy implementation with predictable
// responses, useful for wiring tests and dry runs without a real model.
type DemoStrategy struct{}

// NewDemo creates a new demo strategy
func NewDemo() *DemoStrategy {
	return &DemoStrategy{}
}

// AnswerWarmup returns a fixed warmup answer
func (d *DemoStrategy) AnswerWarmup(ctx context.Context, sc *Context) (string, error) {
	return "4", nil
}

// GenerateQuestions returns 20 demo questions with A-D options
func (d *DemoStrategy) GenerateQuestions(ctx context.Context, sc *Context) ([]*Question, error) {
	questions := make([]*Question, 0, questionCount)
	for i := 1; i <= questionCount; i++ {
		questions = append(questions, &Question{
			Number: i,
			Text:   fmt.Sprintf("Demo question %d?", i),
			Options: map[string]string{
				"A": "Yes",
				"B": "No",
				"C": "Maybe",
				"D": "Unknown",
			},
		})
	}
	return questions, nil
}

// FormulateGuess returns a fixed demo guess
func (d *DemoStrategy) FormulateGuess(ctx context.Context, sc *Context) (*Guess, error) {
	return &Guess{
		OpeningSentence: "Demo opening sentence for testing.",
		SentenceJustification: "The opening sentence was chosen from the pattern of answers " +
			"received during the questioning phase combined with the book hint.",
		AssociativeWord: "demo",
		WordJustification: "The association word was chosen from thematic connections " +
			"in the answer patterns and the book description.",
		Confidence: 0.75,
	}, nil
}

// OnScore logs the received score
func (d *DemoStrategy) OnScore(ctx context.Context, sc *Context) error {
	matchID := sc.Service["match_id"]
	log.Printf("demo strategy: match %s scored %v pts (private %v)",
		matchID, sc.Dynamic["league_points"], sc.Dynamic["private_score"])
	return nil
}
