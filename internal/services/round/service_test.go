package round

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/q21league/q21player/internal/common/clock/mocks"
	uuidMocks "github.com/q21league/q21player/internal/common/uuid/mocks"
	"github.com/q21league/q21player/internal/models"
	"github.com/q21league/q21player/internal/protocol"
	assignmentRepo "github.com/q21league/q21player/internal/repositories/assignment"
	assignmentMocks "github.com/q21league/q21player/internal/repositories/assignment/mocks"
	reportMocks "github.com/q21league/q21player/internal/repositories/report/mocks"
	"github.com/q21league/q21player/internal/strategy"
	strategyMocks "github.com/q21league/q21player/internal/strategy/mocks"
)

type RoundServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockStrategy *strategyMocks.MockStrategy
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	svc          Service
	ctx          context.Context

	testTime        time.Time
	roundOneMatches []models.Assignment
}

func (s *RoundServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStrategy = strategyMocks.NewMockStrategy(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("report-uuid").AnyTimes()

	s.roundOneMatches = []models.Assignment{
		{
			MatchID:        "0101001",
			GameID:         "0101001",
			RoundNumber:    1,
			SequenceNumber: 1,
			RefereeID:      "ref@x",
			OpponentID:     "opp@x",
			Role:           models.RolePlayer1,
		},
		{
			MatchID:        "0101002",
			GameID:         "0101002",
			RoundNumber:    1,
			SequenceNumber: 2,
			RefereeID:      "ref@x",
			OpponentID:     "opp2@x",
			Role:           models.RolePlayer2,
		},
	}

	svc, err := NewService(&Config{
		PlayerID: "me@x",
		Strategy: s.mockStrategy,
		Clock:    s.mockClock,
		UUID:     s.mockUUID,
	})
	s.Require().NoError(err)
	s.svc = svc
	s.svc.SetSeason("SEASON01")
}

func (s *RoundServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoundServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoundServiceTestSuite))
}

func (s *RoundServiceTestSuite) startRoundOne() *StartRoundOutput {
	err := s.svc.SetAssignments(s.ctx, &SetAssignmentsInput{
		RoundNumber: 1,
		Assignments: s.roundOneMatches,
	})
	s.Require().NoError(err)

	out, err := s.svc.StartRound(s.ctx, &StartRoundInput{RoundNumber: 1})
	s.Require().NoError(err)
	return out
}

// completeMatch drives a match through the full message sequence so its
// session ends up in COMPLETED.
func (s *RoundServiceTestSuite) completeMatch(matchID string) {
	s.mockStrategy.EXPECT().AnswerWarmup(s.ctx, gomock.Any()).Return("4", nil)
	s.mockStrategy.EXPECT().GenerateQuestions(s.ctx, gomock.Any()).
		Return([]*strategy.Question{{Number: 1, Text: "Q?"}}, nil)
	s.mockStrategy.EXPECT().FormulateGuess(s.ctx, gomock.Any()).
		Return(&strategy.Guess{OpeningSentence: "x", Confidence: 0.5}, nil)
	s.mockStrategy.EXPECT().OnScore(s.ctx, gomock.Any()).Return(nil)

	steps := []struct {
		msgType string
		payload map[string]any
	}{
		{protocol.TypeWarmupCall, map[string]any{"match_id": matchID, "warmup_question": "2+2?"}},
		{protocol.TypeRoundStart, map[string]any{"match_id": matchID, "book_name": "B", "book_description": "H", "associative_domain": "color"}},
		{protocol.TypeAnswersBatch, map[string]any{"match_id": matchID, "answers": []any{}}},
		{protocol.TypeScoreFeedback, map[string]any{"match_id": matchID, "league_points": float64(85), "private_score": 0.9, "breakdown": map[string]any{"accuracy": 0.95}}},
	}
	for _, step := range steps {
		_, err := s.svc.RouteGameMessage(s.ctx, &RouteGameMessageInput{
			Type:    step.msgType,
			Payload: step.payload,
			Sender:  "ref@x",
		})
		s.Require().NoError(err)
	}
}

func (s *RoundServiceTestSuite) TestStartRoundCreatesMatches() {
	out := s.startRoundOne()

	s.Len(out.Matches, 2)
	s.Empty(out.Reports)
	s.Equal(1, s.svc.CurrentRound())

	byID := map[string]models.MatchParams{}
	for _, m := range out.Matches {
		byID[m.MatchID] = m
	}
	params := byID["0101001"]
	s.Equal("SEASON01", params.SeasonID)
	s.Equal(1, params.RoundNumber)
	s.Equal("ref@x", params.RefereeID)
	s.Equal("opp@x", params.OpponentID)
	s.Equal(models.RolePlayer1, params.Role)
	s.Empty(params.BookName)
}

func (s *RoundServiceTestSuite) TestRoundTransitionTerminatesUnfinished() {
	s.startRoundOne()

	// No assignments stored for round 2
	out, err := s.svc.StartRound(s.ctx, &StartRoundInput{RoundNumber: 2})
	s.Require().NoError(err)

	s.Empty(out.Matches)
	s.Require().Len(out.Reports, 2)
	for _, report := range out.Reports {
		s.Equal(models.MatchStatusTerminated, report.Status)
		s.Equal(models.MatchPhaseInitialized, report.PhaseAtTermination)
		s.Equal(models.LastActorNone, report.LastActor)
		s.Equal(models.ReasonNewRoundStarted, report.Reason)
		s.Equal(s.testTime, report.ReportedAt)
	}
	s.Equal(2, s.svc.CurrentRound())
}

func (s *RoundServiceTestSuite) TestRoundTransitionSkipsCompletedMatches() {
	s.startRoundOne()
	s.completeMatch("0101001")

	// One completed, one untouched: exactly one termination report
	out, err := s.svc.StartRound(s.ctx, &StartRoundInput{RoundNumber: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Reports, 1)
	s.Equal("0101002", out.Reports[0].MatchID)
}

func (s *RoundServiceTestSuite) TestCompletionProducesSingleReport() {
	s.startRoundOne()

	s.mockStrategy.EXPECT().AnswerWarmup(s.ctx, gomock.Any()).Return("4", nil)
	s.mockStrategy.EXPECT().GenerateQuestions(s.ctx, gomock.Any()).
		Return([]*strategy.Question{{Number: 1, Text: "Q?"}}, nil)
	s.mockStrategy.EXPECT().FormulateGuess(s.ctx, gomock.Any()).
		Return(&strategy.Guess{OpeningSentence: "x"}, nil)
	s.mockStrategy.EXPECT().OnScore(s.ctx, gomock.Any()).Return(nil)

	score := map[string]any{
		"match_id":      "0101001",
		"league_points": float64(85),
		"private_score": 0.9,
		"breakdown":     map[string]any{"accuracy": 0.95},
	}

	for _, step := range []struct {
		msgType string
		payload map[string]any
	}{
		{protocol.TypeWarmupCall, map[string]any{"match_id": "0101001", "warmup_question": "2+2?"}},
		{protocol.TypeRoundStart, map[string]any{"match_id": "0101001", "book_name": "B"}},
		{protocol.TypeAnswersBatch, map[string]any{"match_id": "0101001", "answers": []any{}}},
	} {
		_, err := s.svc.RouteGameMessage(s.ctx, &RouteGameMessageInput{
			Type: step.msgType, Payload: step.payload, Sender: "ref@x",
		})
		s.Require().NoError(err)
	}

	out, err := s.svc.RouteGameMessage(s.ctx, &RouteGameMessageInput{
		Type: protocol.TypeScoreFeedback, Payload: score, Sender: "ref@x",
	})
	s.Require().NoError(err)
	s.Nil(out.Response)
	s.Require().Len(out.Reports, 1)

	report := out.Reports[0]
	s.Equal("report-uuid", report.ReportID)
	s.Equal(models.MatchStatusCompleted, report.Status)
	s.Equal(models.ReasonGameCompleted, report.Reason)
	s.Require().NotNil(report.LeaguePoints)
	s.Equal(85, *report.LeaguePoints)
	s.Equal(0.9, *report.PrivateScore)
	s.Equal(0.95, report.Breakdown["accuracy"])

	// A duplicate terminal delivery is dropped without a second report
	dup, err := s.svc.RouteGameMessage(s.ctx, &RouteGameMessageInput{
		Type: protocol.TypeScoreFeedback, Payload: score, Sender: "ref@x",
	})
	s.Require().NoError(err)
	s.Nil(dup.Response)
	s.Empty(dup.Reports)
}

func (s *RoundServiceTestSuite) TestUnknownMatchIsInert() {
	s.startRoundOne()

	out, err := s.svc.RouteGameMessage(s.ctx, &RouteGameMessageInput{
		Type:    protocol.TypeWarmupCall,
		Payload: map[string]any{"match_id": "0109999", "warmup_question": "2+2?"},
		Sender:  "ref@x",
	})
	s.Require().NoError(err)
	s.Nil(out.Response)
	s.Empty(out.Reports)

	// The active set is unchanged: both original matches still route
	s.mockStrategy.EXPECT().AnswerWarmup(s.ctx, gomock.Any()).Return("4", nil)
	routed, err := s.svc.RouteGameMessage(s.ctx, &RouteGameMessageInput{
		Type:    protocol.TypeWarmupCall,
		Payload: map[string]any{"match_id": "0101001", "warmup_question": "2+2?"},
		Sender:  "ref@x",
	})
	s.Require().NoError(err)
	s.NotNil(routed.Response)
}

func (s *RoundServiceTestSuite) TestProtocolViolationAbortsSingleMessage() {
	s.startRoundOne()

	// Answers batch before questions were ever sent
	_, err := s.svc.RouteGameMessage(s.ctx, &RouteGameMessageInput{
		Type:    protocol.TypeAnswersBatch,
		Payload: map[string]any{"match_id": "0101001", "answers": []any{}},
		Sender:  "ref@x",
	})
	s.Require().Error(err)

	// A later well-formed message is still processed normally
	s.mockStrategy.EXPECT().AnswerWarmup(s.ctx, gomock.Any()).Return("4", nil)
	out, err := s.svc.RouteGameMessage(s.ctx, &RouteGameMessageInput{
		Type:    protocol.TypeWarmupCall,
		Payload: map[string]any{"match_id": "0101001", "warmup_question": "2+2?"},
		Sender:  "ref@x",
	})
	s.Require().NoError(err)
	s.NotNil(out.Response)
}

func (s *RoundServiceTestSuite) TestStopRoundOnEmptyActiveSet() {
	out, err := s.svc.StopRound(s.ctx, &StopRoundInput{Reason: models.ReasonLeagueCompleted})
	s.Require().NoError(err)
	s.Empty(out.Reports)
}

func (s *RoundServiceTestSuite) TestHasAssignments() {
	err := s.svc.SetAssignments(s.ctx, &SetAssignmentsInput{
		RoundNumber: 1,
		Assignments: s.roundOneMatches,
	})
	s.Require().NoError(err)

	has, err := s.svc.HasAssignments(s.ctx, &HasAssignmentsInput{RoundNumber: 1})
	s.Require().NoError(err)
	s.True(has.Active)

	has, err = s.svc.HasAssignments(s.ctx, &HasAssignmentsInput{RoundNumber: 2})
	s.Require().NoError(err)
	s.False(has.Active)
}

func (s *RoundServiceTestSuite) TestAssignmentsRecoveredFromRepository() {
	mockRepo := assignmentMocks.NewMockRepository(s.mockCtrl)
	svc, err := NewService(&Config{
		PlayerID:       "me@x",
		Strategy:       s.mockStrategy,
		Clock:          s.mockClock,
		AssignmentRepo: mockRepo,
	})
	s.Require().NoError(err)
	svc.SetSeason("SEASON01")

	mockRepo.EXPECT().
		GetAssignments(s.ctx, &assignmentRepo.GetAssignmentsInput{
			SeasonID:    "SEASON01",
			RoundNumber: 1,
		}).
		Return(s.roundOneMatches, nil)

	// Nothing was set in memory; the repository supplies the roster
	out, err := svc.StartRound(s.ctx, &StartRoundInput{RoundNumber: 1})
	s.Require().NoError(err)
	s.Len(out.Matches, 2)
}

func (s *RoundServiceTestSuite) TestReportsAreArchived() {
	mockRepo := reportMocks.NewMockRepository(s.mockCtrl)
	svc, err := NewService(&Config{
		PlayerID:   "me@x",
		Strategy:   s.mockStrategy,
		Clock:      s.mockClock,
		ReportRepo: mockRepo,
	})
	s.Require().NoError(err)
	svc.SetSeason("SEASON01")

	s.Require().NoError(svc.SetAssignments(s.ctx, &SetAssignmentsInput{
		RoundNumber: 1,
		Assignments: s.roundOneMatches[:1],
	}))
	_, err = svc.StartRound(s.ctx, &StartRoundInput{RoundNumber: 1})
	s.Require().NoError(err)

	mockRepo.EXPECT().SaveReport(s.ctx, gomock.Any()).Return(nil)

	out, err := svc.StopRound(s.ctx, &StopRoundInput{Reason: models.ReasonLeagueCompleted})
	s.Require().NoError(err)
	s.Len(out.Reports, 1)
}
