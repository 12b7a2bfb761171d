package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/q21league/q21player/internal/models"
	"github.com/q21league/q21player/internal/protocol"
	"github.com/q21league/q21player/internal/services/round"
	roundMocks "github.com/q21league/q21player/internal/services/round/mocks"
	"github.com/q21league/q21player/internal/services/router"
	routerMocks "github.com/q21league/q21player/internal/services/router/mocks"
)

type BridgeTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRouter *routerMocks.MockService
	bridge     *Bridge
	ctx        context.Context
}

func (s *BridgeTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRouter = routerMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	bridge, err := New(&Config{
		Token:         "test-token",
		ChannelID:     "channel-1",
		PlayerID:      "me@x",
		LeagueAddress: "league@x",
		Router:        s.mockRouter,
		SendRate:      100,
	})
	s.Require().NoError(err)
	s.bridge = bridge
}

func (s *BridgeTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBridgeTestSuite(t *testing.T) {
	suite.Run(t, new(BridgeTestSuite))
}

func (s *BridgeTestSuite) TestDispatchDecodesAndRoutes() {
	response := &models.OutboundMessage{
		Type:      protocol.TypeKeepAliveResponse,
		Payload:   map[string]any{"machine_state": "READY"},
		Recipient: "league@x",
	}
	s.mockRouter.EXPECT().
		Route(s.ctx, &router.RouteInput{
			Type:    protocol.TypeKeepAlive,
			Payload: map[string]any{"season_id": "SEASON01"},
			Sender:  "league@x",
		}).
		Return(&router.RouteOutput{Response: response, Handled: true}, nil)

	outbound, err := s.bridge.Dispatch(s.ctx,
		`{"message_type":"BROADCAST_KEEP_ALIVE","payload":{"season_id":"SEASON01"},"sender":"league@x"}`)
	s.Require().NoError(err)

	s.Require().Len(outbound, 1)
	s.Equal(response, outbound[0])
}

func (s *BridgeTestSuite) TestDispatchCanonicalizesMatchID() {
	s.mockRouter.EXPECT().
		Route(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *router.RouteInput) (*router.RouteOutput, error) {
			s.Equal("0101001", input.Payload["match_id"])
			return &router.RouteOutput{Handled: true}, nil
		})

	_, err := s.bridge.Dispatch(s.ctx,
		`{"message_type":"Q21WARMUPCALL","payload":{"match_id":"prefix-0101001"},"sender":"ref@x"}`)
	s.Require().NoError(err)
}

func (s *BridgeTestSuite) TestDispatchDropsUndecodableContent() {
	outbound, err := s.bridge.Dispatch(s.ctx, "hello everyone, gl hf")
	s.Require().NoError(err)
	s.Empty(outbound)
}

func (s *BridgeTestSuite) TestDispatchDropsUnhandledTypes() {
	s.mockRouter.EXPECT().
		Route(s.ctx, gomock.Any()).
		Return(&router.RouteOutput{Handled: false}, nil)

	outbound, err := s.bridge.Dispatch(s.ctx,
		`{"message_type":"SPAM_OFFER","payload":{},"sender":"stranger@x"}`)
	s.Require().NoError(err)
	s.Empty(outbound)
}

func (s *BridgeTestSuite) TestDispatchEmitsReports() {
	points := 85
	report := &models.MatchReport{
		MatchID:            "0101001",
		GameID:             "0101001",
		RoundNumber:        1,
		SeasonID:           "SEASON01",
		Status:             models.MatchStatusCompleted,
		PhaseAtTermination: models.MatchPhaseCompleted,
		Reason:             models.ReasonGameCompleted,
		ReportedAt:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		LeaguePoints:       &points,
	}
	s.mockRouter.EXPECT().
		Route(s.ctx, gomock.Any()).
		Return(&router.RouteOutput{
			Response: &models.OutboundMessage{Type: protocol.TypeGuessSubmission, Recipient: "ref@x"},
			Reports:  []*models.MatchReport{report},
			Handled:  true,
		}, nil)

	outbound, err := s.bridge.Dispatch(s.ctx,
		`{"message_type":"Q21SCOREFEEDBACK","payload":{"match_id":"0101001"},"sender":"ref@x"}`)
	s.Require().NoError(err)

	s.Require().Len(outbound, 2)
	s.Equal("MATCH_RESULT_REPORT", outbound[1].Type)
	s.Equal("league@x", outbound[1].Recipient)
	s.Equal(85, outbound[1].Payload["league_points"])
	s.Equal("me@x", outbound[1].Payload["reporter"].(map[string]any)["id"])
}

func (s *BridgeTestSuite) TestDispatchChecksParticipationOnNewRound() {
	mockRound := roundMocks.NewMockService(s.mockCtrl)
	bridge, err := New(&Config{
		Token:     "test-token",
		ChannelID: "channel-1",
		PlayerID:  "me@x",
		Router:    s.mockRouter,
		Round:     mockRound,
	})
	s.Require().NoError(err)

	s.mockRouter.EXPECT().
		Route(s.ctx, gomock.Any()).
		Return(&router.RouteOutput{Handled: true}, nil)
	mockRound.EXPECT().
		HasAssignments(s.ctx, &round.HasAssignmentsInput{RoundNumber: 3}).
		Return(&round.HasAssignmentsOutput{Active: true}, nil)

	_, err = bridge.Dispatch(s.ctx,
		`{"message_type":"BROADCAST_NEW_LEAGUE_ROUND","payload":{"round_number":3},"sender":"league@x"}`)
	s.Require().NoError(err)
}

func (s *BridgeTestSuite) TestDispatchPropagatesHandlerErrors() {
	cause := errors.New("boom")
	s.mockRouter.EXPECT().
		Route(s.ctx, gomock.Any()).
		Return(nil, cause)

	_, err := s.bridge.Dispatch(s.ctx,
		`{"message_type":"BROADCAST_KEEP_ALIVE","payload":{},"sender":"league@x"}`)
	s.Require().ErrorIs(err, cause)
}

func (s *BridgeTestSuite) TestEncodeOutbound() {
	content, err := encodeOutbound(&models.OutboundMessage{
		Type:      protocol.TypeRegistrationRequest,
		Payload:   map[string]any{"player_id": "me@x"},
		Recipient: "league@x",
	})
	s.Require().NoError(err)

	decoded, err := decodeEnvelope(content)
	s.Require().NoError(err)
	s.Equal(protocol.TypeRegistrationRequest, decoded.MessageType)
	s.Equal("me@x", decoded.Payload["player_id"])
	s.Equal("league@x", decoded.Recipient)
}
