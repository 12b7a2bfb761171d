package assignment

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/q21league/q21player/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetAssignments() {
	assignments := []models.Assignment{
		{
			MatchID:        "0101001",
			GameID:         "0101001",
			RoundNumber:    1,
			SequenceNumber: 1,
			RefereeID:      "ref@league",
			OpponentID:     "opp@league",
			Role:           models.RolePlayer1,
			GroupID:        "G1",
		},
		{
			MatchID:        "0101002",
			GameID:         "0101002",
			RoundNumber:    1,
			SequenceNumber: 2,
			RefereeID:      "ref2@league",
			Role:           models.RolePlayer2,
			GroupID:        "G1",
		},
	}

	err := s.repo.SaveAssignments(s.ctx, &SaveAssignmentsInput{
		SeasonID:    "SEASON01",
		RoundNumber: 1,
		Assignments: assignments,
	})
	s.Require().NoError(err)

	got, err := s.repo.GetAssignments(s.ctx, &GetAssignmentsInput{
		SeasonID:    "SEASON01",
		RoundNumber: 1,
	})
	s.Require().NoError(err)
	s.Equal(assignments, got)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwritesPreviousList() {
	first := []models.Assignment{{MatchID: "0101001", Role: models.RolePlayer1}}
	second := []models.Assignment{{MatchID: "0101009", Role: models.RolePlayer2}}

	err := s.repo.SaveAssignments(s.ctx, &SaveAssignmentsInput{
		SeasonID:    "SEASON01",
		RoundNumber: 1,
		Assignments: first,
	})
	s.Require().NoError(err)

	err = s.repo.SaveAssignments(s.ctx, &SaveAssignmentsInput{
		SeasonID:    "SEASON01",
		RoundNumber: 1,
		Assignments: second,
	})
	s.Require().NoError(err)

	got, err := s.repo.GetAssignments(s.ctx, &GetAssignmentsInput{
		SeasonID:    "SEASON01",
		RoundNumber: 1,
	})
	s.Require().NoError(err)
	s.Equal(second, got)
}

func (s *RedisRepositoryTestSuite) TestGetAssignmentsNotFound() {
	_, err := s.repo.GetAssignments(s.ctx, &GetAssignmentsInput{
		SeasonID:    "SEASON01",
		RoundNumber: 99,
	})
	s.Require().ErrorIs(err, ErrAssignmentsNotFound)
}
