package squad

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/stbguild/guildhall/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
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

	s.testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSquad() {
	squad := &models.Squad{
		ID:           "test-squad-id",
		SquadName:    "Alpha",
		LeaderID:     "leader-id",
		MembersCount: 4,
		CreatedAt:    s.testNow,
	}

	err := s.repo.SaveSquad(context.Background(), &SaveSquadInput{
		Squad: squad,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSquad(context.Background(), &GetSquadInput{
		SquadID: "test-squad-id",
	})
	s.Require().NoError(err)
	s.Equal("Alpha", retrieved.SquadName)
	s.Equal("leader-id", retrieved.LeaderID)
	s.Equal(4, retrieved.MembersCount)
}

func (s *RedisRepositoryTestSuite) TestListSquads() {
	squads := []*models.Squad{
		{ID: "squad-1", SquadName: "Alpha", CreatedAt: s.testNow},
		{ID: "squad-2", SquadName: "Bravo", CreatedAt: s.testNow},
	}

	for _, sq := range squads {
		err := s.repo.SaveSquad(context.Background(), &SaveSquadInput{
			Squad: sq,
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListSquads(context.Background(), &ListSquadsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Squads, 2)

	names := make(map[string]bool)
	for _, sq := range out.Squads {
		names[sq.SquadName] = true
	}
	s.True(names["Alpha"])
	s.True(names["Bravo"])
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentSquad() {
	_, err := s.repo.GetSquad(context.Background(), &GetSquadInput{
		SquadID: "non-existent-squad",
	})
	s.Require().Error(err)
	s.Equal(ErrSquadNotFound, err)
}
