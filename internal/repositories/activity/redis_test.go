package activity

import (
	"context"
	"fmt"
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

func (s *RedisRepositoryTestSuite) TestAppendAndListNewestFirst() {
	for i := 1; i <= 3; i++ {
		err := s.repo.AppendEntry(context.Background(), &AppendEntryInput{
			Entry: &models.ActivityEntry{
				ID:        fmt.Sprintf("entry-%d", i),
				Module:    "members",
				Action:    fmt.Sprintf("action %d", i),
				ActorID:   "admin-1",
				CreatedAt: s.testNow.Add(time.Duration(i) * time.Minute),
			},
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListEntries(context.Background(), &ListEntriesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)
	s.Equal("entry-3", out.Entries[0].ID)
	s.Equal("entry-1", out.Entries[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListWithLimit() {
	for i := 1; i <= 5; i++ {
		err := s.repo.AppendEntry(context.Background(), &AppendEntryInput{
			Entry: &models.ActivityEntry{
				ID:     fmt.Sprintf("entry-%d", i),
				Module: "slots",
				Action: "slot booked",
				Details: map[string]string{
					"slot": fmt.Sprintf("%d", i),
				},
				CreatedAt: s.testNow,
			},
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListEntries(context.Background(), &ListEntriesInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("entry-5", out.Entries[0].ID)
	s.Equal("entry-4", out.Entries[1].ID)
}
