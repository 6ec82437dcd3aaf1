package message

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

func (s *RedisRepositoryTestSuite) TestGlobalAndSquadChannelsAreSeparate() {
	messages := []*models.Message{
		{ID: "msg-1", SenderID: "user-1", SenderName: "One", Content: "hello everyone", CreatedAt: s.testNow},
		{ID: "msg-2", SenderID: "user-2", SenderName: "Two", Content: "squad only", SquadID: "squad-1", CreatedAt: s.testNow.Add(time.Second)},
		{ID: "msg-3", SenderID: "user-1", SenderName: "One", Content: "second global", CreatedAt: s.testNow.Add(2 * time.Second)},
	}

	for _, m := range messages {
		err := s.repo.SaveMessage(context.Background(), &SaveMessageInput{
			Message: m,
		})
		s.Require().NoError(err)
	}

	global, err := s.repo.ListMessages(context.Background(), &ListMessagesInput{})
	s.Require().NoError(err)
	s.Require().Len(global.Messages, 2)
	s.Equal("msg-1", global.Messages[0].ID)
	s.Equal("msg-3", global.Messages[1].ID)

	squad, err := s.repo.ListMessages(context.Background(), &ListMessagesInput{
		SquadID: "squad-1",
	})
	s.Require().NoError(err)
	s.Require().Len(squad.Messages, 1)
	s.Equal("squad only", squad.Messages[0].Content)
}

func (s *RedisRepositoryTestSuite) TestListMessagesWithLimitKeepsNewest() {
	for i, id := range []string{"msg-1", "msg-2", "msg-3"} {
		err := s.repo.SaveMessage(context.Background(), &SaveMessageInput{
			Message: &models.Message{
				ID:        id,
				SenderID:  "user-1",
				Content:   id,
				CreatedAt: s.testNow.Add(time.Duration(i) * time.Second),
			},
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListMessages(context.Background(), &ListMessagesInput{
		Limit: 2,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Messages, 2)
	s.Equal("msg-2", out.Messages[0].ID)
	s.Equal("msg-3", out.Messages[1].ID)
}
