package board

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

func (s *RedisRepositoryTestSuite) TestNoticesNewestFirstWithLimit() {
	notices := []*models.Notice{
		{ID: "notice-1", Title: "Old", Content: "old news", Type: models.NoticeTypeGeneral, CreatedAt: s.testNow.Add(-2 * time.Hour)},
		{ID: "notice-2", Title: "Newest", Content: "fresh", Type: models.NoticeTypeUrgent, CreatedAt: s.testNow},
		{ID: "notice-3", Title: "Middle", Content: "middling", Type: models.NoticeTypeImportant, CreatedAt: s.testNow.Add(-1 * time.Hour)},
	}

	for _, n := range notices {
		err := s.repo.SaveNotice(context.Background(), &SaveNoticeInput{
			Notice: n,
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListNotices(context.Background(), &ListNoticesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Notices, 3)
	s.Equal("notice-2", out.Notices[0].ID)
	s.Equal("notice-3", out.Notices[1].ID)
	s.Equal("notice-1", out.Notices[2].ID)

	limited, err := s.repo.ListNotices(context.Background(), &ListNoticesInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(limited.Notices, 2)
	s.Equal("notice-2", limited.Notices[0].ID)
}

func (s *RedisRepositoryTestSuite) TestEventsSaveListDelete() {
	event := &models.Event{
		ID:          "event-1",
		Title:       "Scrim Night",
		Description: "Weekly practice",
		Status:      models.EventStatusUpcoming,
		CreatedAt:   s.testNow,
	}

	err := s.repo.SaveEvent(context.Background(), &SaveEventInput{
		Event: event,
	})
	s.Require().NoError(err)

	out, err := s.repo.ListEvents(context.Background(), &ListEventsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Events, 1)
	s.Equal("Scrim Night", out.Events[0].Title)

	err = s.repo.DeleteEvent(context.Background(), &DeleteEventInput{
		EventID: "event-1",
	})
	s.Require().NoError(err)

	out, err = s.repo.ListEvents(context.Background(), &ListEventsInput{})
	s.Require().NoError(err)
	s.Require().Empty(out.Events)
}

func (s *RedisRepositoryTestSuite) TestRulesKeepInsertionOrder() {
	rules := []*models.GuildRule{
		{ID: "rule-1", RuleText: "Be respectful", Category: "General", CreatedAt: s.testNow},
		{ID: "rule-2", RuleText: "No account sharing", Category: "Security", CreatedAt: s.testNow.Add(time.Minute)},
	}

	for _, rule := range rules {
		err := s.repo.SaveRule(context.Background(), &SaveRuleInput{
			Rule: rule,
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListRules(context.Background(), &ListRulesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Rules, 2)
	s.Equal("rule-1", out.Rules[0].ID)
	s.Equal("rule-2", out.Rules[1].ID)

	err = s.repo.DeleteRule(context.Background(), &DeleteRuleInput{
		RuleID: "rule-1",
	})
	s.Require().NoError(err)

	out, err = s.repo.ListRules(context.Background(), &ListRulesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Rules, 1)
	s.Equal("rule-2", out.Rules[0].ID)
}

func (s *RedisRepositoryTestSuite) TestSiteSettingsSingleton() {
	_, err := s.repo.GetSiteSettings(context.Background())
	s.Require().Error(err)
	s.Equal(ErrSettingsNotFound, err)

	err = s.repo.SaveSiteSettings(context.Background(), &SaveSiteSettingsInput{
		Settings: &models.SiteSettings{
			SiteName:   "STB FF GUILD",
			ThemeColor: "#f27d26",
		},
	})
	s.Require().NoError(err)

	settings, err := s.repo.GetSiteSettings(context.Background())
	s.Require().NoError(err)
	s.Equal("STB FF GUILD", settings.SiteName)
	s.Equal("#f27d26", settings.ThemeColor)
}

func (s *RedisRepositoryTestSuite) TestGuildConfigSingleton() {
	_, err := s.repo.GetGuildConfig(context.Background())
	s.Require().Error(err)
	s.Equal(ErrConfigNotFound, err)

	err = s.repo.SaveGuildConfig(context.Background(), &SaveGuildConfigInput{
		Config: &models.GuildConfig{
			Level:        7,
			Exp:          1200,
			NextLevelExp: 2000,
			Balance:      350.5,
		},
	})
	s.Require().NoError(err)

	config, err := s.repo.GetGuildConfig(context.Background())
	s.Require().NoError(err)
	s.Equal(7, config.Level)
	s.Equal(350.5, config.Balance)
}
