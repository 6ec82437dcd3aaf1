package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/stbguild/guildhall/internal/models"
)

const (
	// Key prefixes for Redis
	noticeKeyPrefix = "notice:"
	noticeIndexKey  = "notices_by_date"
	eventKeyPrefix  = "event:"
	eventIndexKey   = "events_by_date"
	ruleKeyPrefix   = "rule:"
	ruleIndexKey    = "rules_by_date"

	// Singleton keys
	siteSettingsKey = "site_settings"
	guildConfigKey  = "guild_config"
)

var (
	// ErrSettingsNotFound is returned when the site settings singleton has never been saved
	ErrSettingsNotFound = errors.New("site settings not found")

	// ErrConfigNotFound is returned when the guild config singleton has never been saved
	ErrConfigNotFound = errors.New("guild config not found")
)

// Config holds configuration for the Redis board repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed board repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveNotice persists a notice to Redis
func (r *redisRepository) SaveNotice(ctx context.Context, input *SaveNoticeInput) error {
	if input == nil || input.Notice == nil {
		return errors.New("input and notice cannot be nil")
	}

	notice := input.Notice

	if notice.ID == "" {
		return errors.New("notice ID cannot be empty")
	}

	noticeJSON, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", noticeKeyPrefix, notice.ID), noticeJSON, 0)
	pipe.ZAdd(ctx, noticeIndexKey, redis.Z{
		Score:  float64(notice.CreatedAt.UnixNano()),
		Member: notice.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save notice: %w", err)
	}

	return nil
}

// ListNotices retrieves notices from Redis, newest first
func (r *redisRepository) ListNotices(ctx context.Context, input *ListNoticesInput) (*ListNoticesOutput, error) {
	stop := int64(-1)
	if input != nil && input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	noticeIDs, err := r.client.ZRevRange(ctx, noticeIndexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get notice IDs: %w", err)
	}

	notices := make([]*models.Notice, 0, len(noticeIDs))
	for _, noticeID := range noticeIDs {
		noticeJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", noticeKeyPrefix, noticeID)).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get notice %s: %w", noticeID, err)
		}

		var notice models.Notice
		if err := json.Unmarshal([]byte(noticeJSON), &notice); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notice %s: %w", noticeID, err)
		}

		notices = append(notices, &notice)
	}

	return &ListNoticesOutput{
		Notices: notices,
	}, nil
}

// SaveEvent persists a guild event to Redis
func (r *redisRepository) SaveEvent(ctx context.Context, input *SaveEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	event := input.Event

	if event.ID == "" {
		return errors.New("event ID cannot be empty")
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", eventKeyPrefix, event.ID), eventJSON, 0)
	pipe.ZAdd(ctx, eventIndexKey, redis.Z{
		Score:  float64(event.CreatedAt.UnixNano()),
		Member: event.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}

// ListEvents retrieves guild events from Redis, newest first
func (r *redisRepository) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	eventIDs, err := r.client.ZRevRange(ctx, eventIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get event IDs: %w", err)
	}

	events := make([]*models.Event, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		eventJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", eventKeyPrefix, eventID)).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get event %s: %w", eventID, err)
		}

		var event models.Event
		if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event %s: %w", eventID, err)
		}

		events = append(events, &event)
	}

	return &ListEventsOutput{
		Events: events,
	}, nil
}

// DeleteEvent removes a guild event from Redis
func (r *redisRepository) DeleteEvent(ctx context.Context, input *DeleteEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", eventKeyPrefix, input.EventID))
	pipe.ZRem(ctx, eventIndexKey, input.EventID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// SaveRule persists a guild rule to Redis
func (r *redisRepository) SaveRule(ctx context.Context, input *SaveRuleInput) error {
	if input == nil || input.Rule == nil {
		return errors.New("input and rule cannot be nil")
	}

	rule := input.Rule

	if rule.ID == "" {
		return errors.New("rule ID cannot be empty")
	}

	ruleJSON, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("failed to marshal rule: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", ruleKeyPrefix, rule.ID), ruleJSON, 0)
	pipe.ZAdd(ctx, ruleIndexKey, redis.Z{
		Score:  float64(rule.CreatedAt.UnixNano()),
		Member: rule.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save rule: %w", err)
	}

	return nil
}

// ListRules retrieves guild rules from Redis in the order they were added
func (r *redisRepository) ListRules(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error) {
	ruleIDs, err := r.client.ZRange(ctx, ruleIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get rule IDs: %w", err)
	}

	rules := make([]*models.GuildRule, 0, len(ruleIDs))
	for _, ruleID := range ruleIDs {
		ruleJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", ruleKeyPrefix, ruleID)).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get rule %s: %w", ruleID, err)
		}

		var rule models.GuildRule
		if err := json.Unmarshal([]byte(ruleJSON), &rule); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rule %s: %w", ruleID, err)
		}

		rules = append(rules, &rule)
	}

	return &ListRulesOutput{
		Rules: rules,
	}, nil
}

// DeleteRule removes a guild rule from Redis
func (r *redisRepository) DeleteRule(ctx context.Context, input *DeleteRuleInput) error {
	if input == nil || input.RuleID == "" {
		return errors.New("input and rule ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", ruleKeyPrefix, input.RuleID))
	pipe.ZRem(ctx, ruleIndexKey, input.RuleID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}

	return nil
}

// GetSiteSettings retrieves the site settings singleton from Redis
func (r *redisRepository) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	settingsJSON, err := r.client.Get(ctx, siteSettingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	var settings models.SiteSettings
	if err := json.Unmarshal([]byte(settingsJSON), &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal site settings: %w", err)
	}

	return &settings, nil
}

// SaveSiteSettings persists the site settings singleton to Redis
func (r *redisRepository) SaveSiteSettings(ctx context.Context, input *SaveSiteSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	settingsJSON, err := json.Marshal(input.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal site settings: %w", err)
	}

	if err := r.client.Set(ctx, siteSettingsKey, settingsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save site settings: %w", err)
	}

	return nil
}

// GetGuildConfig retrieves the guild config singleton from Redis
func (r *redisRepository) GetGuildConfig(ctx context.Context) (*models.GuildConfig, error) {
	configJSON, err := r.client.Get(ctx, guildConfigKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}

	var config models.GuildConfig
	if err := json.Unmarshal([]byte(configJSON), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guild config: %w", err)
	}

	return &config, nil
}

// SaveGuildConfig persists the guild config singleton to Redis
func (r *redisRepository) SaveGuildConfig(ctx context.Context, input *SaveGuildConfigInput) error {
	if input == nil || input.Config == nil {
		return errors.New("input and config cannot be nil")
	}

	configJSON, err := json.Marshal(input.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal guild config: %w", err)
	}

	if err := r.client.Set(ctx, guildConfigKey, configJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save guild config: %w", err)
	}

	return nil
}
