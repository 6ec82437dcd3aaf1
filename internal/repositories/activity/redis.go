package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/stbguild/guildhall/internal/models"
)

const (
	// activityLogKey holds entries as a list, newest at the head
	activityLogKey = "activity_log"

	// maxEntries caps how many entries are retained
	maxEntries = 500
)

// Config holds configuration for the Redis activity repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed activity repository
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

// AppendEntry persists an activity entry to Redis
func (r *redisRepository) AppendEntry(ctx context.Context, input *AppendEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entry := input.Entry

	if entry.ID == "" {
		return errors.New("entry ID cannot be empty")
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.LPush(ctx, activityLogKey, entryJSON)
	pipe.LTrim(ctx, activityLogKey, 0, maxEntries-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}

	return nil
}

// ListEntries retrieves recent activity entries from Redis, newest first
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	stop := int64(-1)
	if input != nil && input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	entryJSONs, err := r.client.LRange(ctx, activityLogKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity entries: %w", err)
	}

	entries := make([]*models.ActivityEntry, 0, len(entryJSONs))
	for _, entryJSON := range entryJSONs {
		var entry models.ActivityEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal activity entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}
