package message

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
	messageKeyPrefix   = "message:"
	globalChannelKey   = "channel:global"
	squadChannelPrefix = "channel:squad:"
)

// Config holds configuration for the Redis message repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed message repository
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

// channelKey resolves the index key for a channel
func channelKey(squadID string) string {
	if squadID == "" {
		return globalChannelKey
	}
	return fmt.Sprintf("%s%s", squadChannelPrefix, squadID)
}

// SaveMessage persists a chat message to Redis
func (r *redisRepository) SaveMessage(ctx context.Context, input *SaveMessageInput) error {
	if input == nil || input.Message == nil {
		return errors.New("input and message cannot be nil")
	}

	msg := input.Message

	if msg.ID == "" {
		return errors.New("message ID cannot be empty")
	}

	msgJSON, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", messageKeyPrefix, msg.ID), msgJSON, 0)
	pipe.ZAdd(ctx, channelKey(msg.SquadID), redis.Z{
		Score:  float64(msg.CreatedAt.UnixNano()),
		Member: msg.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return nil
}

// ListMessages retrieves a channel's messages from Redis in send order
func (r *redisRepository) ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := channelKey(input.SquadID)

	start := int64(0)
	if input.Limit > 0 {
		start = -int64(input.Limit)
	}

	messageIDs, err := r.client.ZRange(ctx, key, start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get message IDs: %w", err)
	}

	messages := make([]*models.Message, 0, len(messageIDs))
	for _, messageID := range messageIDs {
		msgJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", messageKeyPrefix, messageID)).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
		}

		var msg models.Message
		if err := json.Unmarshal([]byte(msgJSON), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message %s: %w", messageID, err)
		}

		messages = append(messages, &msg)
	}

	return &ListMessagesOutput{
		Messages: messages,
	}, nil
}
