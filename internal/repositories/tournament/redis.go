package tournament

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
	slotKeyPrefix  = "slot:"
	slotIndexKey   = "slots_by_number"
	matchKeyPrefix = "match:"
	matchIndexKey  = "matches_by_date"
)

// ErrSlotNotFound is returned when a slot is not found
var ErrSlotNotFound = errors.New("slot not found")

// Config holds configuration for the Redis tournament repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed tournament repository
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

// SaveSlot persists a slot booking to Redis
func (r *redisRepository) SaveSlot(ctx context.Context, input *SaveSlotInput) error {
	if input == nil || input.Slot == nil {
		return errors.New("input and slot cannot be nil")
	}

	slot := input.Slot

	if slot.ID == "" {
		return errors.New("slot ID cannot be empty")
	}

	slotJSON, err := json.Marshal(slot)
	if err != nil {
		return fmt.Errorf("failed to marshal slot: %w", err)
	}

	pipe := r.client.Pipeline()

	slotKey := fmt.Sprintf("%s%s", slotKeyPrefix, slot.ID)
	pipe.Set(ctx, slotKey, slotJSON, 0)

	// Index by slot number so listings come back in booking order
	pipe.ZAdd(ctx, slotIndexKey, redis.Z{
		Score:  float64(slot.SlotNumber),
		Member: slot.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}

	return nil
}

// GetSlot retrieves a slot by ID from Redis
func (r *redisRepository) GetSlot(ctx context.Context, input *GetSlotInput) (*models.TournamentSlot, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.New("input and slot ID cannot be empty")
	}

	slotKey := fmt.Sprintf("%s%s", slotKeyPrefix, input.SlotID)
	slotJSON, err := r.client.Get(ctx, slotKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	var slot models.TournamentSlot
	if err := json.Unmarshal([]byte(slotJSON), &slot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal slot: %w", err)
	}

	return &slot, nil
}

// ListSlots retrieves all slots ordered by slot number from Redis
func (r *redisRepository) ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error) {
	slotIDs, err := r.client.ZRange(ctx, slotIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get slot IDs: %w", err)
	}

	slots := make([]*models.TournamentSlot, 0, len(slotIDs))
	for _, slotID := range slotIDs {
		slot, err := r.GetSlot(ctx, &GetSlotInput{SlotID: slotID})
		if err != nil {
			if errors.Is(err, ErrSlotNotFound) {
				continue
			}
			return nil, err
		}
		slots = append(slots, slot)
	}

	return &ListSlotsOutput{
		Slots: slots,
	}, nil
}

// CountSlots returns the number of booked slots
func (r *redisRepository) CountSlots(ctx context.Context, input *CountSlotsInput) (*CountSlotsOutput, error) {
	count, err := r.client.ZCard(ctx, slotIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count slots: %w", err)
	}

	return &CountSlotsOutput{
		Count: int(count),
	}, nil
}

// SaveMatchResult persists a match result to Redis
func (r *redisRepository) SaveMatchResult(ctx context.Context, input *SaveMatchResultInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	match := input.Match

	if match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.Pipeline()

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, match.ID)
	pipe.Set(ctx, matchKey, matchJSON, 0)

	// Index by match date so listings come back newest first
	pipe.ZAdd(ctx, matchIndexKey, redis.Z{
		Score:  float64(match.MatchDate.Unix()),
		Member: match.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}

	return nil
}

// ListMatchResults retrieves match results from Redis, newest first
func (r *redisRepository) ListMatchResults(ctx context.Context, input *ListMatchResultsInput) (*ListMatchResultsOutput, error) {
	matchIDs, err := r.client.ZRevRange(ctx, matchIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get match IDs: %w", err)
	}

	matches := make([]*models.MatchResult, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, matchID)
		matchJSON, err := r.client.Get(ctx, matchKey).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", matchID, err)
		}

		var match models.MatchResult
		if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchID, err)
		}

		matches = append(matches, &match)
	}

	return &ListMatchResultsOutput{
		Matches: matches,
	}, nil
}
