package squad

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
	squadKeyPrefix = "squad:"
	allSquadsKey   = "squads"
)

// ErrSquadNotFound is returned when a squad is not found
var ErrSquadNotFound = errors.New("squad not found")

// Config holds configuration for the Redis squad repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed squad repository
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

// SaveSquad persists a squad to Redis
func (r *redisRepository) SaveSquad(ctx context.Context, input *SaveSquadInput) error {
	if input == nil || input.Squad == nil {
		return errors.New("input and squad cannot be nil")
	}

	squad := input.Squad

	if squad.ID == "" {
		return errors.New("squad ID cannot be empty")
	}

	squadJSON, err := json.Marshal(squad)
	if err != nil {
		return fmt.Errorf("failed to marshal squad: %w", err)
	}

	pipe := r.client.Pipeline()

	squadKey := fmt.Sprintf("%s%s", squadKeyPrefix, squad.ID)
	pipe.Set(ctx, squadKey, squadJSON, 0)
	pipe.SAdd(ctx, allSquadsKey, squad.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save squad: %w", err)
	}

	return nil
}

// GetSquad retrieves a squad by ID from Redis
func (r *redisRepository) GetSquad(ctx context.Context, input *GetSquadInput) (*models.Squad, error) {
	if input == nil || input.SquadID == "" {
		return nil, errors.New("input and squad ID cannot be empty")
	}

	squadKey := fmt.Sprintf("%s%s", squadKeyPrefix, input.SquadID)
	squadJSON, err := r.client.Get(ctx, squadKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSquadNotFound
		}
		return nil, fmt.Errorf("failed to get squad: %w", err)
	}

	var squad models.Squad
	if err := json.Unmarshal([]byte(squadJSON), &squad); err != nil {
		return nil, fmt.Errorf("failed to unmarshal squad: %w", err)
	}

	return &squad, nil
}

// ListSquads retrieves all squads from Redis
func (r *redisRepository) ListSquads(ctx context.Context, input *ListSquadsInput) (*ListSquadsOutput, error) {
	squadIDs, err := r.client.SMembers(ctx, allSquadsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get squad IDs: %w", err)
	}

	if len(squadIDs) == 0 {
		return &ListSquadsOutput{
			Squads: []*models.Squad{},
		}, nil
	}

	pipe := r.client.Pipeline()
	squadCommands := make(map[string]*redis.StringCmd)

	for _, squadID := range squadIDs {
		squadKey := fmt.Sprintf("%s%s", squadKeyPrefix, squadID)
		squadCommands[squadID] = pipe.Get(ctx, squadKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get squads: %w", err)
	}

	squads := make([]*models.Squad, 0, len(squadIDs))
	for squadID, cmd := range squadCommands {
		squadJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get squad %s: %w", squadID, err)
		}

		var squad models.Squad
		if err := json.Unmarshal([]byte(squadJSON), &squad); err != nil {
			return nil, fmt.Errorf("failed to unmarshal squad %s: %w", squadID, err)
		}

		squads = append(squads, &squad)
	}

	return &ListSquadsOutput{
		Squads: squads,
	}, nil
}
