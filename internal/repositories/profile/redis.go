package profile

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
	profileKeyPrefix      = "profile:"
	squadMembersKeyPrefix = "squad_members:"
	allProfilesKey        = "profiles"
)

// ErrProfileNotFound is returned when a profile is not found
var ErrProfileNotFound = errors.New("profile not found")

// Config holds configuration for the Redis profile repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveProfile persists a profile to Redis
func (r *redisRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}

	profile := input.Profile

	if profile.ID == "" {
		return errors.New("profile ID cannot be empty")
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	pipe := r.client.Pipeline()

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, profile.ID)
	pipe.Set(ctx, profileKey, profileJSON, 0)
	pipe.SAdd(ctx, allProfilesKey, profile.ID)

	// Track squad membership in the squad's member set
	if profile.SquadID != "" {
		squadKey := fmt.Sprintf("%s%s", squadMembersKeyPrefix, profile.SquadID)
		pipe.SAdd(ctx, squadKey, profile.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by ID from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.New("input and profile ID cannot be empty")
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, input.ProfileID)
	profileJSON, err := r.client.Get(ctx, profileKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// ListProfiles retrieves all profiles from Redis
func (r *redisRepository) ListProfiles(ctx context.Context, input *ListProfilesInput) (*ListProfilesOutput, error) {
	profileIDs, err := r.client.SMembers(ctx, allProfilesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile IDs: %w", err)
	}

	profiles, err := r.getProfilesByIDs(ctx, profileIDs)
	if err != nil {
		return nil, err
	}

	return &ListProfilesOutput{
		Profiles: profiles,
	}, nil
}

// GetProfileRole retrieves only the role and capability bag for a profile
func (r *redisRepository) GetProfileRole(ctx context.Context, input *GetProfileRoleInput) (*GetProfileRoleOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.New("input and profile ID cannot be empty")
	}

	profile, err := r.GetProfile(ctx, &GetProfileInput{
		ProfileID: input.ProfileID,
	})
	if err != nil {
		return nil, err
	}

	return &GetProfileRoleOutput{
		Role:        profile.Role,
		Permissions: profile.Permissions,
	}, nil
}

// GetProfilesInSquad retrieves all profiles belonging to a squad from Redis
func (r *redisRepository) GetProfilesInSquad(ctx context.Context, input *GetProfilesInSquadInput) (*GetProfilesInSquadOutput, error) {
	if input == nil || input.SquadID == "" {
		return nil, errors.New("input and squad ID cannot be empty")
	}

	squadKey := fmt.Sprintf("%s%s", squadMembersKeyPrefix, input.SquadID)
	profileIDs, err := r.client.SMembers(ctx, squadKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get member IDs for squad: %w", err)
	}

	profiles, err := r.getProfilesByIDs(ctx, profileIDs)
	if err != nil {
		return nil, err
	}

	return &GetProfilesInSquadOutput{
		Profiles: profiles,
	}, nil
}

// UpdateProfileSquad moves a profile between squads in Redis
func (r *redisRepository) UpdateProfileSquad(ctx context.Context, input *UpdateProfileSquadInput) error {
	if input == nil || input.ProfileID == "" {
		return errors.New("input and profile ID cannot be empty")
	}

	profile, err := r.GetProfile(ctx, &GetProfileInput{
		ProfileID: input.ProfileID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	// Remove from the old squad's member set
	if profile.SquadID != "" && profile.SquadID != input.SquadID {
		oldSquadKey := fmt.Sprintf("%s%s", squadMembersKeyPrefix, profile.SquadID)
		pipe.SRem(ctx, oldSquadKey, profile.ID)
	}

	profile.SquadID = input.SquadID

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, profile.ID)
	pipe.Set(ctx, profileKey, profileJSON, 0)

	if input.SquadID != "" {
		newSquadKey := fmt.Sprintf("%s%s", squadMembersKeyPrefix, input.SquadID)
		pipe.SAdd(ctx, newSquadKey, profile.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update profile squad: %w", err)
	}

	return nil
}

// getProfilesByIDs fetches a batch of profiles with a single pipeline
func (r *redisRepository) getProfilesByIDs(ctx context.Context, profileIDs []string) ([]*models.Profile, error) {
	if len(profileIDs) == 0 {
		return []*models.Profile{}, nil
	}

	pipe := r.client.Pipeline()
	profileCommands := make(map[string]*redis.StringCmd)

	for _, profileID := range profileIDs {
		profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, profileID)
		profileCommands[profileID] = pipe.Get(ctx, profileKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	profiles := make([]*models.Profile, 0, len(profileIDs))
	for profileID, cmd := range profileCommands {
		profileJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Profile was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get profile %s: %w", profileID, err)
		}

		var profile models.Profile
		if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile %s: %w", profileID, err)
		}

		profiles = append(profiles, &profile)
	}

	return profiles, nil
}
