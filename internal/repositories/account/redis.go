package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/stbguild/guildhall/internal/models"
)

const (
	// Key prefixes for Redis
	credentialsKeyPrefix = "credentials:"
	sessionKeyPrefix     = "auth_session:"
)

var (
	// ErrCredentialsNotFound is returned when no account exists for an email
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrSessionNotFound is returned when a session token is unknown or expired
	ErrSessionNotFound = errors.New("session not found")
)

// Config holds configuration for the Redis account repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed account repository
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

// credentialsKey normalizes the email so lookups are case-insensitive
func credentialsKey(email string) string {
	return fmt.Sprintf("%s%s", credentialsKeyPrefix, strings.ToLower(email))
}

// SaveCredentials persists a member's sign-in credentials to Redis
func (r *redisRepository) SaveCredentials(ctx context.Context, input *SaveCredentialsInput) error {
	if input == nil || input.Credentials == nil {
		return errors.New("input and credentials cannot be nil")
	}

	creds := input.Credentials

	if creds.Email == "" || creds.UserID == "" {
		return errors.New("email and user ID cannot be empty")
	}

	credsJSON, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := r.client.Set(ctx, credentialsKey(creds.Email), credsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	return nil
}

// GetCredentials retrieves credentials by email from Redis
func (r *redisRepository) GetCredentials(ctx context.Context, input *GetCredentialsInput) (*Credentials, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	credsJSON, err := r.client.Get(ctx, credentialsKey(input.Email)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCredentialsNotFound
		}
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(credsJSON), &creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}

	return &creds, nil
}

// SaveSession persists an issued session to Redis with its expiry
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	session := input.Session

	if session.Token == "" {
		return errors.New("session token cannot be empty")
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, session.Token)
	if err := r.client.Set(ctx, sessionKey, sessionJSON, input.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by token from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.Token == "" {
		return nil, errors.New("input and token cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Token)
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// DeleteSession removes a session from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.Token == "" {
		return errors.New("input and token cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Token)
	if err := r.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
