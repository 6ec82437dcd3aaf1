package finance

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
	transactionKeyPrefix = "transaction:"
	transactionIndexKey  = "transactions_by_date"
)

// Config holds configuration for the Redis finance repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed finance repository
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

// SaveTransaction persists a ledger entry to Redis
func (r *redisRepository) SaveTransaction(ctx context.Context, input *SaveTransactionInput) error {
	if input == nil || input.Transaction == nil {
		return errors.New("input and transaction cannot be nil")
	}

	tx := input.Transaction

	if tx.ID == "" {
		return errors.New("transaction ID cannot be empty")
	}

	txJSON, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	pipe := r.client.Pipeline()

	txKey := fmt.Sprintf("%s%s", transactionKeyPrefix, tx.ID)
	pipe.Set(ctx, txKey, txJSON, 0)

	// Index by recording time so listings come back newest first
	pipe.ZAdd(ctx, transactionIndexKey, redis.Z{
		Score:  float64(tx.CreatedAt.UnixNano()),
		Member: tx.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	return nil
}

// ListTransactions retrieves ledger entries from Redis, newest first
func (r *redisRepository) ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	txIDs, err := r.client.ZRevRange(ctx, transactionIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction IDs: %w", err)
	}

	transactions := make([]*models.Transaction, 0, len(txIDs))
	for _, txID := range txIDs {
		txKey := fmt.Sprintf("%s%s", transactionKeyPrefix, txID)
		txJSON, err := r.client.Get(ctx, txKey).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get transaction %s: %w", txID, err)
		}

		var tx models.Transaction
		if err := json.Unmarshal([]byte(txJSON), &tx); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transaction %s: %w", txID, err)
		}

		transactions = append(transactions, &tx)
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
	}, nil
}
