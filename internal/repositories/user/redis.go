package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/explorer/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix = "user:"
	usersKey      = "users"
)

// RedisConfig holds configuration for the Redis user repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository. An empty store gets the default account.
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	ctx := context.Background()

	// Test connection
	if err := cfg.RedisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo := &redisRepository{
		client: cfg.RedisClient,
	}

	count, err := repo.client.SCard(ctx, usersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	if count == 0 {
		log.Printf("No users in Redis, creating the default account")
		err := repo.CreateUser(ctx, &CreateUserInput{
			User: defaultRecord().toUser(DefaultUsername),
		})
		if err != nil && !errors.Is(err, ErrUserAlreadyExists) {
			return nil, err
		}
	}

	return repo, nil
}

func userKey(username string) string {
	return fmt.Sprintf("%s%s", userKeyPrefix, username)
}

// GetUser retrieves a user by username from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.Username == "" {
		return nil, errors.New("input and username cannot be empty")
	}

	userJSON, err := r.client.Get(ctx, userKey(input.Username)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var rec record
	if err := json.Unmarshal([]byte(userJSON), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return rec.toUser(input.Username), nil
}

// CreateUser persists a new user to Redis
func (r *redisRepository) CreateUser(ctx context.Context, input *CreateUserInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateUser(input.User); err != nil {
		return err
	}

	userJSON, err := json.Marshal(toRecord(input.User))
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	var created *redis.BoolCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		created = pipe.SetNX(ctx, userKey(input.User.Username), userJSON, 0)
		// SAdd is idempotent, an existing user stays indexed either way
		pipe.SAdd(ctx, usersKey, input.User.Username)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if !created.Val() {
		return ErrUserAlreadyExists
	}

	return nil
}

// SaveUser persists changes to an existing user in Redis
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateUser(input.User); err != nil {
		return err
	}

	userJSON, err := json.Marshal(toRecord(input.User))
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	// SetXX only writes when the key already exists
	updated, err := r.client.SetXX(ctx, userKey(input.User.Username), userJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	if !updated {
		return ErrUserNotFound
	}

	return nil
}
