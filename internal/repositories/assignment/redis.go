package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/q21league/q21player/internal/models"
)

const (
	// Key prefix for Redis
	assignmentsKeyPrefix = "assignments:"
)

// ErrAssignmentsNotFound is returned when no assignments are stored for a round
var ErrAssignmentsNotFound = errors.New("assignments not found")

// Config holds configuration for the Redis assignment repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed assignment repository
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

// SaveAssignments persists a round's assignment list to Redis
func (r *redisRepository) SaveAssignments(ctx context.Context, input *SaveAssignmentsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	assignmentsJSON, err := json.Marshal(input.Assignments)
	if err != nil {
		return fmt.Errorf("failed to marshal assignments: %w", err)
	}

	key := assignmentsKey(input.SeasonID, input.RoundNumber)
	if err := r.client.Set(ctx, key, assignmentsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save assignments: %w", err)
	}

	return nil
}

// GetAssignments retrieves a round's assignment list from Redis
func (r *redisRepository) GetAssignments(ctx context.Context, input *GetAssignmentsInput) ([]models.Assignment, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := assignmentsKey(input.SeasonID, input.RoundNumber)
	assignmentsJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAssignmentsNotFound
		}
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	var assignments []models.Assignment
	if err := json.Unmarshal([]byte(assignmentsJSON), &assignments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assignments: %w", err)
	}

	return assignments, nil
}

func assignmentsKey(seasonID string, roundNumber int) string {
	return fmt.Sprintf("%s%s:%d", assignmentsKeyPrefix, seasonID, roundNumber)
}
