package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client, ctx: ctx}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func progressKey(assignmentID uint) string {
	return fmt.Sprintf("progress:%d", assignmentID)
}

// StoreProgressSummary caches a derived progress summary with expiration.
func (r *RedisClient) StoreProgressSummary(assignmentID uint, summary interface{}, ttl time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal progress summary: %w", err)
	}
	return r.client.Set(r.ctx, progressKey(assignmentID), data, ttl).Err()
}

// GetProgressSummary reads a cached summary into dest. The bool reports a hit.
func (r *RedisClient) GetProgressSummary(assignmentID uint, dest interface{}) (bool, error) {
	data, err := r.client.Get(r.ctx, progressKey(assignmentID)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisClient) InvalidateProgress(assignmentID uint) error {
	return r.client.Del(r.ctx, progressKey(assignmentID)).Err()
}
