package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient(redisURL string) (*RedisClient, error) {
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

// GetQuote returns the cached quote for a day key, or "" on a miss.
func (r *RedisClient) GetQuote(day string) (string, error) {
	quote, err := r.client.Get(r.ctx, "quote:"+day).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cached quote: %w", err)
	}
	return quote, nil
}

func (r *RedisClient) StoreQuote(day, quote string, ttl time.Duration) error {
	if err := r.client.Set(r.ctx, "quote:"+day, quote, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache quote: %w", err)
	}
	return nil
}
