package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/ports/cache"
	"github.com/redis/go-redis/v9"
)

// Client реализует cache.Cache поверх redis.Client
type Client struct {
	client *redis.Client
}

func NewClient(client *redis.Client) cache.Cache {
	return &Client{
		client: client,
	}
}

// Get отсутствие ключа возвращается как cache.ErrKeyNotFound
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", cache.ErrKeyNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (c *Client) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
