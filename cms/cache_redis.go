package cms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wcc-platform/contentschema/page"
)

const pageKeyPrefix = "cms:page:"

// RedisCache is a Redis-backed Cache shared between service instances.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// OpenRedis parses url and pings the server.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func (c *RedisCache) Get(ctx context.Context, t page.Type) ([]byte, error) {
	b, err := c.client.Get(ctx, pageKeyPrefix+t.ID()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Set stores content with SET EX; a zero ttl keeps the key until it is deleted.
func (c *RedisCache) Set(ctx context.Context, t page.Type, content []byte, ttl time.Duration) error {
	return c.client.Set(ctx, pageKeyPrefix+t.ID(), content, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, t page.Type) error {
	return c.client.Del(ctx, pageKeyPrefix+t.ID()).Err()
}
