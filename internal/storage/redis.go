package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces MoodLetter keys inside a shared Redis instance.
const keyPrefix = "moodletter:"

// RedisGateway persists each key as a JSON string value in Redis.
type RedisGateway struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed gateway and verifies connectivity.
func NewRedis(ctx context.Context, addr string, db int) (*RedisGateway, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return &RedisGateway{client: client}, nil
}

// NewRedisFromClient wraps an existing client (used by tests with miniredis).
func NewRedisFromClient(client *redis.Client) *RedisGateway {
	return &RedisGateway{client: client}
}

// Save serializes value and SETs it. A single SET replaces the whole value,
// which gives the same whole-collection write semantics as the local gateway.
func (g *RedisGateway) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	return g.client.Set(ctx, keyPrefix+key, data, 0).Err()
}

// Load GETs the key and decodes it into target.
func (g *RedisGateway) Load(ctx context.Context, key string, target any) (bool, error) {
	data, err := g.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return false, &ParseError{Key: key, Err: err}
	}
	return true, nil
}

// Delete removes the key.
func (g *RedisGateway) Delete(ctx context.Context, key string) error {
	return g.client.Del(ctx, keyPrefix+key).Err()
}

// Close closes the underlying client.
func (g *RedisGateway) Close() error {
	return g.client.Close()
}
