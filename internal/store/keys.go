package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const keySetName = "market:posting_keys"

// KeyScanner is the fallback source of identity keys, normally *Postgres.
type KeyScanner interface {
	Keys(ctx context.Context) (map[string]struct{}, error)
}

// RedisKeySet keeps the identity-key set in a Redis SET so a scrape cycle
// does not rescan the whole corpus table. Postgres remains the source of
// truth: the set is warmed from a full scan and rebuilt on any Redis miss.
type RedisKeySet struct {
	rdb      *redis.Client
	fallback KeyScanner
}

// NewRedisKeySet parses redisURL, verifies connectivity and returns the set.
func NewRedisKeySet(ctx context.Context, redisURL string, fallback KeyScanner) (*RedisKeySet, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisKeySet{rdb: rdb, fallback: fallback}, nil
}

// Close releases the Redis client.
func (k *RedisKeySet) Close() error { return k.rdb.Close() }

// Warm seeds the Redis set from a full store scan. Call once at startup.
func (k *RedisKeySet) Warm(ctx context.Context) error {
	keys, err := k.fallback.Keys(ctx)
	if err != nil {
		return fmt.Errorf("warm key set: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	members := make([]interface{}, 0, len(keys))
	for key := range keys {
		members = append(members, key)
	}
	if err := k.rdb.SAdd(ctx, keySetName, members...).Err(); err != nil {
		return fmt.Errorf("seed key set: %w", err)
	}
	slog.Info("key set warmed", "keys", len(keys))
	return nil
}

// Existing returns all known identity keys. When Redis is empty or
// unreachable it falls back to the store scan, so a lost cache degrades to a
// slower cycle rather than duplicate inserts.
func (k *RedisKeySet) Existing(ctx context.Context) (map[string]struct{}, error) {
	members, err := k.rdb.SMembers(ctx, keySetName).Result()
	if err != nil || len(members) == 0 {
		if err != nil {
			slog.Warn("redis key set unavailable, scanning store", "error", err)
		}
		return k.fallback.Keys(ctx)
	}
	keys := make(map[string]struct{}, len(members))
	for _, m := range members {
		keys[m] = struct{}{}
	}
	return keys, nil
}

// Add records freshly inserted keys.
func (k *RedisKeySet) Add(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	members := make([]interface{}, len(keys))
	for i, key := range keys {
		members[i] = key
	}
	return k.rdb.SAdd(ctx, keySetName, members...).Err()
}
