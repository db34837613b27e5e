package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "cleaning-ops:lists"

// RedisStore keeps cached list data in Redis
type RedisStore struct {
	redis  *redis.Client
	prefix string
}

// NewRedisStore creates a store on an existing client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client, prefix: defaultPrefix}
}

// Connect parses a redis:// URL, opens a client and pings it
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Get loads key into dest. It reports false on a miss.
func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	result, err := s.redis.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(result), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value as JSON under key for ttl
func (s *RedisStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, s.key(key), payload, ttl).Err()
}

// Generation returns the current generation, zero if it was never bumped
func (s *RedisStore) Generation(ctx context.Context) (int64, error) {
	gen, err := s.redis.Get(ctx, s.generationKey()).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return gen, nil
}

// Invalidate bumps the generation. Stale entries expire on their own TTL.
func (s *RedisStore) Invalidate(ctx context.Context) error {
	return s.redis.Incr(ctx, s.generationKey()).Err()
}

func (s *RedisStore) key(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *RedisStore) generationKey() string {
	return s.prefix + ":generation"
}
