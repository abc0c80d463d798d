package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	customError "github.com/kitnetmanager/kitnet-client/pkg/errors"
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a cache backed by Redis, for deployments where
// several monitor instances should share one snapshot cache.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (r *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, customError.NewBusinessError("CACHE_ERROR", "cache read failed", err)
	}
	return value, true, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return customError.NewBusinessError("CACHE_ERROR", "cache write failed", err)
	}
	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return customError.NewBusinessError("CACHE_ERROR", "cache delete failed", err)
	}
	return nil
}

func (r *redisStore) DeletePrefix(ctx context.Context, prefix string) error {
	iter := r.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return customError.NewBusinessError("CACHE_ERROR", "cache delete failed", err)
		}
	}
	if err := iter.Err(); err != nil {
		return customError.NewBusinessError("CACHE_ERROR", "cache scan failed", err)
	}
	return nil
}
