package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/logger"
	"portfolio-api/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "portfolio:"

type CacheService interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
}

type RedisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(cfg *config.CacheConfig) (*RedisCacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisCacheService{client: client}, nil
}

func (c *RedisCacheService) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *RedisCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %v", err)
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *RedisCacheService) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *RedisCacheService) DeleteByPattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		err := c.client.Del(ctx, iter.Val()).Err()
		if err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *RedisCacheService) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCacheService) Close() error {
	return c.client.Close()
}

// NopCacheService is used when no Redis host is configured; every read misses.
type NopCacheService struct{}

func (NopCacheService) Get(context.Context, string) (string, error) { return "", redis.Nil }

func (NopCacheService) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (NopCacheService) Delete(context.Context, string) error { return nil }

func (NopCacheService) DeleteByPattern(context.Context, string) error { return nil }

func (NopCacheService) Ping(context.Context) error { return nil }

// readThrough serves key from cache, falling back to load and populating the cache.
// Cache errors are logged and never returned.
func readThrough[T any](ctx context.Context, cache CacheService, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	key = cacheKeyPrefix + key

	if raw, err := cache.Get(ctx, key); err == nil {
		var cached T
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		logCacheError("decode", key, err)
	} else if !errors.Is(err, redis.Nil) {
		logCacheError("get", key, err)
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	if err := cache.Set(ctx, key, value, ttl); err != nil {
		logCacheError("set", key, err)
	}
	return value, nil
}

// invalidate drops every cached entry under namespace.
func invalidate(ctx context.Context, cache CacheService, namespace string) {
	pattern := cacheKeyPrefix + namespace + "*"
	if err := cache.DeleteByPattern(ctx, pattern); err != nil {
		logCacheError("invalidate", pattern, err)
	}
}

func logCacheError(op, key string, err error) {
	logger.LogEvent(logrus.WarnLevel, "Cache operation failed", logrus.Fields{
		"op":    op,
		"key":   key,
		"error": err.Error(),
	})
}
