package config

import (
	"time"
)

type CacheConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	DefaultTTL    time.Duration
}

func NewCacheConfig() (*CacheConfig, error) {
	db, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	ttl, err := getDuration("CACHE_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	return &CacheConfig{
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       db,
		DefaultTTL:    ttl,
	}, nil
}

// Enabled reports whether a Redis host was configured.
func (c *CacheConfig) Enabled() bool {
	return c.RedisHost != ""
}
