package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Cache is the optional redis client used to cache public payloads.
// It stays nil when REDIS_ADDR is not configured.
var Cache *redis.Client

// InitCache connects to redis when an address is configured. The app
// runs fine without it; callers must tolerate a nil Cache.
func InitCache() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	if config.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	Cache = client
	return nil
}
