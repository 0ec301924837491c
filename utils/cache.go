// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"studyplan/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient holds settings that outlive a request, such as capacity.
var CacheClient *redis.Client

// NewRedisClient connects to the configured Redis server on db.
func NewRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
}

// InitCache connects CacheClient and verifies the connection.
func InitCache() error {
	client := NewRedisClient(config.AppConfig.RedisCacheDB)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (cache db %d): %w", config.AppConfig.RedisCacheDB, err)
	}
	CacheClient = client
	return nil
}

// GetCacheClient returns the cache client, connecting lazily. The client
// is returned even when the first ping fails so callers surface the error.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		if err := InitCache(); err != nil {
			GetLogger().Sugar().Warnf("cache: %v", err)
			CacheClient = NewRedisClient(config.AppConfig.RedisCacheDB)
		}
	}
	return CacheClient
}
