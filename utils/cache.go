// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"glowdesk/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// ProgressCacheClient is the dedicated client for booking progress records.
	ProgressCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitProgressCache initializes the Redis client that holds in-flight booking
// sessions. Kept on its own DB so flushing the generic cache never wipes a
// customer's half-finished booking.
func InitProgressCache() {
	ProgressCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisProgressDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ProgressCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Progress Cache): %v", err)
	}
}

// GetProgressCacheClient returns the Redis client for booking progress records.
func GetProgressCacheClient() *redis.Client {
	if ProgressCacheClient == nil {
		InitProgressCache()
	}
	return ProgressCacheClient
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	InitCache()
	InitProgressCache()
}
