package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/akhilesh-av/Salon-akhil-freelance/config"
)

var (
	// CacheClient is the shared Redis client for the catalog read cache.
	CacheClient *redis.Client
	cacheOnce   sync.Once
)

// InitCache connects the Redis cache client. The cache is an optimisation
// only: if Redis is unreachable the client stays nil and readers fall
// through to MongoDB.
func InitCache() {
	cacheOnce.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisCacheDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if _, err := client.Ping(ctx).Result(); err != nil {
			GetLogger().Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
			return
		}
		CacheClient = client
	})
}

// GetCacheClient returns the cache client, or nil when caching is disabled.
func GetCacheClient() *redis.Client {
	InitCache()
	return CacheClient
}
