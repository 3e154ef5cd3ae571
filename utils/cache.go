package utils

import (
	"context"
	"log"
	"time"

	"ironhorse/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CartCacheClient holds shopping carts keyed by cart token.
	CartCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for owner-token caching.
	AuthCacheClient *redis.Client
)

// AuthCachePrefix namespaces owner-token hashes in Redis.
const AuthCachePrefix = "owner-auth:"

// InitCartCache initializes the Redis client backing shopping carts.
func InitCartCache() {
	CartCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCartDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CartCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Carts): %v", err)
	}
}

// GetCartCacheClient returns the cart cache client.
func GetCartCacheClient() *redis.Client {
	if CartCacheClient == nil {
		InitCartCache()
	}
	return CartCacheClient
}

// InitAuthCache initializes the Redis client for owner-token caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for owner-token caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
