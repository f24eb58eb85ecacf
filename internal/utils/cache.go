package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Generation suffix of cache keys
	"time"          // Time durations

	"asset_map/internal/domain" // Domain models

	"github.com/redis/go-redis/v9" // Redis client
)

const (
	AssetCacheTTL      = 60 * time.Second // How long a user's asset list stays cached
	AssetGenerationTTL = 24 * time.Hour   // Idle time after which a user's generation counter is dropped
)

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// AssetCacheKey is the cache key of a user's asset list as of generation gen
func AssetCacheKey(userID string, gen int64) string {
	return "assets:user:" + userID + ":" + strconv.FormatInt(gen, 10)
}

// AssetGenerationKey counts the invalidations of a user's asset list
func AssetGenerationKey(userID string) string {
	return "assets:gen:" + userID
}

// AssetCache caches each user's asset list. A nil *AssetCache is a valid, disabled cache.
//
// Lists are stored under the generation a reader saw before it queried the store, and
// Invalidate bumps the generation. A list loaded before a write therefore lands under a
// key no later reader asks for, and simply expires.
type AssetCache struct {
	rdb *redis.Client
}

// NewAssetCache wraps a Redis client; a nil client disables caching
func NewAssetCache(rdb *redis.Client) *AssetCache {
	if rdb == nil {
		return nil
	}
	return &AssetCache{rdb: rdb}
}

// Get returns the cached asset list of userID, if present, with the current generation.
// Pass the generation to Set when filling the cache after a miss.
func (c *AssetCache) Get(ctx context.Context, userID string) ([]domain.Asset, int64, bool, error) {
	if c == nil {
		return nil, 0, false, nil
	}
	gen, err := c.rdb.Get(ctx, AssetGenerationKey(userID)).Int64()
	if err == redis.Nil {
		gen = 0 // Never invalidated
	} else if err != nil {
		return nil, 0, false, err
	}
	var assets []domain.Asset
	found, err := GetCache(ctx, c.rdb, AssetCacheKey(userID, gen), &assets)
	if err != nil || !found {
		return nil, gen, false, err
	}
	return assets, gen, true, nil
}

// Set stores the asset list of userID under generation gen
func (c *AssetCache) Set(ctx context.Context, userID string, gen int64, assets []domain.Asset) error {
	if c == nil {
		return nil
	}
	return SetCache(ctx, c.rdb, AssetCacheKey(userID, gen), assets, AssetCacheTTL)
}

// Invalidate moves userID to a new generation, orphaning every list cached so far
func (c *AssetCache) Invalidate(ctx context.Context, userID string) error {
	if c == nil {
		return nil
	}
	key := AssetGenerationKey(userID)
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, AssetGenerationTTL)
		return nil
	})
	return err
}
