package utils

import (
	"context"
	"testing"

	"asset_map/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*AssetCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewAssetCache(rdb), mr
}

func TestAssetCache_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	_, gen, found, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, gen)

	assets := []domain.Asset{{ID: "a1", UserID: "u1", Mnemonic: "AAPL", Price: 10, Shares: 2}}
	require.NoError(t, cache.Set(ctx, "u1", gen, assets))
	assert.True(t, mr.Exists(AssetCacheKey("u1", 0)))
	assert.Equal(t, AssetCacheTTL, mr.TTL(AssetCacheKey("u1", 0)))

	got, _, found, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, assets, got)

	require.NoError(t, cache.Invalidate(ctx, "u1"))
	_, gen, found, err = cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, int64(1), gen)
	assert.Equal(t, AssetGenerationTTL, mr.TTL(AssetGenerationKey("u1")))
}

func TestAssetCache_FillWithOldGenerationIsIgnored(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	_, gen, _, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(ctx, "u1")) // a write lands while the reader loads
	require.NoError(t, cache.Set(ctx, "u1", gen, []domain.Asset{{ID: "stale"}}))

	_, _, found, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAssetCache_UsersAreIndependent(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	require.NoError(t, cache.Set(ctx, "u1", 0, []domain.Asset{{ID: "a1"}}))
	require.NoError(t, cache.Invalidate(ctx, "u2"))

	_, _, found, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestAssetCache_NilIsDisabled(t *testing.T) {
	ctx := context.Background()
	cache := NewAssetCache(nil)
	assert.Nil(t, cache)

	require.NoError(t, cache.Set(ctx, "u1", 0, []domain.Asset{{ID: "a1"}}))
	_, _, found, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, cache.Invalidate(ctx, "u1"))
}

func TestAssetCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	_, _, found, err := cache.Get(context.Background(), "u1")
	assert.Error(t, err)
	assert.False(t, found)
}
