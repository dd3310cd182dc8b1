package adapters

import (
	"context"
	"testing"
	"time"

	"hood-sync/internal/core/cache"
	"hood-sync/internal/features/categories/domain"
	hood "hood-sync/internal/features/hood/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCategoryCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisCategoryCache(adapter), mr
}

func TestRedisCategoryCache_SaveGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	key := domain.BrowseKey(0)

	listing := &domain.CategoryListing{
		Parent:     "0",
		Categories: []hood.Category{{ID: "1", Name: "Elektronik", ChildCount: 3}},
		FetchedAt:  time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.Save(ctx, key, listing, time.Hour))
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, listing.Categories, got.Categories)
	assert.True(t, listing.FetchedAt.Equal(got.FetchedAt))
}

func TestRedisCategoryCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), domain.BrowseKey(99))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCategoryCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	key := domain.ShopKey

	require.NoError(t, c.Save(ctx, key, &domain.CategoryListing{Parent: "shop"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCategoryCache_CorruptAndDelete(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	key := domain.BrowseKey(1)

	require.NoError(t, mr.Set(key, "not json"))
	_, err := c.Get(ctx, key)
	assert.Error(t, err)

	require.NoError(t, c.Delete(ctx, key))
	assert.False(t, mr.Exists(key))
}
