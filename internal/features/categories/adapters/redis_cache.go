package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hood-sync/internal/core/cache"
	"hood-sync/internal/features/categories/domain"
)

// RedisCategoryCache implements ports.CategoryCache on the shared cache.
type RedisCategoryCache struct {
	cache cache.Cache
}

// NewRedisCategoryCache creates a new RedisCategoryCache.
func NewRedisCategoryCache(c cache.Cache) *RedisCategoryCache {
	return &RedisCategoryCache{
		cache: c,
	}
}

// Save stores the listing as JSON.
func (r *RedisCategoryCache) Save(ctx context.Context, key string, listing *domain.CategoryListing, ttl time.Duration) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}

	if err := r.cache.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to save categories to cache: %w", err)
	}
	return nil
}

// Get retrieves a listing from the cache.
func (r *RedisCategoryCache) Get(ctx context.Context, key string) (*domain.CategoryListing, error) {
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get categories from cache: %w", err)
	}

	var listing domain.CategoryListing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return &listing, nil
}

// Delete removes a listing from the cache.
func (r *RedisCategoryCache) Delete(ctx context.Context, key string) error {
	if err := r.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete categories from cache: %w", err)
	}
	return nil
}
