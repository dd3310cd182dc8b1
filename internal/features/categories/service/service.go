package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hood-sync/internal/core/logger"
	"hood-sync/internal/features/categories/domain"
	"hood-sync/internal/features/categories/ports"
	hood "hood-sync/internal/features/hood/domain"

	"go.uber.org/zap"
)

// ErrRemote is returned when Hood.de did not deliver a usable category list.
var ErrRemote = errors.New("category request failed")

// CategoryServiceImpl implements ports.CategoryService with a read-through cache.
type CategoryServiceImpl struct {
	source ports.CategorySource
	cache  ports.CategoryCache
	ttl    time.Duration
	now    func() time.Time
}

// NewCategoryService creates a new CategoryServiceImpl.
func NewCategoryService(source ports.CategorySource, cache ports.CategoryCache, ttl time.Duration) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		source: source,
		cache:  cache,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Browse returns the children of parentID; 0 is the root.
func (s *CategoryServiceImpl) Browse(ctx context.Context, parentID int) (*domain.CategoryListing, error) {
	if parentID < 0 {
		return nil, domain.ErrInvalidCategoryID
	}

	return s.readThrough(ctx, domain.BrowseKey(parentID), strconv.Itoa(parentID), func() (hood.CategoryResult, error) {
		return s.source.BrowseCategories(ctx, parentID)
	})
}

// ShopCategories returns the seller's own shop categories.
func (s *CategoryServiceImpl) ShopCategories(ctx context.Context) (*domain.CategoryListing, error) {
	return s.readThrough(ctx, domain.ShopKey, "shop", func() (hood.CategoryResult, error) {
		return s.source.ShopCategories(ctx)
	})
}

// Invalidate drops the cached children of parentID.
func (s *CategoryServiceImpl) Invalidate(ctx context.Context, parentID int) error {
	if parentID < 0 {
		return domain.ErrInvalidCategoryID
	}
	if err := s.cache.Delete(ctx, domain.BrowseKey(parentID)); err != nil {
		return fmt.Errorf("service: failed to invalidate categories: %w", err)
	}
	return nil
}

// readThrough serves key from the cache. A miss or a cache error falls through to fetch, and
// only successful answers are stored.
func (s *CategoryServiceImpl) readThrough(ctx context.Context, key, parent string, fetch func() (hood.CategoryResult, error)) (*domain.CategoryListing, error) {
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Get().Warn("Category cache unavailable", zap.String("key", key), zap.Error(err))
	}
	if cached != nil {
		cached.Cached = true
		return cached, nil
	}

	result, err := fetch()
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch categories: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: %s: %s", ErrRemote, result.Kind.Label(), result.Error)
	}

	listing := &domain.CategoryListing{
		Parent:     parent,
		Categories: result.Categories,
		FetchedAt:  s.now(),
	}
	if err := s.cache.Save(ctx, key, listing, s.ttl); err != nil {
		logger.Get().Warn("Failed to cache categories", zap.String("key", key), zap.Error(err))
	}
	return listing, nil
}
