package ports

import (
	"context"
	"time"

	"hood-sync/internal/features/categories/domain"
	hood "hood-sync/internal/features/hood/domain"
)

// CategoryService defines the primary port for category browsing.
type CategoryService interface {
	Browse(ctx context.Context, parentID int) (*domain.CategoryListing, error)
	ShopCategories(ctx context.Context) (*domain.CategoryListing, error)
	Invalidate(ctx context.Context, parentID int) error
}

// CategorySource reads the category tree from Hood.de.
type CategorySource interface {
	BrowseCategories(ctx context.Context, categoryID int) (hood.CategoryResult, error)
	ShopCategories(ctx context.Context) (hood.CategoryResult, error)
}

// CategoryCache defines the secondary port for cached category levels.
type CategoryCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, key string) (*domain.CategoryListing, error)
	Save(ctx context.Context, key string, listing *domain.CategoryListing, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
