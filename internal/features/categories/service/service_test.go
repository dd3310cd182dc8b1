package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hood-sync/internal/features/categories/domain"
	hood "hood-sync/internal/features/hood/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCategorySource is a mock implementation of ports.CategorySource
type MockCategorySource struct {
	mock.Mock
}

func (m *MockCategorySource) BrowseCategories(ctx context.Context, categoryID int) (hood.CategoryResult, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(hood.CategoryResult), args.Error(1)
}

func (m *MockCategorySource) ShopCategories(ctx context.Context) (hood.CategoryResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(hood.CategoryResult), args.Error(1)
}

// MockCategoryCache is a mock implementation of ports.CategoryCache
type MockCategoryCache struct {
	mock.Mock
}

func (m *MockCategoryCache) Get(ctx context.Context, key string) (*domain.CategoryListing, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryListing), args.Error(1)
}

func (m *MockCategoryCache) Save(ctx context.Context, key string, listing *domain.CategoryListing, ttl time.Duration) error {
	args := m.Called(ctx, key, listing, ttl)
	return args.Error(0)
}

func (m *MockCategoryCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var categories = hood.CategoryResult{
	CallResult: hood.CallResult{Success: true},
	Categories: []hood.Category{{ID: "10", Name: "Lampen", InsertProduct: true}},
}

func TestCategoryService_Browse(t *testing.T) {
	ctx := context.Background()

	t.Run("CacheHit", func(t *testing.T) {
		source := new(MockCategorySource)
		cache := new(MockCategoryCache)
		svc := NewCategoryService(source, cache, time.Hour)
		cache.On("Get", ctx, "hood:categories:5").Return(&domain.CategoryListing{Parent: "5"}, nil).Once()

		listing, err := svc.Browse(ctx, 5)
		require.NoError(t, err)
		assert.True(t, listing.Cached)
		source.AssertNotCalled(t, "BrowseCategories", mock.Anything, mock.Anything)
	})

	t.Run("MissFetchesAndStores", func(t *testing.T) {
		source := new(MockCategorySource)
		cache := new(MockCategoryCache)
		svc := NewCategoryService(source, cache, time.Hour)
		cache.On("Get", ctx, "hood:categories:0").Return(nil, nil).Once()
		source.On("BrowseCategories", ctx, 0).Return(categories, nil).Once()
		cache.On("Save", ctx, "hood:categories:0", mock.AnythingOfType("*domain.CategoryListing"), time.Hour).Return(nil).Once()

		listing, err := svc.Browse(ctx, 0)
		require.NoError(t, err)
		assert.False(t, listing.Cached)
		assert.Equal(t, "0", listing.Parent)
		assert.Len(t, listing.Categories, 1)
		source.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("CacheErrorFallsThrough", func(t *testing.T) {
		source := new(MockCategorySource)
		cache := new(MockCategoryCache)
		svc := NewCategoryService(source, cache, time.Hour)
		cache.On("Get", ctx, "hood:categories:0").Return(nil, errors.New("redis down")).Once()
		source.On("BrowseCategories", ctx, 0).Return(categories, nil).Once()
		cache.On("Save", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		listing, err := svc.Browse(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, listing.Categories, 1)
	})

	t.Run("RemoteFailureNotCached", func(t *testing.T) {
		source := new(MockCategorySource)
		cache := new(MockCategoryCache)
		svc := NewCategoryService(source, cache, time.Hour)
		cache.On("Get", ctx, mock.Anything).Return(nil, nil).Once()
		failed := hood.CategoryResult{CallResult: hood.Failed(hood.KindGlobalError, "Login fehlgeschlagen", "<raw/>")}
		source.On("BrowseCategories", ctx, 3).Return(failed, nil).Once()

		_, err := svc.Browse(ctx, 3)
		assert.ErrorIs(t, err, ErrRemote)
		assert.Contains(t, err.Error(), "Login fehlgeschlagen")
		cache.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NegativeID", func(t *testing.T) {
		svc := NewCategoryService(new(MockCategorySource), new(MockCategoryCache), time.Hour)
		_, err := svc.Browse(ctx, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidCategoryID)
	})
}

func TestCategoryService_ShopCategories(t *testing.T) {
	ctx := context.Background()
	source := new(MockCategorySource)
	cache := new(MockCategoryCache)
	svc := NewCategoryService(source, cache, time.Minute)
	cache.On("Get", ctx, domain.ShopKey).Return(nil, nil).Once()
	source.On("ShopCategories", ctx).Return(categories, nil).Once()
	cache.On("Save", ctx, domain.ShopKey, mock.Anything, time.Minute).Return(nil).Once()

	listing, err := svc.ShopCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "shop", listing.Parent)
	source.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCategoryService_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache := new(MockCategoryCache)
	svc := NewCategoryService(new(MockCategorySource), cache, time.Minute)
	cache.On("Delete", ctx, "hood:categories:7").Return(nil).Once()

	assert.NoError(t, svc.Invalidate(ctx, 7))
	assert.ErrorIs(t, svc.Invalidate(ctx, -2), domain.ErrInvalidCategoryID)
	cache.AssertExpectations(t)
}
