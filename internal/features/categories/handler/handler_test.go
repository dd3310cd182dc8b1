package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hood-sync/internal/features/categories/domain"
	"hood-sync/internal/features/categories/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCategoryService is a mock implementation of ports.CategoryService
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Browse(ctx context.Context, parentID int) (*domain.CategoryListing, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryListing), args.Error(1)
}

func (m *MockCategoryService) ShopCategories(ctx context.Context) (*domain.CategoryListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryListing), args.Error(1)
}

func (m *MockCategoryService) Invalidate(ctx context.Context, parentID int) error {
	args := m.Called(ctx, parentID)
	return args.Error(0)
}

func setupApp(svc *MockCategoryService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	h := NewCategoryHandler(svc)
	app.Get("/categories/shop", h.ShopCategories)
	app.Get("/categories/:id", h.Browse)
	app.Delete("/categories/:id/cache", h.Invalidate)
	return app
}

func TestCategoryHandler_Browse(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockCategoryService)
		app := setupApp(svc)
		svc.On("Browse", mock.Anything, 0).Return(&domain.CategoryListing{Parent: "0"}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/categories/0", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("NotANumber", func(t *testing.T) {
		svc := new(MockCategoryService)
		app := setupApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/categories/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "Browse", mock.Anything, mock.Anything)
	})

	t.Run("Negative", func(t *testing.T) {
		svc := new(MockCategoryService)
		app := setupApp(svc)
		svc.On("Browse", mock.Anything, -1).Return(nil, domain.ErrInvalidCategoryID).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/categories/-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RemoteFailure", func(t *testing.T) {
		svc := new(MockCategoryService)
		app := setupApp(svc)
		svc.On("Browse", mock.Anything, 5).Return(nil, fmt.Errorf("%w: timeout: deadline", service.ErrRemote)).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/categories/5", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("InternalError", func(t *testing.T) {
		svc := new(MockCategoryService)
		app := setupApp(svc)
		svc.On("Browse", mock.Anything, 5).Return(nil, errors.New("boom")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/categories/5", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestCategoryHandler_ShopCategories(t *testing.T) {
	svc := new(MockCategoryService)
	app := setupApp(svc)
	svc.On("ShopCategories", mock.Anything).Return(&domain.CategoryListing{Parent: "shop"}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/categories/shop", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestCategoryHandler_Invalidate(t *testing.T) {
	svc := new(MockCategoryService)
	app := setupApp(svc)
	svc.On("Invalidate", mock.Anything, 7).Return(nil).Once()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/categories/7/cache", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}
