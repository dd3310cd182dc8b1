package handler

import (
	"errors"
	"strconv"

	"hood-sync/internal/core/logger"
	"hood-sync/internal/core/server"
	"hood-sync/internal/features/categories/domain"
	"hood-sync/internal/features/categories/ports"
	"hood-sync/internal/features/categories/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CategoryHandler handles HTTP requests for the Hood.de category tree.
type CategoryHandler struct {
	service ports.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// Browse handles GET /categories/:id.
// @Summary Browse categories
// @Description Returns the children of a Hood.de category; 0 is the root. Results are cached.
// @Tags categories
// @Produce json
// @Param id path int true "Parent category ID"
// @Success 200 {object} domain.CategoryListing
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) Browse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return server.Error(c, fiber.StatusBadRequest, "category id must be a number")
	}

	listing, err := h.service.Browse(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(listing)
}

// ShopCategories handles GET /categories/shop.
// @Summary Shop categories
// @Description Returns the seller's own shop categories.
// @Tags categories
// @Produce json
// @Success 200 {object} domain.CategoryListing
// @Failure 502 {object} server.ErrorResponse
// @Router /categories/shop [get]
func (h *CategoryHandler) ShopCategories(c *fiber.Ctx) error {
	listing, err := h.service.ShopCategories(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(listing)
}

// Invalidate handles DELETE /categories/:id/cache.
// @Summary Drop cached categories
// @Tags categories
// @Produce json
// @Param id path int true "Parent category ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} server.ErrorResponse
// @Router /categories/{id}/cache [delete]
func (h *CategoryHandler) Invalidate(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return server.Error(c, fiber.StatusBadRequest, "category id must be a number")
	}

	if err := h.service.Invalidate(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Category cache cleared",
	})
}

func (h *CategoryHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCategoryID):
		return server.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRemote):
		return server.Error(c, fiber.StatusBadGateway, err.Error())
	default:
		logger.Get().Error("Category request failed", zap.Error(err))
		return server.Error(c, fiber.StatusInternalServerError, "internal server error")
	}
}
