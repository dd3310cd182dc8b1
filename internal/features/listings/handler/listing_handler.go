package handler

import (
	"errors"
	"strings"

	"hood-sync/internal/core/logger"
	"hood-sync/internal/core/server"
	hood "hood-sync/internal/features/hood/domain"
	"hood-sync/internal/features/listings/domain"
	"hood-sync/internal/features/listings/ports"
	"hood-sync/internal/features/listings/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ListingHandler handles HTTP requests for Hood.de listings.
type ListingHandler struct {
	service  ports.UploadService
	validate *validator.Validate
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(service ports.UploadService) *ListingHandler {
	return &ListingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// BulkRequest is the body of a bulk upload.
type BulkRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	// Items are checked one by one during the upload; an invalid item fails alone.
	Items []ports.BulkItem `json:"items"`
}

// UpdateRequest is the body of an update of listed items.
type UpdateRequest struct {
	Items []hood.ItemPayload `json:"items" validate:"required,min=1"`
}

// ClassifyRequest is the body of a variant classification.
type ClassifyRequest struct {
	ProductOptions []hood.ProductOption `json:"product_options"`
}

// Validate godoc
// @Summary Validate a listing
// @Description Runs the local compliance checks and Hood.de itemValidate without listing the item.
// @Tags listings
// @Accept json
// @Produce json
// @Param item body hood.ItemPayload true "Listing"
// @Success 200 {object} hood.UploadOutcome
// @Failure 400 {object} server.ErrorResponse
// @Failure 422 {object} hood.UploadOutcome
// @Failure 502 {object} hood.UploadOutcome
// @Router /listings/validate [post]
func (h *ListingHandler) Validate(c *fiber.Ctx) error {
	var item hood.ItemPayload
	if err := c.BodyParser(&item); err != nil {
		return server.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	outcome, err := h.service.Validate(c.UserContext(), item)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(outcomeStatus(outcome.CallResult)).JSON(outcome)
}

// Upload godoc
// @Summary Upload a listing
// @Description Lists one item on Hood.de. With validate=true the item is validated remotely first.
// @Tags listings
// @Accept json
// @Produce json
// @Param ref path string true "Product reference"
// @Param validate query bool false "Validate before inserting"
// @Param item body hood.ItemPayload true "Listing"
// @Success 200 {object} hood.UploadOutcome
// @Failure 400 {object} server.ErrorResponse
// @Failure 422 {object} hood.UploadOutcome
// @Failure 502 {object} hood.UploadOutcome
// @Router /listings/{ref}/upload [post]
func (h *ListingHandler) Upload(c *fiber.Ctx) error {
	var item hood.ItemPayload
	if err := c.BodyParser(&item); err != nil {
		return server.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	ref := c.Params("ref")
	var (
		outcome hood.UploadOutcome
		err     error
	)
	if c.QueryBool("validate", false) {
		outcome, err = h.service.ValidateAndUpload(c.UserContext(), ref, item)
	} else {
		outcome, err = h.service.Upload(c.UserContext(), ref, item)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(outcomeStatus(outcome.CallResult)).JSON(outcome)
}

// BulkUpload godoc
// @Summary Bulk upload listings
// @Description Lists the items one after another with a pause between calls.
// @Tags listings
// @Accept json
// @Produce json
// @Param request body BulkRequest true "Items"
// @Success 200 {object} domain.BulkUpload
// @Failure 400 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /listings/bulk [post]
func (h *ListingHandler) BulkUpload(c *fiber.Ctx) error {
	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return server.ValidationFailed(c, err)
	}
	if len(req.Items) == 0 {
		return server.Error(c, fiber.StatusBadRequest, service.ErrNoItems.Error())
	}

	bulk, err := h.service.BulkUpload(c.UserContext(), req.Name, req.Items)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(bulk)
}

// GetBulk godoc
// @Summary Get a bulk upload
// @Tags listings
// @Produce json
// @Param id path string true "Bulk upload ID"
// @Success 200 {object} domain.BulkUpload
// @Failure 404 {object} server.ErrorResponse
// @Router /listings/bulk/{id} [get]
func (h *ListingHandler) GetBulk(c *fiber.Ctx) error {
	bulk, err := h.service.GetBulk(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(bulk)
}

// Logs godoc
// @Summary Upload history of a product
// @Tags listings
// @Produce json
// @Param ref path string true "Product reference"
// @Param limit query int false "Maximum number of entries" default(20)
// @Success 200 {array} domain.UploadLog
// @Router /listings/{ref}/logs [get]
func (h *ListingHandler) Logs(c *fiber.Ctx) error {
	logs, err := h.service.Logs(c.UserContext(), c.Params("ref"), c.QueryInt("limit", 0))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(logs)
}

// Update godoc
// @Summary Update listings
// @Description Updates up to five listed items in one itemUpdate call.
// @Tags listings
// @Accept json
// @Produce json
// @Param request body UpdateRequest true "Items with their item_id"
// @Success 200 {object} hood.BatchOutcome
// @Failure 400 {object} server.ErrorResponse
// @Failure 422 {object} hood.BatchOutcome
// @Router /listings [put]
func (h *ListingHandler) Update(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	outcome, err := h.service.Update(c.UserContext(), req.Items)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(outcomeStatus(outcome.CallResult)).JSON(outcome)
}

// Delete godoc
// @Summary Delete listings
// @Tags listings
// @Produce json
// @Param ids query string true "Comma separated item IDs"
// @Success 200 {object} hood.BatchOutcome
// @Failure 400 {object} server.ErrorResponse
// @Failure 422 {object} hood.BatchOutcome
// @Router /listings [delete]
func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	outcome, err := h.service.Delete(c.UserContext(), splitList(c.Query("ids")))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(outcomeStatus(outcome.CallResult)).JSON(outcome)
}

// Status godoc
// @Summary Listing status
// @Tags listings
// @Produce json
// @Param ids query string true "Comma separated item IDs"
// @Param levels query string false "Comma separated detail levels (image, description)"
// @Success 200 {object} hood.ItemStatusResult
// @Failure 400 {object} server.ErrorResponse
// @Router /listings/status [get]
func (h *ListingHandler) Status(c *fiber.Ctx) error {
	result, err := h.service.Status(c.UserContext(), splitList(c.Query("ids")), splitList(c.Query("levels")))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(outcomeStatus(result.CallResult)).JSON(result)
}

// Detail godoc
// @Summary Listing detail
// @Tags listings
// @Produce json
// @Param id path string true "Hood.de item ID"
// @Success 200 {object} hood.ItemStatusResult
// @Router /listings/{id}/detail [get]
func (h *ListingHandler) Detail(c *fiber.Ctx) error {
	result, err := h.service.Detail(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(outcomeStatus(result.CallResult)).JSON(result)
}

// List godoc
// @Summary List listings
// @Tags listings
// @Produce json
// @Param status query string false "running, sold or unsuccessful" default(running)
// @Param start query int false "First record"
// @Param group_size query int false "Page size"
// @Success 200 {object} hood.ItemListResult
// @Failure 400 {object} server.ErrorResponse
// @Router /listings [get]
func (h *ListingHandler) List(c *fiber.Ctx) error {
	q := hood.ItemListQuery{
		Status:    c.Query("status", "running"),
		StartAt:   c.QueryInt("start", 0),
		GroupSize: c.QueryInt("group_size", 0),
	}
	result, err := h.service.List(c.UserContext(), q)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(outcomeStatus(result.CallResult)).JSON(result)
}

// ClassifyVariants godoc
// @Summary Classify variants
// @Description Maps the variant dimensions of an item to the Hood.de shop package it needs.
// @Tags listings
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Product options"
// @Success 200 {object} domain.VariantClassification
// @Failure 400 {object} server.ErrorResponse
// @Router /listings/variants/classify [post]
func (h *ListingHandler) ClassifyVariants(c *fiber.Ctx) error {
	var req ClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	return c.JSON(domain.ClassifyVariants(req.ProductOptions))
}

func (h *ListingHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidItem), errors.Is(err, service.ErrNoItems):
		return server.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrBulkNotFound):
		return server.Error(c, fiber.StatusNotFound, err.Error())
	default:
		logger.Get().Error("Listing request failed", zap.Error(err), zap.String("ray_id", server.RayID(c)))
		return server.Error(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// outcomeStatus maps a call verdict to an HTTP status: transport and malformed answers are a bad
// gateway, a rejection by Hood.de is unprocessable.
func outcomeStatus(r hood.CallResult) int {
	switch {
	case r.Success:
		return fiber.StatusOK
	case r.Kind.Retryable(), r.Kind == hood.KindHTMLResponse, r.Kind == hood.KindParseError:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusUnprocessableEntity
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
