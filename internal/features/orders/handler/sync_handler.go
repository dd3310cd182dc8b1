package handler

import (
	"errors"
	"time"

	"hood-sync/internal/core/logger"
	"hood-sync/internal/core/server"
	hood "hood-sync/internal/features/hood/domain"
	"hood-sync/internal/features/orders/domain"
	"hood-sync/internal/features/orders/ports"
	"hood-sync/internal/features/orders/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// SyncHandler handles HTTP requests for order synchronization.
type SyncHandler struct {
	service  ports.SyncService
	validate *validator.Validate
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(service ports.SyncService) *SyncHandler {
	return &SyncHandler{
		service:  service,
		validate: validator.New(),
	}
}

// SyncRequest selects the orders to synchronize. All fields are optional.
type SyncRequest struct {
	StartDate string `json:"start_date" validate:"required_with=EndDate,omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required_with=StartDate,omitempty,datetime=2006-01-02"`
	// DateType defaults to orderDate.
	DateType string `json:"date_type" validate:"omitempty,oneof=orderDate statusChange showAll"`
	ListMode string `json:"list_mode" validate:"omitempty,oneof=details orderIDs"`
	OrderID  string `json:"order_id" validate:"omitempty,alphanum,max=32"`
}

// filter converts a validated request into an orderList filter.
func (r SyncRequest) filter() (hood.OrderFilter, error) {
	f := hood.OrderFilter{ListMode: r.ListMode, OrderID: r.OrderID}
	if r.StartDate == "" {
		return f, nil
	}

	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return f, err
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return f, err
	}
	if end.Before(start) {
		return f, errors.New("end_date is before start_date")
	}

	dateType := r.DateType
	if dateType == "" {
		dateType = "orderDate"
	}
	f.DateRange = &hood.DateRange{Type: dateType, Start: start, End: end}
	return f, nil
}

// Sync godoc
// @Summary Synchronize orders
// @Description Fetches orders from Hood.de and upserts them into local storage.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body SyncRequest false "Order filter"
// @Success 200 {object} domain.SyncRun
// @Failure 400 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Failure 502 {object} domain.SyncRun
// @Failure 500 {object} server.ErrorResponse
// @Router /orders/sync [post]
func (h *SyncHandler) Sync(c *fiber.Ctx) error {
	var req SyncRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return server.Error(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	if err := h.validate.Struct(req); err != nil {
		return server.ValidationFailed(c, err)
	}

	filter, err := req.filter()
	if err != nil {
		return server.Error(c, fiber.StatusBadRequest, err.Error())
	}

	run, err := h.service.Sync(c.UserContext(), filter)
	return h.respondRun(c, run, err)
}

// SyncRecent godoc
// @Summary Synchronize recent orders
// @Description Synchronizes the orders placed in the last N days.
// @Tags orders
// @Produce json
// @Param days query int false "Window in days" default(7)
// @Success 200 {object} domain.SyncRun
// @Failure 400 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Failure 502 {object} domain.SyncRun
// @Router /orders/sync/recent [post]
func (h *SyncHandler) SyncRecent(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	run, err := h.service.SyncRecent(c.UserContext(), days)
	return h.respondRun(c, run, err)
}

func (h *SyncHandler) respondRun(c *fiber.Ctx, run *domain.SyncRun, err error) error {
	switch {
	case errors.Is(err, service.ErrSyncInProgress):
		return server.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidDays):
		return server.Error(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		logger.Get().Error("Order sync failed", zap.Error(err), zap.String("ray_id", server.RayID(c)))
		return server.Error(c, fiber.StatusInternalServerError, "internal server error")
	}

	if run.Status == domain.SyncStatusError {
		return c.Status(fiber.StatusBadGateway).JSON(run)
	}
	return c.JSON(run)
}

// GetSummary godoc
// @Summary Order summary
// @Description Aggregates the locally stored orders by status, payment provider and shipping method.
// @Tags orders
// @Produce json
// @Success 200 {object} domain.OrderSummary
// @Failure 500 {object} server.ErrorResponse
// @Router /orders/summary [get]
func (h *SyncHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to summarize orders", zap.Error(err))
		return server.Error(c, fiber.StatusInternalServerError, "internal server error")
	}
	return c.JSON(summary)
}

// GetOrder godoc
// @Summary Get a stored order
// @Description Returns one synchronized order with its line items.
// @Tags orders
// @Produce json
// @Param id path string true "Hood.de order ID"
// @Success 200 {object} domain.LocalOrder
// @Failure 404 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /orders/{id} [get]
func (h *SyncHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return server.Error(c, fiber.StatusNotFound, "order not found")
		}
		logger.Get().Error("Failed to get order", zap.Error(err))
		return server.Error(c, fiber.StatusInternalServerError, "internal server error")
	}
	return c.JSON(order)
}

// ListRuns godoc
// @Summary List sync runs
// @Description Returns the most recent sync runs first.
// @Tags orders
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} domain.SyncRun
// @Failure 500 {object} server.ErrorResponse
// @Router /sync-runs [get]
func (h *SyncHandler) ListRuns(c *fiber.Ctx) error {
	runs, err := h.service.ListRuns(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		logger.Get().Error("Failed to list sync runs", zap.Error(err))
		return server.Error(c, fiber.StatusInternalServerError, "internal server error")
	}
	return c.JSON(runs)
}
