package handler

import (
	"hood-sync/internal/features/hood/ports"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler exposes the Hood.de connection probe.
type HealthHandler struct {
	probe ports.ConnectionProbe
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(probe ports.ConnectionProbe) *HealthHandler {
	return &HealthHandler{
		probe: probe,
	}
}

// Health godoc
// @Summary Hood.de connectivity
// @Description Sends a root categoriesBrowse and reports whether the API answered with categories.
// @Tags health
// @Produce json
// @Success 200 {object} domain.ConnectionStatus
// @Failure 503 {object} domain.ConnectionStatus
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := h.probe.CheckConnection(c.UserContext())
	if !status.Connected {
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	return c.JSON(status)
}
