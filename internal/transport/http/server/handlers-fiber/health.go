package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/dto"
)

// GetHealth probes the store and reports reachability.
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	if err := h.uc.Health(c.Context()); err != nil {
		h.log.Errorw("health check failed", "error", err.Error())
		return c.Status(http.StatusServiceUnavailable).JSON(dto.HealthResponse{
			Status:   "degraded",
			Database: "unreachable",
		})
	}
	return c.Status(http.StatusOK).JSON(dto.HealthResponse{
		Status:   "ok",
		Database: "reachable",
	})
}
