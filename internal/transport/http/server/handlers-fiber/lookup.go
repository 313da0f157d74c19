package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/mapper"
)

// GetStatuses lists the task status lookup set.
func (h *Handler) GetStatuses(c *fiber.Ctx) error {
	ls, err := h.uc.Statuses(c.Context())
	if err != nil {
		h.log.Errorw("failed to list statuses", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToLookups(ls))
}

// GetPriorities lists the task priority lookup set.
func (h *Handler) GetPriorities(c *fiber.Ctx) error {
	ls, err := h.uc.Priorities(c.Context())
	if err != nil {
		h.log.Errorw("failed to list priorities", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToLookups(ls))
}

// GetRoles lists the membership role lookup set.
func (h *Handler) GetRoles(c *fiber.Ctx) error {
	ls, err := h.uc.Roles(c.Context())
	if err != nil {
		h.log.Errorw("failed to list roles", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToLookups(ls))
}
