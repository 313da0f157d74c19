package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/mapper"
)

// GetTeam returns the roster of users sharing at least one project with
// the acting user; without user_id every user with a membership row is
// returned.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	acting, err := actingUser(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	members, err := h.uc.ListTeam(c.Context(), acting)
	if err != nil {
		h.log.Errorw("failed to list team", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeamMembers(members))
}
