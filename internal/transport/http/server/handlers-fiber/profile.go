package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/dto"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/mapper"
)

// GetProfile returns the user aggregate with participation counts.
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	p, err := h.uc.Profile(c.Context(), id)
	if err != nil {
		h.log.Errorw("failed to get profile", "user_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToProfile(*p))
}

// PutProfile replaces the identity fields after re-checking email
// uniqueness against every other user.
func (h *Handler) PutProfile(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.UserUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	upd := entities.UserUpdate{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
	}
	if err := h.uc.UpdateProfile(c.Context(), id, upd); err != nil {
		h.log.Errorw("failed to update profile", "user_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "profile updated"})
}

// PutProfilePassword rotates the credential after verifying the old one.
func (h *Handler) PutProfilePassword(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.PasswordChangeRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	if err := h.uc.ChangePassword(c.Context(), id, body.OldPassword, body.NewPassword); err != nil {
		h.log.Errorw("failed to change password", "user_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "password updated"})
}

// GetProfileTasks lists the user's assigned tasks.
func (h *Handler) GetProfileTasks(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	tasks, err := h.uc.AssignedTasks(c.Context(), id)
	if err != nil {
		h.log.Errorw("failed to list assigned tasks", "user_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAssignedTasks(tasks))
}

// GetProfileProjects lists the projects the user is a member of.
func (h *Handler) GetProfileProjects(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	projects, err := h.uc.MemberProjects(c.Context(), id)
	if err != nil {
		h.log.Errorw("failed to list member projects", "user_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToMemberProjects(projects))
}
