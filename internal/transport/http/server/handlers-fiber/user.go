package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/dto"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/mapper"
)

// GetUsers lists every user with the membership role label. The listing is
// not deduplicated: a user appears once per project membership.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeamMembers(users))
}

// GetUser returns a single user by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	usr, err := h.uc.User(c.Context(), id)
	if err != nil {
		h.log.Errorw("failed to get user", "user_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToUser(*usr))
}

// PostUser creates a user through the admin surface.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	id, err := h.uc.CreateUser(c.Context(), body.FirstName, body.LastName, body.Email, body.Password)
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.CreateResponse{Message: "user created", ID: id})
}

// PutUser replaces the identity fields of a user.
func (h *Handler) PutUser(c *fiber.Ctx) error {
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
	if err := h.uc.UpdateUser(c.Context(), id, upd); err != nil {
		h.log.Errorw("failed to update user", "user_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "user updated"})
}

// DeleteUser removes a user. Deleting an absent user succeeds.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteUser(c.Context(), id); err != nil {
		h.log.Errorw("failed to delete user", "user_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "user deleted"})
}
