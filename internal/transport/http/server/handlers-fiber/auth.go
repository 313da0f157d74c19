package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/dto"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/mapper"
)

// PostRegister creates a user from a self-registration request.
func (h *Handler) PostRegister(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	id, err := h.uc.Register(c.Context(), body.FirstName, body.LastName, body.Email, body.Password)
	if err != nil {
		h.log.Errorw("failed to register user", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Message   string `json:"message"`
		ID        int64  `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
	}{
		Message:   "user registered",
		ID:        id,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// PostLogin verifies credentials and returns the user without its digest.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	usr, err := h.uc.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		h.log.Errorw("failed to log in", "email", body.Email, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.LoginResponse{
		Message: "login successful",
		User:    mapper.ToUser(*usr),
	})
}
