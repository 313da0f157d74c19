package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/dto"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, entities.ErrWrongCredential):
		status = http.StatusUnauthorized
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrTaskNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entities.ErrEmailExists):
		status = http.StatusConflict
	case errors.Is(err, entities.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	default:
		msg = "internal error"
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}

// pathID parses a positive integer path parameter.
func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// actingUser reads the optional user_id query parameter that scopes list
// reads. Absent or empty means the unrestricted admin view; a malformed
// value is rejected rather than silently widened.
func actingUser(c *fiber.Ctx) (*int64, error) {
	raw := c.Query("user_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.New("invalid user_id")
	}
	return &id, nil
}
