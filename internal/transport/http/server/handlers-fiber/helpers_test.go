package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/dto"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func testErrorStatus(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, aerr := app.Test(req)
	require.NoError(t, aerr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestWriteErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid_argument", entities.ErrInvalidArgument, http.StatusBadRequest},
		{"wrong_credential", entities.ErrWrongCredential, http.StatusUnauthorized},
		{"user_not_found", entities.ErrUserNotFound, http.StatusNotFound},
		{"project_not_found", entities.ErrProjectNotFound, http.StatusNotFound},
		{"task_not_found", entities.ErrTaskNotFound, http.StatusNotFound},
		{"email_exists", entities.ErrEmailExists, http.StatusConflict},
		{"store_unavailable", entities.ErrStoreUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := testErrorStatus(t, tc.err)
			require.Equal(t, tc.status, status)
			require.Equal(t, tc.err.Error(), body.Error)
		})
	}
}

func TestWriteErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	status, body := testErrorStatus(t, wrapped)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, wrapped.Error(), body.Error)
}

func TestWriteErrorUnknownHidesDetail(t *testing.T) {
	status, body := testErrorStatus(t, fmt.Errorf("pool exhausted"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "internal error", body.Error)
}

func TestActingUserParsing(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		acting, err := actingUser(c)
		if err != nil {
			return badRequest(c, err.Error())
		}
		if acting == nil {
			return c.SendString("admin")
		}
		return c.SendString(fmt.Sprintf("user %d", *acting))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?user_id=7", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?user_id=abc", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
