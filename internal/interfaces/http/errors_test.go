package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/domain"
)

func respondWith(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return respondError(c, err) })
	resp, testErr := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, testErr)
	defer resp.Body.Close()
	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestRespondError_InternoNoExponeDetalle(t *testing.T) {
	status, out := respondWith(t, errors.New(`get machine: ERROR: invalid input syntax for type uuid: "abc" (SQLSTATE 22P02)`))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", out.Code)
	assert.NotContains(t, out.Message, "SQLSTATE")
	assert.NotContains(t, out.Message, "uuid")
}

func TestRespondError_ErrorDeDominio(t *testing.T) {
	status, out := respondWith(t, fmt.Errorf("%w : machine LT-9", domain.ErrNotFound))
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", out.Code)
	assert.Contains(t, out.Message, "LT-9")
}
