package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/minegest-api/internal/application/usecase"
)

// ActionHandler journal de actividad.
type ActionHandler struct {
	uc *usecase.ActionUseCase
}

// NewActionHandler construye el handler.
func NewActionHandler(uc *usecase.ActionUseCase) *ActionHandler {
	return &ActionHandler{uc: uc}
}

// List GET /api/actions/:username?limit= (solo Gestionnaire)
func (h *ActionHandler) List(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		username = GetUsername(c)
	}
	list, err := h.uc.ListByUsername(c.Context(), username, c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
