package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/application/usecase"
)

// ResupplyHandler rutas /api/approvisionnement.
type ResupplyHandler struct {
	uc *usecase.ResupplyUseCase
}

// NewResupplyHandler construye el handler.
func NewResupplyHandler(uc *usecase.ResupplyUseCase) *ResupplyHandler {
	return &ResupplyHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un approvisionnement (montantTotal calculado)
// @Tags         approvisionnement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateResupplyRequest  true  "approvisionnement"
// @Success      201   {object}  dto.ResupplyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/approvisionnement [post]
func (h *ResupplyHandler) Create(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	var in dto.CreateResupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), ownerID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/approvisionnement?search=
func (h *ResupplyHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), GetOwnerID(c), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Delete DELETE /api/approvisionnement/:id (solo Gestionnaire)
func (h *ResupplyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetOwnerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "approvisionnement supprimé"})
}
