package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/application/gasoil"
)

// GasoilHandler entregas de gasoil (/api/gasoil/attributions) y sesiones chrono (/api/chrono).
type GasoilHandler struct {
	uc *gasoil.AttributionUseCase
}

// NewGasoilHandler construye el handler.
func NewGasoilHandler(uc *gasoil.AttributionUseCase) *GasoilHandler {
	return &GasoilHandler{uc: uc}
}

// Attribute godoc
// @Summary      Entregar litros a una máquina
// @Description  Rechaza la entrega si supera el tope de la máquina o el stock restante.
// @Tags         gasoil
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateAttributionRequest  true  "entrega"
// @Success      201   {object}  dto.CreateAttributionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/gasoil/attributions [post]
func (h *GasoilHandler) Attribute(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	var in dto.CreateAttributionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Attribute(c.Context(), ownerID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Chrono godoc
// @Summary      Registrar una sesión chrono cerrada
// @Tags         chrono
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateChronoRequest  true  "sesión"
// @Success      201   {object}  dto.AttributionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chrono [post]
func (h *GasoilHandler) Chrono(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	var in dto.CreateChronoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Chrono(c.Context(), ownerID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/gasoil/attributions?kind=attribution|chrono
func (h *GasoilHandler) List(c *fiber.Ctx) error {
	kind := c.Query("kind")
	if kind != "" && kind != "attribution" && kind != "chrono" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind doit être attribution ou chrono"})
	}
	list, err := h.uc.List(c.Context(), GetOwnerID(c), kind)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListChrono GET /api/chrono
func (h *GasoilHandler) ListChrono(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), GetOwnerID(c), "chrono")
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Delete DELETE /api/gasoil/attributions/:id (solo Gestionnaire)
func (h *GasoilHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetOwnerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "attribution supprimée"})
}

// Stock GET /api/gasoil/stock
func (h *GasoilHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.RemainingStock(c.Context(), GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FuelCap GET /api/gasoil/caps/:plate
func (h *GasoilHandler) FuelCap(c *fiber.Ctx) error {
	plate := c.Params("plate")
	limit, ok := h.uc.FuelCap(plate)
	if !ok {
		return c.JSON(fiber.Map{"truckPlate": plate, "limit": nil})
	}
	return c.JSON(fiber.Map{"truckPlate": plate, "limit": limit})
}
