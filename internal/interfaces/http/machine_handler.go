package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/application/usecase"
)

// MachineHandler rutas /api/truckers.
type MachineHandler struct {
	uc *usecase.MachineUseCase
}

// NewMachineHandler construye el handler.
func NewMachineHandler(uc *usecase.MachineUseCase) *MachineHandler {
	return &MachineHandler{uc: uc}
}

// Create godoc
// @Summary      Alta de máquina; devuelve su QR
// @Tags         truckers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateMachineRequest  true  "máquina"
// @Success      201   {object}  dto.CreateMachineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/truckers [post]
func (h *MachineHandler) Create(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	var in dto.CreateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), ownerID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/truckers?plate=
func (h *MachineHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), GetOwnerID(c), c.Query("plate"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/truckers/:id
func (h *MachineHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.uc.GetByID(c.Context(), GetOwnerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// AddCredit POST /api/truckers/:id/credits
func (h *MachineHandler) AddCredit(c *fiber.Ctx) error {
	var in dto.AddCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	credit, err := h.uc.AddCredit(c.Context(), GetOwnerID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(credit)
}

// ListCredits GET /api/truckers/:id/credits
func (h *MachineHandler) ListCredits(c *fiber.Ctx) error {
	list, err := h.uc.ListCredits(c.Context(), GetOwnerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreditsBilan GET /api/truckers/credits/bilan
func (h *MachineHandler) CreditsBilan(c *fiber.Ctx) error {
	out, err := h.uc.CreditsBilan(c.Context(), GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
