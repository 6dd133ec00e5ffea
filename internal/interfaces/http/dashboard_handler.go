package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/minegest-api/internal/application/analytics"
	"github.com/jhoicas/minegest-api/internal/application/dto"
)

// DashboardHandler tablero, bilans y exportaciones.
type DashboardHandler struct {
	dashboard *analytics.DashboardUseCase
	bilans    *analytics.BilanUseCase
	exports   *analytics.ExportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard *analytics.DashboardUseCase, bilans *analytics.BilanUseCase, exports *analytics.ExportUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, bilans: bilans, exports: exports}
}

// Get godoc
// @Summary      Tablero de gasoil del día
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        date  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200   {object}  gasoil.Dashboard
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	out, err := h.dashboard.GetDashboard(c.Context(), ownerID, c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Compute godoc
// @Summary      Tablero sobre un snapshot externo
// @Description  Valores no numéricos cuentan 0 y fechas ilegibles quedan fuera de los filtros diarios.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ComputeDashboardRequest  true  "snapshot"
// @Success      200   {object}  gasoil.Dashboard
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard/compute [post]
func (h *DashboardHandler) Compute(c *fiber.Ctx) error {
	var in dto.ComputeDashboardRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.dashboard.Compute(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GasoilBilan GET /api/bilans/gasoil
func (h *DashboardHandler) GasoilBilan(c *fiber.Ctx) error {
	out, err := h.bilans.Gasoil(c.Context(), GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BilanComplet GET /api/bilans/complet
func (h *DashboardHandler) BilanComplet(c *fiber.Ctx) error {
	out, err := h.bilans.Complet(c.Context(), GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MaintenanceBilan GET /api/bilans/maintenance
func (h *DashboardHandler) MaintenanceBilan(c *fiber.Ctx) error {
	out, err := h.bilans.Maintenance(c.Context(), GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DailyReport GET /api/exports/daily?date=
func (h *DashboardHandler) DailyReport(c *fiber.Ctx) error {
	out, err := h.exports.DailyReport(c.Context(), GetOwnerID(c), c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportXLSX GET /api/exports/daily.xlsx?date=
func (h *DashboardHandler) ExportXLSX(c *fiber.Ctx) error {
	data, filename, err := h.exports.ExportXLSX(c.Context(), GetOwnerID(c), c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
