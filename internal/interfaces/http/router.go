package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/minegest-api/internal/application/analytics"
	"github.com/jhoicas/minegest-api/internal/application/auth"
	"github.com/jhoicas/minegest-api/internal/application/billing"
	"github.com/jhoicas/minegest-api/internal/application/gasoil"
	"github.com/jhoicas/minegest-api/internal/application/usecase"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	MachineUC     *usecase.MachineUseCase
	AttributionUC *gasoil.AttributionUseCase
	ResupplyUC    *usecase.ResupplyUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	InvoiceUC     *billing.InvoiceUseCase
	DashboardUC   *analytics.DashboardUseCase
	BilanUC       *analytics.BilanUseCase
	ExportUC      *analytics.ExportUseCase
	ActionUC      *usecase.ActionUseCase
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Locals(loggerKey, log)
		return c.Next()
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	api.Post("/admin/init", authHandler.InitAdmin)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	managerOnly := RequireRole(entity.RoleGestionnaire)

	protected.Get("/auth/me", authHandler.Me)

	users := protected.Group("/users", managerOnly)
	users.Get("/", authHandler.ListUsers)
	users.Post("/sellers", authHandler.AddSeller)
	users.Get("/sellers", authHandler.ListSellers)

	// Camiones y máquinas
	machineHandler := NewMachineHandler(deps.MachineUC)
	truckers := protected.Group("/truckers")
	truckers.Post("/", machineHandler.Create)
	truckers.Get("/", machineHandler.List)
	truckers.Get("/credits/bilan", machineHandler.CreditsBilan)
	truckers.Get("/:id", machineHandler.GetByID)
	truckers.Post("/:id/credits", machineHandler.AddCredit)
	truckers.Get("/:id/credits", machineHandler.ListCredits)

	// Gasoil
	gasoilHandler := NewGasoilHandler(deps.AttributionUC)
	gas := protected.Group("/gasoil")
	gas.Post("/attributions", gasoilHandler.Attribute)
	gas.Get("/attributions", gasoilHandler.List)
	gas.Delete("/attributions/:id", managerOnly, gasoilHandler.Delete)
	gas.Get("/stock", gasoilHandler.Stock)
	gas.Get("/caps/:plate", gasoilHandler.FuelCap)

	chrono := protected.Group("/chrono")
	chrono.Post("/", gasoilHandler.Chrono)
	chrono.Get("/", gasoilHandler.ListChrono)

	resupplyHandler := NewResupplyHandler(deps.ResupplyUC)
	appro := protected.Group("/approvisionnement")
	appro.Post("/", resupplyHandler.Create)
	appro.Get("/", resupplyHandler.List)
	appro.Delete("/:id", managerOnly, resupplyHandler.Delete)

	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	maintenance := protected.Group("/maintenance")
	maintenance.Post("/", maintenanceHandler.Create)
	maintenance.Get("/", maintenanceHandler.List)

	// Facturación
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	factures := protected.Group("/factures")
	factures.Post("/", invoiceHandler.Create)
	factures.Get("/", invoiceHandler.List)
	factures.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Tablero, bilans y exportaciones
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.BilanUC, deps.ExportUC)
	protected.Get("/dashboard", dashboardHandler.Get)
	protected.Post("/dashboard/compute", dashboardHandler.Compute)

	bilans := protected.Group("/bilans")
	bilans.Get("/gasoil", dashboardHandler.GasoilBilan)
	bilans.Get("/complet", dashboardHandler.BilanComplet)
	bilans.Get("/maintenance", dashboardHandler.MaintenanceBilan)

	exports := protected.Group("/exports")
	exports.Get("/daily", dashboardHandler.DailyReport)
	exports.Get("/daily.xlsx", dashboardHandler.ExportXLSX)

	// Journal de actividad
	actionHandler := NewActionHandler(deps.ActionUC)
	actions := protected.Group("/actions", managerOnly)
	actions.Get("/", actionHandler.List)
	actions.Get("/:username", actionHandler.List)
}
