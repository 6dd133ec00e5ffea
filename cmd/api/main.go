package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/jhoicas/minegest-api/internal/application/analytics"
	"github.com/jhoicas/minegest-api/internal/application/auth"
	"github.com/jhoicas/minegest-api/internal/application/billing"
	appgasoil "github.com/jhoicas/minegest-api/internal/application/gasoil"
	"github.com/jhoicas/minegest-api/internal/application/ports"
	"github.com/jhoicas/minegest-api/internal/application/usecase"
	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
	infrapdf "github.com/jhoicas/minegest-api/internal/infrastructure/pdf"
	"github.com/jhoicas/minegest-api/internal/infrastructure/postgres"
	"github.com/jhoicas/minegest-api/internal/infrastructure/qrcode"
	"github.com/jhoicas/minegest-api/internal/infrastructure/storage"
	"github.com/jhoicas/minegest-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/minegest-api/internal/interfaces/http"
	"github.com/jhoicas/minegest-api/pkg/config"
	"github.com/jhoicas/minegest-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	// .env opcional en desarrollo; las variables del entorno tienen prioridad.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	loc := time.Local
	if tz := strings.TrimSpace(cfg.Gasoil.Timezone); tz != "" && tz != "Local" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			log.Fatal().Err(err).Str("timezone", tz).Msg("zona horaria inválida")
		}
	}
	caps, err := gasoil.ParseFuelCaps(cfg.Gasoil.FuelCaps)
	if err != nil {
		log.Fatal().Err(err).Msg("FUEL_CAPS inválido")
	}

	var photos ports.PhotoStore
	switch cfg.Storage.Driver {
	case "s3":
		s3Store, err := storage.NewS3Store(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
		photos = s3Store
	default:
		photos = storage.NewLocalStore(cfg.Storage.UploadDir)
	}

	machineRepo := postgres.NewMachineRepository(pool)
	attributionRepo := postgres.NewAttributionRepository(pool)
	resupplyRepo := postgres.NewResupplyRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	actionRepo := postgres.NewActionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	repos := analytics.Repos{
		Machines:     machineRepo,
		Attributions: attributionRepo,
		Resupplies:   resupplyRepo,
		Maintenance:  maintenanceRepo,
	}

	authUC := auth.NewAuthUseCase(userRepo, actionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	machineUC := usecase.NewMachineUseCase(machineRepo, txRunner, qrcode.NewGenerator(256))
	attributionUC := appgasoil.NewAttributionUseCase(
		machineRepo, attributionRepo, resupplyRepo, txRunner, photos, caps, loc, log,
	)
	resupplyUC := usecase.NewResupplyUseCase(resupplyRepo)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo, txRunner)

	// PDF: facture de viajes con QR de verificación
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, machineRepo, infrapdf.NewMarotoPDFGenerator(), cfg.App.Name)

	dashboardUC := analytics.NewDashboardUseCase(repos, loc, log)
	bilanUC := analytics.NewBilanUseCase(repos)
	exportUC := analytics.NewExportUseCase(repos, xlsx.NewExporter(), loc)
	actionUC := usecase.NewActionUseCase(actionRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "MineGest API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		MachineUC:     machineUC,
		AttributionUC: attributionUC,
		ResupplyUC:    resupplyUC,
		MaintenanceUC: maintenanceUC,
		InvoiceUC:     invoiceUC,
		DashboardUC:   dashboardUC,
		BilanUC:       bilanUC,
		ExportUC:      exportUC,
		ActionUC:      actionUC,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
