package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jefftricks/shamba-api/internal/application/analytics"
	"github.com/jefftricks/shamba-api/internal/application/auth"
	"github.com/jefftricks/shamba-api/internal/application/inventory"
	"github.com/jefftricks/shamba-api/internal/application/reporting"
	"github.com/jefftricks/shamba-api/internal/application/usecase"
	infrapdf "github.com/jefftricks/shamba-api/internal/infrastructure/pdf"
	"github.com/jefftricks/shamba-api/internal/infrastructure/postgres"
	httpRouter "github.com/jefftricks/shamba-api/internal/interfaces/http"
	"github.com/jefftricks/shamba-api/internal/scheduler"
	"github.com/jefftricks/shamba-api/pkg/config"
	"github.com/jefftricks/shamba-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	livestockRepo := postgres.NewLivestockRepository(pool)
	cropRepo := postgres.NewCropRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	authUC := auth.NewUseCase(userRepo, profileRepo, cfg.JWT)
	saleUC := usecase.NewSaleUseCase(saleRepo)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	livestockUC := usecase.NewLivestockUseCase(livestockRepo)
	cropUC := usecase.NewCropUseCase(cropRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo)

	alertsUC := inventory.NewAlertsUseCase(inventoryRepo)
	bulkUC := inventory.NewBulkUpdateUseCase(inventoryRepo, profileRepo)
	profitLossUC := analytics.NewProfitLossUseCase(saleRepo, purchaseRepo)

	// PDF: printable rendition of a persisted report snapshot
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reporting.NewReportUseCase(
		reportRepo, inventoryRepo, saleRepo, purchaseRepo,
		livestockRepo, cropRepo, pdfGenerator,
	)

	sched, err := scheduler.New(cfg.Alerts, alertsUC)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler setup")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Shamba API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		SaleUC:       saleUC,
		PurchaseUC:   purchaseUC,
		InventoryUC:  inventoryUC,
		LivestockUC:  livestockUC,
		CropUC:       cropUC,
		TaskUC:       taskUC,
		ReportUC:     reportUC,
		AlertsUC:     alertsUC,
		BulkUC:       bulkUC,
		ProfitLossUC: profitLossUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	sched.Start()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
