package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/jefftricks/shamba-api/internal/application/analytics"
	"github.com/jefftricks/shamba-api/internal/application/auth"
	"github.com/jefftricks/shamba-api/internal/application/inventory"
	"github.com/jefftricks/shamba-api/internal/application/reporting"
	"github.com/jefftricks/shamba-api/internal/application/usecase"
)

// RouterDeps carries the wired use cases into the router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	SaleUC       *usecase.SaleUseCase
	PurchaseUC   *usecase.PurchaseUseCase
	InventoryUC  *usecase.InventoryUseCase
	LivestockUC  *usecase.LivestockUseCase
	CropUC       *usecase.CropUseCase
	TaskUC       *usecase.TaskUseCase
	ReportUC     *reporting.ReportUseCase
	AlertsUC     *inventory.AlertsUseCase
	BulkUC       *inventory.BulkUpdateUseCase
	ProfitLossUC *analytics.ProfitLossUseCase
	JWTSecret    string
}

// Router registers all API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected CRUD surface (Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)

	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/low-stock", inventoryHandler.ListLowStock)
	inv.Get("/:id", inventoryHandler.GetByID)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Delete("/:id", inventoryHandler.Delete)

	herd := protected.Group("/livestock")
	livestockHandler := NewLivestockHandler(deps.LivestockUC)
	herd.Post("/", livestockHandler.Create)
	herd.Get("/", livestockHandler.List)
	herd.Get("/:id", livestockHandler.GetByID)
	herd.Put("/:id", livestockHandler.Update)
	herd.Delete("/:id", livestockHandler.Delete)

	crops := protected.Group("/crops")
	cropHandler := NewCropHandler(deps.CropUC)
	crops.Post("/", cropHandler.Create)
	crops.Get("/", cropHandler.List)
	crops.Get("/:id", cropHandler.GetByID)
	crops.Put("/:id", cropHandler.Update)
	crops.Delete("/:id", cropHandler.Delete)

	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)

	// Reports are append-only: list/get/export only; creation goes through
	// POST /functions/generate-farm-report.
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.List)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Get("/:id/pdf", reportHandler.ExportPDF)

	// Function endpoints keep the original serverless contract: CORS open to
	// any origin, only generate-farm-report requires a Bearer token.
	functions := app.Group("/functions", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
	}))
	functionsHandler := NewFunctionsHandler(deps.AlertsUC, deps.BulkUC, deps.ProfitLossUC, deps.ReportUC)
	functions.Post("/inventory-alerts", functionsHandler.InventoryAlerts)
	functions.Post("/bulk-inventory-update", functionsHandler.BulkInventoryUpdate)
	functions.Post("/calculate-profit-loss", functionsHandler.CalculateProfitLoss)
	functions.Post("/generate-farm-report", AuthMiddleware(deps.JWTSecret), functionsHandler.GenerateFarmReport)
}
