package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jefftricks/shamba-api/internal/application/analytics"
	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/application/inventory"
	"github.com/jefftricks/shamba-api/internal/application/reporting"
	"github.com/jefftricks/shamba-api/internal/domain"
)

// FunctionsHandler serves the function-style endpoints under /functions,
// keeping the original serverless contract: JSON in/out, CORS for any origin,
// {"error": ..., "success": false} on failure.
type FunctionsHandler struct {
	alerts     *inventory.AlertsUseCase
	bulkUpdate *inventory.BulkUpdateUseCase
	profitLoss *analytics.ProfitLossUseCase
	reports    *reporting.ReportUseCase
}

// NewFunctionsHandler builds the handler.
func NewFunctionsHandler(
	alerts *inventory.AlertsUseCase,
	bulkUpdate *inventory.BulkUpdateUseCase,
	profitLoss *analytics.ProfitLossUseCase,
	reports *reporting.ReportUseCase,
) *FunctionsHandler {
	return &FunctionsHandler{
		alerts:     alerts,
		bulkUpdate: bulkUpdate,
		profitLoss: profitLoss,
		reports:    reports,
	}
}

// InventoryAlerts godoc
// @Summary      Run the inventory alert sweep
// @Tags         functions
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  dto.FunctionError
// @Router       /functions/inventory-alerts [post]
func (h *FunctionsHandler) InventoryAlerts(c *fiber.Ctx) error {
	summary, err := h.alerts.Run(c.Context())
	if err != nil {
		return functionError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"alert_summary": summary,
	})
}

// BulkInventoryUpdate godoc
// @Summary      Apply partial updates to many inventory items
// @Tags         functions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUpdateRequest  true  "Updates and acting user"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.FunctionError
// @Failure      403  {object}  dto.FunctionError
// @Router       /functions/bulk-inventory-update [post]
func (h *FunctionsHandler) BulkInventoryUpdate(c *fiber.Ctx) error {
	var req dto.BulkUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FunctionError{Error: "Invalid request body", Success: false})
	}
	if req.Updates == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FunctionError{Error: "updates array is required", Success: false})
	}
	result, err := h.bulkUpdate.Run(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.FunctionError{Error: "Insufficient permissions for bulk updates", Success: false})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FunctionError{Error: "updates array is required", Success: false})
		}
		return functionError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"results": result,
	})
}

// CalculateProfitLoss godoc
// @Summary      Compute the profit & loss report
// @Tags         functions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProfitLossRequest  true  "Window and category filter"
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  dto.FunctionError
// @Router       /functions/calculate-profit-loss [post]
func (h *FunctionsHandler) CalculateProfitLoss(c *fiber.Ctx) error {
	var req dto.ProfitLossRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FunctionError{Error: "Invalid request body", Success: false})
	}
	report, err := h.profitLoss.Calculate(c.Context(), req)
	if err != nil {
		return functionError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":            true,
		"profit_loss_report": report,
	})
}

// GenerateFarmReport godoc
// @Summary      Generate and persist a farm report snapshot
// @Tags         functions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateReportRequest  true  "Report type and period"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.FunctionError
// @Failure      401  {object}  dto.FunctionError
// @Router       /functions/generate-farm-report [post]
func (h *FunctionsHandler) GenerateFarmReport(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.FunctionError{Error: "Unauthorized", Success: false})
	}
	var req dto.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FunctionError{Error: "Invalid request body", Success: false})
	}
	report, err := h.reports.Generate(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FunctionError{Error: "Invalid report type", Success: false})
		}
		return functionError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"report":  toReportResponse(report),
		"message": report.Title + " generated successfully",
	})
}

// functionError is the catch-all 500 of the function endpoints.
func functionError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("function endpoint failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.FunctionError{Error: err.Error(), Success: false})
}
