package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/application/reporting"
)

// ReportHandler exposes the persisted report snapshots (protected, read-only;
// generation goes through the function endpoint).
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// List godoc
// @Summary      List reports
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReportResponse
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	reports, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, toReportResponse(r))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a report
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Report ID"
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [get]
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	report, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toReportResponse(report))
}

// ExportPDF godoc
// @Summary      Download a report as PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Report ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.uc.ExportPDF(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="report.pdf"`)
	return c.Send(data)
}
