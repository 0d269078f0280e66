// Package reporting assembles and persists farm report snapshots.
package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/internal/domain/repository"
)

// titleLayout renders period bounds inside report titles.
const titleLayout = "Mon Jan 02 2006"

// PDFGenerator renders a persisted report snapshot as a PDF document.
type PDFGenerator interface {
	Render(report *entity.Report) ([]byte, error)
}

// ReportUseCase builds type-specific report payloads from the current store
// state and persists each one as an append-only Report row. There is no
// update path; regenerating a report creates a new row.
type ReportUseCase struct {
	reportRepo    repository.ReportRepository
	invRepo       repository.InventoryRepository
	saleRepo      repository.SaleRepository
	purchaseRepo  repository.PurchaseRepository
	livestockRepo repository.LivestockRepository
	cropRepo      repository.CropRepository
	pdf           PDFGenerator
}

// NewReportUseCase builds the use case. pdf may be nil if PDF export is not
// wired (ExportPDF then fails with ErrInvalidInput).
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	invRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	livestockRepo repository.LivestockRepository,
	cropRepo repository.CropRepository,
	pdf PDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:    reportRepo,
		invRepo:       invRepo,
		saleRepo:      saleRepo,
		purchaseRepo:  purchaseRepo,
		livestockRepo: livestockRepo,
		cropRepo:      cropRepo,
		pdf:           pdf,
	}
}

// Generate validates the request, assembles the payload for the requested
// type, and persists the snapshot. An unknown type or unparseable period
// yields ErrInvalidInput with nothing persisted.
func (uc *ReportUseCase) Generate(ctx context.Context, userID string, req dto.GenerateReportRequest) (*entity.Report, error) {
	if !entity.ValidReportType(req.ReportType) {
		return nil, domain.ErrInvalidInput
	}
	start, err := parsePeriodDate(req.PeriodStart)
	if err != nil {
		return nil, err
	}
	end, err := parsePeriodDate(req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	var (
		title   string
		content any
	)
	switch req.ReportType {
	case entity.ReportInventorySummary:
		title = fmt.Sprintf("Inventory Summary Report (%s - %s)", start.Format(titleLayout), end.Format(titleLayout))
		content, err = uc.buildInventorySummary(ctx, start, end)
	case entity.ReportSalesSummary:
		title = fmt.Sprintf("Sales Summary Report (%s - %s)", start.Format(titleLayout), end.Format(titleLayout))
		content, err = uc.buildSalesSummary(ctx, start, end)
	case entity.ReportLivestockStatus:
		title = fmt.Sprintf("Livestock Status Report (%s - %s)", start.Format(titleLayout), end.Format(titleLayout))
		content, err = uc.buildLivestockStatus(ctx, start, end)
	default: // monthly, quarterly, annual
		title = fmt.Sprintf("%s Farm Report (%s - %s)", capitalize(req.ReportType), start.Format(titleLayout), end.Format(titleLayout))
		content, err = uc.buildFarmReport(ctx, start, end)
	}
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("report: marshal content: %w", err)
	}

	report := &entity.Report{
		ID:          uuid.New().String(),
		ReportType:  req.ReportType,
		Title:       title,
		Content:     raw,
		PeriodStart: start,
		PeriodEnd:   end,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("report: save: %w", err)
	}

	log.Info().
		Str("report_id", report.ID).
		Str("report_type", report.ReportType).
		Str("created_by", userID).
		Msg("farm report generated")
	return report, nil
}

// Get returns one persisted report or ErrNotFound.
func (uc *ReportUseCase) Get(ctx context.Context, id string) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	return report, nil
}

// List returns all persisted reports.
func (uc *ReportUseCase) List(ctx context.Context) ([]*entity.Report, error) {
	return uc.reportRepo.List(ctx)
}

// ExportPDF renders a persisted report as a PDF document.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrInvalidInput
	}
	report, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Render(report)
}

func (uc *ReportUseCase) buildInventorySummary(ctx context.Context, start, end time.Time) (*inventorySummaryContent, error) {
	items, err := uc.invRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: fetch inventory: %w", err)
	}
	purchases, err := uc.purchaseRepo.ListByPeriod(ctx, &start, &end, "")
	if err != nil {
		return nil, fmt.Errorf("report: fetch purchases: %w", err)
	}

	content := &inventorySummaryContent{
		LowStockAlert:       make([]inventoryRow, 0),
		RecentPurchases:     make([]purchaseRow, 0, len(purchases)),
		InventoryByCategory: make(map[string][]inventoryRow),
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Value())
		if item.IsLowStock() {
			content.LowStockAlert = append(content.LowStockAlert, toInventoryRow(item))
		}
		content.InventoryByCategory[item.Category] = append(content.InventoryByCategory[item.Category], toInventoryRow(item))
	}
	for _, p := range purchases {
		content.RecentPurchases = append(content.RecentPurchases, toPurchaseRow(p))
	}

	content.Summary.TotalItems = len(items)
	content.Summary.LowStockItems = len(content.LowStockAlert)
	content.Summary.TotalInventoryValue = total
	return content, nil
}

func (uc *ReportUseCase) buildSalesSummary(ctx context.Context, start, end time.Time) (*salesSummaryContent, error) {
	sales, err := uc.saleRepo.ListByPeriod(ctx, &start, &end, "")
	if err != nil {
		return nil, fmt.Errorf("report: fetch sales: %w", err)
	}

	content := &salesSummaryContent{
		SalesByProduct: make(map[string]*productTally),
		RecentSales:    make([]saleRow, 0, len(sales)),
	}
	var revenue decimal.Decimal
	var quantity float64
	for _, s := range sales {
		revenue = revenue.Add(s.TotalAmount)
		quantity += s.Quantity

		tally, ok := content.SalesByProduct[s.ProductName]
		if !ok {
			tally = &productTally{}
			content.SalesByProduct[s.ProductName] = tally
		}
		tally.Quantity += s.Quantity
		tally.Revenue = tally.Revenue.Add(s.TotalAmount)
		tally.Sales++

		content.RecentSales = append(content.RecentSales, toSaleRow(s))
	}

	content.Summary.TotalSales = len(sales)
	content.Summary.TotalRevenue = revenue
	content.Summary.TotalQuantitySold = quantity
	if len(sales) > 0 {
		content.Summary.AverageSaleValue = revenue.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
	}
	return content, nil
}

func (uc *ReportUseCase) buildLivestockStatus(ctx context.Context, start, end time.Time) (*livestockStatusContent, error) {
	herd, err := uc.livestockRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: fetch livestock: %w", err)
	}
	additions, err := uc.livestockRepo.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("report: fetch new livestock: %w", err)
	}

	content := &livestockStatusContent{
		LivestockByType: make(map[string][]livestockRow),
		HealthStatus:    make(map[string]int),
		NewLivestock:    make([]livestockRow, 0, len(additions)),
	}
	for _, animal := range herd {
		content.LivestockByType[animal.Type] = append(content.LivestockByType[animal.Type], toLivestockRow(animal))
		content.HealthStatus[animal.HealthStatus]++
	}
	for _, animal := range additions {
		content.NewLivestock = append(content.NewLivestock, toLivestockRow(animal))
	}

	content.Summary.TotalLivestock = len(herd)
	content.Summary.NewLivestockInPeriod = len(additions)
	content.Summary.HealthyCount = content.HealthStatus[entity.HealthHealthy]
	content.Summary.SickCount = content.HealthStatus[entity.HealthSick]
	return content, nil
}

func (uc *ReportUseCase) buildFarmReport(ctx context.Context, start, end time.Time) (*farmReportContent, error) {
	items, err := uc.invRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: fetch inventory: %w", err)
	}
	sales, err := uc.saleRepo.ListByPeriod(ctx, &start, &end, "")
	if err != nil {
		return nil, fmt.Errorf("report: fetch sales: %w", err)
	}
	purchases, err := uc.purchaseRepo.ListByPeriod(ctx, &start, &end, "")
	if err != nil {
		return nil, fmt.Errorf("report: fetch purchases: %w", err)
	}
	herd, err := uc.livestockRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: fetch livestock: %w", err)
	}
	crops, err := uc.cropRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: fetch crops: %w", err)
	}

	content := &farmReportContent{}
	content.Sales.TopProducts = make(map[string]*productVolume)
	content.Purchases.ByCategory = make(map[string]*categorySpend)
	content.Livestock.ByType = make(map[string]int)
	content.Livestock.HealthStatus = make(map[string]int)
	content.Crops.ByType = make(map[string]int)
	content.Crops.ByStatus = make(map[string]int)

	var revenue, expenses decimal.Decimal
	for _, s := range sales {
		revenue = revenue.Add(s.TotalAmount)
		vol, ok := content.Sales.TopProducts[s.ProductName]
		if !ok {
			vol = &productVolume{}
			content.Sales.TopProducts[s.ProductName] = vol
		}
		vol.Quantity += s.Quantity
		vol.Revenue = vol.Revenue.Add(s.TotalAmount)
	}
	for _, p := range purchases {
		expenses = expenses.Add(p.TotalCost)
		spend, ok := content.Purchases.ByCategory[p.Category]
		if !ok {
			spend = &categorySpend{}
			content.Purchases.ByCategory[p.Category] = spend
		}
		spend.Count++
		spend.Cost = spend.Cost.Add(p.TotalCost)
	}
	for _, animal := range herd {
		content.Livestock.ByType[animal.Type]++
		content.Livestock.HealthStatus[animal.HealthStatus]++
	}
	for _, crop := range crops {
		content.Crops.ByType[crop.Type]++
		content.Crops.ByStatus[crop.Status]++
	}

	content.Summary.Period = fmt.Sprintf("%s - %s", start.Format(titleLayout), end.Format(titleLayout))
	content.Summary.Revenue = revenue
	content.Summary.Expenses = expenses
	content.Summary.Profit = revenue.Sub(expenses)
	content.Summary.TotalLivestock = len(herd)
	content.Summary.TotalCrops = len(crops)
	content.Summary.InventoryItems = len(items)

	content.Sales.TotalSales = len(sales)
	content.Sales.Revenue = revenue
	content.Purchases.TotalPurchases = len(purchases)
	content.Purchases.TotalCost = expenses
	content.Livestock.Total = len(herd)
	content.Crops.Total = len(crops)
	return content, nil
}

func parsePeriodDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidInput
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
