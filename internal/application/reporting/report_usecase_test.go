package reporting

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

type fakeReportRepo struct {
	saved []*entity.Report
}

func (f *fakeReportRepo) Create(_ context.Context, r *entity.Report) error {
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeReportRepo) GetByID(_ context.Context, id string) (*entity.Report, error) {
	for _, r := range f.saved {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReportRepo) List(context.Context) ([]*entity.Report, error) { return f.saved, nil }

type fakeInvRepo struct{ items []*entity.InventoryItem }

func (f *fakeInvRepo) Create(context.Context, *entity.InventoryItem) error { return nil }
func (f *fakeInvRepo) GetByID(context.Context, string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (f *fakeInvRepo) List(context.Context) ([]*entity.InventoryItem, error) { return f.items, nil }
func (f *fakeInvRepo) Update(context.Context, *entity.InventoryItem) error   { return nil }
func (f *fakeInvRepo) UpdateFields(context.Context, string, map[string]any) (*entity.InventoryItem, error) {
	return nil, nil
}
func (f *fakeInvRepo) SetLocation(context.Context, string, string, time.Time) error { return nil }
func (f *fakeInvRepo) Delete(context.Context, string) error                         { return nil }

type fakeSaleRepo struct{ sales []*entity.Sale }

func (f *fakeSaleRepo) Create(context.Context, *entity.Sale) error            { return nil }
func (f *fakeSaleRepo) GetByID(context.Context, string) (*entity.Sale, error) { return nil, nil }
func (f *fakeSaleRepo) List(context.Context) ([]*entity.Sale, error)          { return f.sales, nil }
func (f *fakeSaleRepo) ListByPeriod(_ context.Context, start, end *time.Time, _ string) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0)
	for _, s := range f.sales {
		if start != nil && s.SaleDate.Before(*start) {
			continue
		}
		if end != nil && s.SaleDate.After(*end) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
func (f *fakeSaleRepo) Update(context.Context, *entity.Sale) error { return nil }
func (f *fakeSaleRepo) Delete(context.Context, string) error       { return nil }

type fakePurchaseRepo struct{ purchases []*entity.Purchase }

func (f *fakePurchaseRepo) Create(context.Context, *entity.Purchase) error { return nil }
func (f *fakePurchaseRepo) GetByID(context.Context, string) (*entity.Purchase, error) {
	return nil, nil
}
func (f *fakePurchaseRepo) List(context.Context) ([]*entity.Purchase, error) {
	return f.purchases, nil
}
func (f *fakePurchaseRepo) ListByPeriod(_ context.Context, start, end *time.Time, _ string) ([]*entity.Purchase, error) {
	out := make([]*entity.Purchase, 0)
	for _, p := range f.purchases {
		if start != nil && p.PurchaseDate.Before(*start) {
			continue
		}
		if end != nil && p.PurchaseDate.After(*end) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (f *fakePurchaseRepo) Update(context.Context, *entity.Purchase) error { return nil }
func (f *fakePurchaseRepo) Delete(context.Context, string) error           { return nil }

type fakeLivestockRepo struct{ herd []*entity.Livestock }

func (f *fakeLivestockRepo) Create(context.Context, *entity.Livestock) error { return nil }
func (f *fakeLivestockRepo) GetByID(context.Context, string) (*entity.Livestock, error) {
	return nil, nil
}
func (f *fakeLivestockRepo) List(context.Context) ([]*entity.Livestock, error) { return f.herd, nil }
func (f *fakeLivestockRepo) ListCreatedBetween(_ context.Context, start, end time.Time) ([]*entity.Livestock, error) {
	out := make([]*entity.Livestock, 0)
	for _, l := range f.herd {
		if l.CreatedAt.Before(start) || l.CreatedAt.After(end) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
func (f *fakeLivestockRepo) Update(context.Context, *entity.Livestock) error { return nil }
func (f *fakeLivestockRepo) Delete(context.Context, string) error            { return nil }

type fakeCropRepo struct{ crops []*entity.Crop }

func (f *fakeCropRepo) Create(context.Context, *entity.Crop) error            { return nil }
func (f *fakeCropRepo) GetByID(context.Context, string) (*entity.Crop, error) { return nil, nil }
func (f *fakeCropRepo) List(context.Context) ([]*entity.Crop, error)          { return f.crops, nil }
func (f *fakeCropRepo) Update(context.Context, *entity.Crop) error            { return nil }
func (f *fakeCropRepo) Delete(context.Context, string) error                  { return nil }

func newTestUseCase(
	reports *fakeReportRepo,
	inv *fakeInvRepo,
	sales *fakeSaleRepo,
	purchases *fakePurchaseRepo,
	herd *fakeLivestockRepo,
	crops *fakeCropRepo,
) *ReportUseCase {
	return NewReportUseCase(reports, inv, sales, purchases, herd, crops, nil)
}

func emptyUseCase(reports *fakeReportRepo) *ReportUseCase {
	return newTestUseCase(reports, &fakeInvRepo{}, &fakeSaleRepo{}, &fakePurchaseRepo{}, &fakeLivestockRepo{}, &fakeCropRepo{})
}

func mid(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.Local)
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	reports := &fakeReportRepo{}
	uc := emptyUseCase(reports)

	_, err := uc.Generate(context.Background(), "u1", dto.GenerateReportRequest{
		ReportType:  "weekly",
		PeriodStart: "2026-01-01",
		PeriodEnd:   "2026-01-31",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, reports.saved)
}

func TestGenerateRejectsBadPeriod(t *testing.T) {
	reports := &fakeReportRepo{}
	uc := emptyUseCase(reports)

	_, err := uc.Generate(context.Background(), "u1", dto.GenerateReportRequest{
		ReportType:  entity.ReportMonthly,
		PeriodStart: "January 2026",
		PeriodEnd:   "2026-01-31",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, reports.saved)
}

func TestGenerateInventorySummary(t *testing.T) {
	reports := &fakeReportRepo{}
	inv := &fakeInvRepo{items: []*entity.InventoryItem{
		{ID: "a", ItemName: "Fertilizer", Category: "inputs", Quantity: 100, MinThreshold: 10, UnitCost: decimal.NewFromInt(50)},
		{ID: "b", ItemName: "Dairy Meal", Category: "feed", Quantity: 2, MinThreshold: 10, UnitCost: decimal.NewFromInt(65)},
	}}
	purchases := &fakePurchaseRepo{purchases: []*entity.Purchase{
		{ID: "p1", ItemName: "Feed", Category: "feed", Quantity: 5, TotalCost: decimal.NewFromInt(300), PurchaseDate: mid(2026, time.June, 10)},
		{ID: "p2", ItemName: "Old", Category: "feed", Quantity: 5, TotalCost: decimal.NewFromInt(100), PurchaseDate: mid(2025, time.June, 10)},
	}}
	uc := newTestUseCase(reports, inv, &fakeSaleRepo{}, purchases, &fakeLivestockRepo{}, &fakeCropRepo{})

	report, err := uc.Generate(context.Background(), "u1", dto.GenerateReportRequest{
		ReportType:  entity.ReportInventorySummary,
		PeriodStart: "2026-06-01",
		PeriodEnd:   "2026-06-30",
	})
	require.NoError(t, err)
	require.Len(t, reports.saved, 1)
	assert.Contains(t, report.Title, "Inventory Summary Report (")
	assert.Equal(t, "u1", report.CreatedBy)

	var content inventorySummaryContent
	require.NoError(t, json.Unmarshal(report.Content, &content))
	assert.Equal(t, 2, content.Summary.TotalItems)
	assert.Equal(t, 1, content.Summary.LowStockItems)
	assert.Equal(t, "5130", content.Summary.TotalInventoryValue.String())
	require.Len(t, content.LowStockAlert, 1)
	assert.Equal(t, "b", content.LowStockAlert[0].ID)
	require.Len(t, content.RecentPurchases, 1)
	assert.Equal(t, "p1", content.RecentPurchases[0].ID)
	assert.Len(t, content.InventoryByCategory["feed"], 1)
	assert.Len(t, content.InventoryByCategory["inputs"], 1)
}

func TestGenerateSalesSummary(t *testing.T) {
	reports := &fakeReportRepo{}
	sales := &fakeSaleRepo{sales: []*entity.Sale{
		{ID: "s1", ProductName: "Maize", Quantity: 100, TotalAmount: decimal.NewFromInt(3000), SaleDate: mid(2026, time.June, 5)},
		{ID: "s2", ProductName: "Maize", Quantity: 50, TotalAmount: decimal.NewFromInt(1500), SaleDate: mid(2026, time.June, 20)},
		{ID: "s3", ProductName: "Eggs", Quantity: 30, TotalAmount: decimal.NewFromInt(450), SaleDate: mid(2026, time.June, 21)},
	}}
	uc := newTestUseCase(reports, &fakeInvRepo{}, sales, &fakePurchaseRepo{}, &fakeLivestockRepo{}, &fakeCropRepo{})

	report, err := uc.Generate(context.Background(), "u1", dto.GenerateReportRequest{
		ReportType:  entity.ReportSalesSummary,
		PeriodStart: "2026-06-01",
		PeriodEnd:   "2026-06-30",
	})
	require.NoError(t, err)

	var content salesSummaryContent
	require.NoError(t, json.Unmarshal(report.Content, &content))
	assert.Equal(t, 3, content.Summary.TotalSales)
	assert.Equal(t, "4950", content.Summary.TotalRevenue.String())
	assert.Equal(t, float64(180), content.Summary.TotalQuantitySold)
	assert.Equal(t, "1650", content.Summary.AverageSaleValue.String())

	maize := content.SalesByProduct["Maize"]
	require.NotNil(t, maize)
	assert.Equal(t, float64(150), maize.Quantity)
	assert.Equal(t, "4500", maize.Revenue.String())
	assert.Equal(t, 2, maize.Sales)
	assert.Len(t, content.RecentSales, 3)
}

func TestGenerateLivestockStatus(t *testing.T) {
	reports := &fakeReportRepo{}
	herd := &fakeLivestockRepo{herd: []*entity.Livestock{
		{ID: "l1", Type: "cattle", HealthStatus: entity.HealthHealthy, CreatedAt: mid(2025, time.March, 1)},
		{ID: "l2", Type: "cattle", HealthStatus: entity.HealthSick, CreatedAt: mid(2026, time.June, 10)},
		{ID: "l3", Type: "goat", HealthStatus: entity.HealthHealthy, CreatedAt: mid(2026, time.June, 12)},
	}}
	uc := newTestUseCase(reports, &fakeInvRepo{}, &fakeSaleRepo{}, &fakePurchaseRepo{}, herd, &fakeCropRepo{})

	report, err := uc.Generate(context.Background(), "u1", dto.GenerateReportRequest{
		ReportType:  entity.ReportLivestockStatus,
		PeriodStart: "2026-06-01",
		PeriodEnd:   "2026-06-30",
	})
	require.NoError(t, err)

	var content livestockStatusContent
	require.NoError(t, json.Unmarshal(report.Content, &content))
	assert.Equal(t, 3, content.Summary.TotalLivestock)
	assert.Equal(t, 2, content.Summary.NewLivestockInPeriod)
	assert.Equal(t, 2, content.Summary.HealthyCount)
	assert.Equal(t, 1, content.Summary.SickCount)
	assert.Len(t, content.LivestockByType["cattle"], 2)
	assert.Len(t, content.LivestockByType["goat"], 1)
	assert.Equal(t, 2, content.HealthStatus[entity.HealthHealthy])
}

func TestGenerateCompositeFarmReport(t *testing.T) {
	reports := &fakeReportRepo{}
	inv := &fakeInvRepo{items: []*entity.InventoryItem{
		{ID: "a", ItemName: "Fertilizer", Category: "inputs", Quantity: 10, UnitCost: decimal.NewFromInt(50)},
	}}
	sales := &fakeSaleRepo{sales: []*entity.Sale{
		{ID: "s1", ProductName: "Milk", Quantity: 200, TotalAmount: decimal.NewFromInt(10000), SaleDate: mid(2026, time.April, 2)},
	}}
	purchases := &fakePurchaseRepo{purchases: []*entity.Purchase{
		{ID: "p1", ItemName: "Feed", Category: "feed", TotalCost: decimal.NewFromInt(4000), PurchaseDate: mid(2026, time.April, 5)},
	}}
	herd := &fakeLivestockRepo{herd: []*entity.Livestock{
		{ID: "l1", Type: "cattle", HealthStatus: entity.HealthHealthy},
	}}
	crops := &fakeCropRepo{crops: []*entity.Crop{
		{ID: "c1", Type: "maize", Status: entity.CropGrowing},
		{ID: "c2", Type: "maize", Status: entity.CropHarvested},
	}}
	uc := newTestUseCase(reports, inv, sales, purchases, herd, crops)

	report, err := uc.Generate(context.Background(), "u1", dto.GenerateReportRequest{
		ReportType:  entity.ReportQuarterly,
		PeriodStart: "2026-04-01",
		PeriodEnd:   "2026-06-30",
	})
	require.NoError(t, err)
	assert.Contains(t, report.Title, "Quarterly Farm Report (")

	var content farmReportContent
	require.NoError(t, json.Unmarshal(report.Content, &content))
	assert.Equal(t, "10000", content.Summary.Revenue.String())
	assert.Equal(t, "4000", content.Summary.Expenses.String())
	assert.Equal(t, "6000", content.Summary.Profit.String())
	assert.Equal(t, 1, content.Summary.TotalLivestock)
	assert.Equal(t, 2, content.Summary.TotalCrops)
	assert.Equal(t, 1, content.Summary.InventoryItems)
	assert.Equal(t, 2, content.Crops.ByType["maize"])
	assert.Equal(t, 1, content.Crops.ByStatus[entity.CropGrowing])
	assert.Equal(t, 1, content.Purchases.ByCategory["feed"].Count)
}

func TestReportsAreAppendOnly(t *testing.T) {
	reports := &fakeReportRepo{}
	uc := emptyUseCase(reports)

	for i := 0; i < 2; i++ {
		_, err := uc.Generate(context.Background(), "u1", dto.GenerateReportRequest{
			ReportType:  entity.ReportMonthly,
			PeriodStart: "2026-06-01",
			PeriodEnd:   "2026-06-30",
		})
		require.NoError(t, err)
	}

	assert.Len(t, reports.saved, 2)
	assert.NotEqual(t, reports.saved[0].ID, reports.saved[1].ID)
}
