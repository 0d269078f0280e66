package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

type fakeSaleRepo struct {
	sales []*entity.Sale
	err   error
}

func (f *fakeSaleRepo) Create(context.Context, *entity.Sale) error          { return nil }
func (f *fakeSaleRepo) GetByID(context.Context, string) (*entity.Sale, error) { return nil, nil }
func (f *fakeSaleRepo) List(context.Context) ([]*entity.Sale, error)        { return f.sales, f.err }
func (f *fakeSaleRepo) Update(context.Context, *entity.Sale) error          { return nil }
func (f *fakeSaleRepo) Delete(context.Context, string) error                { return nil }

func (f *fakeSaleRepo) ListByPeriod(_ context.Context, start, end *time.Time, category string) ([]*entity.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Sale, 0)
	for _, s := range f.sales {
		if start != nil && s.SaleDate.Before(*start) {
			continue
		}
		if end != nil && s.SaleDate.After(*end) {
			continue
		}
		if category != "" && s.ProductType != category {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakePurchaseRepo struct {
	purchases []*entity.Purchase
	err       error
}

func (f *fakePurchaseRepo) Create(context.Context, *entity.Purchase) error { return nil }
func (f *fakePurchaseRepo) GetByID(context.Context, string) (*entity.Purchase, error) {
	return nil, nil
}
func (f *fakePurchaseRepo) List(context.Context) ([]*entity.Purchase, error) {
	return f.purchases, f.err
}
func (f *fakePurchaseRepo) Update(context.Context, *entity.Purchase) error { return nil }
func (f *fakePurchaseRepo) Delete(context.Context, string) error           { return nil }

func (f *fakePurchaseRepo) ListByPeriod(_ context.Context, start, end *time.Time, category string) ([]*entity.Purchase, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Purchase, 0)
	for _, p := range f.purchases {
		if start != nil && p.PurchaseDate.Before(*start) {
			continue
		}
		if end != nil && p.PurchaseDate.After(*end) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func sale(product, category string, qty float64, unitPrice float64, date time.Time, status string) *entity.Sale {
	s := &entity.Sale{
		ProductName:   product,
		ProductType:   category,
		Quantity:      qty,
		UnitPrice:     decimal.NewFromFloat(unitPrice),
		SaleDate:      date,
		PaymentStatus: status,
	}
	s.RecomputeTotal()
	return s
}

func purchase(item, category string, qty float64, unitCost float64, date time.Time, status string) *entity.Purchase {
	p := &entity.Purchase{
		ItemName:      item,
		Category:      category,
		Quantity:      qty,
		UnitCost:      decimal.NewFromFloat(unitCost),
		PurchaseDate:  date,
		PaymentStatus: status,
	}
	p.RecomputeTotal()
	return p
}

func TestCalculateSummary(t *testing.T) {
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		sale("Maize", "crops", 100, 1, day(2026, time.March, 5), entity.PaymentPaid),
		sale("Eggs", "poultry", 50, 1, day(2026, time.March, 20), entity.PaymentPending),
	}}
	purchaseRepo := &fakePurchaseRepo{purchases: []*entity.Purchase{
		purchase("Feed", "feed", 40, 1, day(2026, time.March, 10), entity.PaymentPaid),
	}}

	uc := NewProfitLossUseCase(saleRepo, purchaseRepo)
	report, err := uc.Calculate(context.Background(), dto.ProfitLossRequest{UserID: "user-1"})
	require.NoError(t, err)

	s := report.Summary
	assert.Equal(t, "150", s.TotalRevenue.String())
	assert.Equal(t, "100", s.PaidRevenue.String())
	assert.Equal(t, "40", s.TotalCosts.String())
	assert.Equal(t, "40", s.PaidCosts.String())
	assert.Equal(t, "110", s.GrossProfit.String())
	assert.Equal(t, "60", s.NetProfit.String())
	assert.Equal(t, "73.33", s.ProfitMarginPercent.String())
	assert.Equal(t, 2, s.TotalSalesTransactions)
	assert.Equal(t, 1, s.TotalPurchaseTransactions)
	assert.Equal(t, "All Categories", s.Category)
	assert.Equal(t, "user-1", report.GeneratedBy)
}

func TestCalculateZeroRevenueMargin(t *testing.T) {
	saleRepo := &fakeSaleRepo{}
	purchaseRepo := &fakePurchaseRepo{purchases: []*entity.Purchase{
		purchase("Feed", "feed", 5, 10, day(2026, time.January, 3), entity.PaymentPaid),
	}}

	uc := NewProfitLossUseCase(saleRepo, purchaseRepo)
	report, err := uc.Calculate(context.Background(), dto.ProfitLossRequest{})
	require.NoError(t, err)

	assert.True(t, report.Summary.ProfitMarginPercent.IsZero())
	assert.Equal(t, "-50", report.Summary.GrossProfit.String())
}

func TestCalculateMonthlyTrends(t *testing.T) {
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		sale("Milk", "dairy", 10, 5, day(2026, time.January, 8), entity.PaymentPaid),
		sale("Milk", "dairy", 10, 5, day(2026, time.March, 8), entity.PaymentPaid),
	}}
	// February has costs only; it must still get a bucket.
	purchaseRepo := &fakePurchaseRepo{purchases: []*entity.Purchase{
		purchase("Feed", "feed", 4, 5, day(2026, time.February, 14), entity.PaymentPaid),
	}}

	uc := NewProfitLossUseCase(saleRepo, purchaseRepo)
	report, err := uc.Calculate(context.Background(), dto.ProfitLossRequest{})
	require.NoError(t, err)

	require.Len(t, report.MonthlyTrends, 3)
	assert.Equal(t, "2026-01", report.MonthlyTrends[0].Month)
	assert.Equal(t, "2026-02", report.MonthlyTrends[1].Month)
	assert.Equal(t, "2026-03", report.MonthlyTrends[2].Month)

	feb := report.MonthlyTrends[1]
	assert.True(t, feb.Revenue.IsZero())
	assert.Equal(t, "20", feb.Costs.String())
	assert.Equal(t, "-20", feb.Profit.String())
	assert.Equal(t, 0, feb.SalesCount)
	assert.Equal(t, 1, feb.PurchasesCount)
}

func TestCalculateCategoryPerformance(t *testing.T) {
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		sale("Maize", "crops", 100, 1, day(2026, time.April, 1), entity.PaymentPaid),
		sale("Beans", "crops", 20, 2, day(2026, time.April, 2), entity.PaymentPaid),
		sale("Goat", "livestock", 1, 9000, day(2026, time.April, 3), entity.PaymentPaid),
		sale("Mystery", "", 1, 10, day(2026, time.April, 4), entity.PaymentPaid),
	}}
	uc := NewProfitLossUseCase(saleRepo, &fakePurchaseRepo{})

	report, err := uc.Calculate(context.Background(), dto.ProfitLossRequest{})
	require.NoError(t, err)

	require.Len(t, report.CategoryPerformance, 3)
	assert.Equal(t, "livestock", report.CategoryPerformance[0].Category)
	assert.Equal(t, "crops", report.CategoryPerformance[1].Category)
	assert.Equal(t, "Other", report.CategoryPerformance[2].Category)

	crops := report.CategoryPerformance[1]
	assert.Equal(t, "140", crops.Revenue.String())
	assert.Equal(t, float64(120), crops.Quantity)
	assert.Equal(t, 2, crops.Transactions)
	assert.Equal(t, "70", crops.AvgTransactionValue.String())
}

func TestCalculateWindowAndCategoryFilter(t *testing.T) {
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		sale("Maize", "crops", 10, 1, day(2026, time.February, 1), entity.PaymentPaid),
		sale("Maize", "crops", 10, 1, day(2026, time.June, 30), entity.PaymentPaid),
		sale("Maize", "crops", 10, 1, day(2026, time.July, 1), entity.PaymentPaid),
		sale("Goat", "livestock", 1, 500, day(2026, time.June, 15), entity.PaymentPaid),
	}}
	uc := NewProfitLossUseCase(saleRepo, &fakePurchaseRepo{})

	report, err := uc.Calculate(context.Background(), dto.ProfitLossRequest{
		StartDate: "2026-06-01",
		EndDate:   "2026-06-30",
		Category:  "crops",
	})
	require.NoError(t, err)

	// The June 30 sale at noon is inside the inclusive end bound.
	assert.Equal(t, 1, report.Summary.TotalSalesTransactions)
	assert.Equal(t, "10", report.Summary.TotalRevenue.String())
	assert.Equal(t, "crops", report.Summary.Category)
}

func TestCalculateInvalidDates(t *testing.T) {
	uc := NewProfitLossUseCase(&fakeSaleRepo{}, &fakePurchaseRepo{})

	_, err := uc.Calculate(context.Background(), dto.ProfitLossRequest{StartDate: "not-a-date"})
	assert.Error(t, err)

	_, err = uc.Calculate(context.Background(), dto.ProfitLossRequest{
		StartDate: "2026-05-01",
		EndDate:   "2026-04-01",
	})
	assert.Error(t, err)
}

func TestCalculateFetchErrorAborts(t *testing.T) {
	boom := errors.New("connection refused")

	uc := NewProfitLossUseCase(&fakeSaleRepo{err: boom}, &fakePurchaseRepo{})
	report, err := uc.Calculate(context.Background(), dto.ProfitLossRequest{})
	assert.Nil(t, report)
	assert.ErrorIs(t, err, boom)

	uc = NewProfitLossUseCase(&fakeSaleRepo{}, &fakePurchaseRepo{err: boom})
	report, err = uc.Calculate(context.Background(), dto.ProfitLossRequest{})
	assert.Nil(t, report)
	assert.ErrorIs(t, err, boom)
}
