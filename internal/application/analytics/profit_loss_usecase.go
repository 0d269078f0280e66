// Package analytics contains the read-only business reporting use cases.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/internal/domain/repository"
)

const (
	dateLayout = "2006-01-02"
	monthKey   = "2006-01"
)

var hundred = decimal.NewFromInt(100)

// ProfitLossUseCase computes the profit & loss snapshot for a time window and
// optional category:
//   - revenue and costs, total and restricted to paid transactions;
//   - gross profit (total revenue − total costs) and net profit (paid only);
//   - margin percent, zero when there is no revenue;
//   - monthly trend buckets and a category leaderboard.
//
// The computation is atomic: either fetch error aborts the whole report and
// nothing partial is returned.
type ProfitLossUseCase struct {
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
}

// NewProfitLossUseCase builds the use case.
func NewProfitLossUseCase(saleRepo repository.SaleRepository, purchaseRepo repository.PurchaseRepository) *ProfitLossUseCase {
	return &ProfitLossUseCase{saleRepo: saleRepo, purchaseRepo: purchaseRepo}
}

// Calculate fetches sales and purchases in parallel and assembles the report.
func (uc *ProfitLossUseCase) Calculate(ctx context.Context, req dto.ProfitLossRequest) (*dto.ProfitLossReportDTO, error) {
	start, end, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	type salesResult struct {
		rows []*entity.Sale
		err  error
	}
	type purchasesResult struct {
		rows []*entity.Purchase
		err  error
	}

	salesCh := make(chan salesResult, 1)
	purchasesCh := make(chan purchasesResult, 1)

	go func() {
		rows, err := uc.saleRepo.ListByPeriod(ctx, start, end, req.Category)
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		rows, err := uc.purchaseRepo.ListByPeriod(ctx, start, end, req.Category)
		purchasesCh <- purchasesResult{rows, err}
	}()

	sales := <-salesCh
	purchases := <-purchasesCh

	if sales.err != nil {
		return nil, fmt.Errorf("profit-loss: fetch sales: %w", sales.err)
	}
	if purchases.err != nil {
		return nil, fmt.Errorf("profit-loss: fetch purchases: %w", purchases.err)
	}

	summary := buildSummary(req, sales.rows, purchases.rows)
	trends := buildMonthlyTrends(sales.rows, purchases.rows)
	performance := buildCategoryPerformance(sales.rows)

	return &dto.ProfitLossReportDTO{
		Summary:             summary,
		MonthlyTrends:       trends,
		CategoryPerformance: performance,
		GeneratedAt:         time.Now(),
		GeneratedBy:         req.UserID,
	}, nil
}

func buildSummary(req dto.ProfitLossRequest, sales []*entity.Sale, purchases []*entity.Purchase) dto.ProfitLossSummaryDTO {
	var totalRevenue, paidRevenue, totalCosts, paidCosts decimal.Decimal

	for _, s := range sales {
		totalRevenue = totalRevenue.Add(s.TotalAmount)
		if s.PaymentStatus == entity.PaymentPaid {
			paidRevenue = paidRevenue.Add(s.TotalAmount)
		}
	}
	for _, p := range purchases {
		totalCosts = totalCosts.Add(p.TotalCost)
		if p.PaymentStatus == entity.PaymentPaid {
			paidCosts = paidCosts.Add(p.TotalCost)
		}
	}

	grossProfit := totalRevenue.Sub(totalCosts)
	netProfit := paidRevenue.Sub(paidCosts)

	// Margin is undefined at zero revenue; reported as 0.
	margin := decimal.Zero
	if totalRevenue.IsPositive() {
		margin = grossProfit.Div(totalRevenue).Mul(hundred).Round(2)
	}

	category := req.Category
	if category == "" {
		category = "All Categories"
	}

	return dto.ProfitLossSummaryDTO{
		Period:                    dto.PeriodDTO{StartDate: req.StartDate, EndDate: req.EndDate},
		Category:                  category,
		TotalRevenue:              totalRevenue,
		PaidRevenue:               paidRevenue,
		TotalCosts:                totalCosts,
		PaidCosts:                 paidCosts,
		GrossProfit:               grossProfit,
		NetProfit:                 netProfit,
		ProfitMarginPercent:       margin,
		TotalSalesTransactions:    len(sales),
		TotalPurchaseTransactions: len(purchases),
	}
}

// buildMonthlyTrends buckets both streams by calendar month (YYYY-MM of the
// sale/purchase date). A month present in only one stream still gets a
// bucket. Output is sorted ascending by month key.
func buildMonthlyTrends(sales []*entity.Sale, purchases []*entity.Purchase) []dto.MonthlyTrendDTO {
	buckets := make(map[string]*dto.MonthlyTrendDTO)

	bucket := func(month string) *dto.MonthlyTrendDTO {
		b, ok := buckets[month]
		if !ok {
			b = &dto.MonthlyTrendDTO{Month: month}
			buckets[month] = b
		}
		return b
	}

	for _, s := range sales {
		b := bucket(s.SaleDate.Format(monthKey))
		b.Revenue = b.Revenue.Add(s.TotalAmount)
		b.SalesCount++
	}
	for _, p := range purchases {
		b := bucket(p.PurchaseDate.Format(monthKey))
		b.Costs = b.Costs.Add(p.TotalCost)
		b.PurchasesCount++
	}

	trends := make([]dto.MonthlyTrendDTO, 0, len(buckets))
	for _, b := range buckets {
		b.Profit = b.Revenue.Sub(b.Costs)
		trends = append(trends, *b)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends
}

// buildCategoryPerformance groups sales by product type, sorted by revenue
// descending. Sales without a type fall into "Other".
func buildCategoryPerformance(sales []*entity.Sale) []dto.CategoryPerformanceDTO {
	groups := make(map[string]*dto.CategoryPerformanceDTO)

	for _, s := range sales {
		cat := s.ProductType
		if cat == "" {
			cat = "Other"
		}
		g, ok := groups[cat]
		if !ok {
			g = &dto.CategoryPerformanceDTO{Category: cat}
			groups[cat] = g
		}
		g.Revenue = g.Revenue.Add(s.TotalAmount)
		g.Quantity += s.Quantity
		g.Transactions++
	}

	performance := make([]dto.CategoryPerformanceDTO, 0, len(groups))
	for _, g := range groups {
		if g.Transactions > 0 {
			g.AvgTransactionValue = g.Revenue.Div(decimal.NewFromInt(int64(g.Transactions))).Round(2)
		}
		performance = append(performance, *g)
	}
	sort.Slice(performance, func(i, j int) bool {
		return performance[i].Revenue.GreaterThan(performance[j].Revenue)
	})
	return performance
}

// parseWindow turns the request's date strings into an inclusive window.
// Empty strings leave that bound open (nil). The end bound is pushed to the
// end of its day so that same-day rows are included.
func parseWindow(startStr, endStr string) (start, end *time.Time, err error) {
	if startStr != "" {
		t, perr := time.ParseInLocation(dateLayout, startStr, time.Local)
		if perr != nil {
			return nil, nil, fmt.Errorf("invalid start_date: %w", perr)
		}
		start = &t
	}
	if endStr != "" {
		t, perr := time.ParseInLocation(dateLayout, endStr, time.Local)
		if perr != nil {
			return nil, nil, fmt.Errorf("invalid end_date: %w", perr)
		}
		t = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		end = &t
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, fmt.Errorf("start_date cannot be after end_date")
	}
	return start, end, nil
}
