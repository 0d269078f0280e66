package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitLossRequest is the body of POST /functions/calculate-profit-loss.
// Empty date strings leave that side of the window open.
type ProfitLossRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Category  string `json:"category"`
	UserID    string `json:"user_id"`
}

// ProfitLossSummaryDTO is the headline block of the P&L report.
type ProfitLossSummaryDTO struct {
	Period                    PeriodDTO       `json:"period"`
	Category                  string          `json:"category"`
	TotalRevenue              decimal.Decimal `json:"total_revenue"`
	PaidRevenue               decimal.Decimal `json:"paid_revenue"`
	TotalCosts                decimal.Decimal `json:"total_costs"`
	PaidCosts                 decimal.Decimal `json:"paid_costs"`
	GrossProfit               decimal.Decimal `json:"gross_profit"`
	NetProfit                 decimal.Decimal `json:"net_profit"`
	ProfitMarginPercent       decimal.Decimal `json:"profit_margin_percent"`
	TotalSalesTransactions    int             `json:"total_sales_transactions"`
	TotalPurchaseTransactions int             `json:"total_purchase_transactions"`
}

// MonthlyTrendDTO is one calendar-month bucket (key YYYY-MM).
type MonthlyTrendDTO struct {
	Month          string          `json:"month"`
	Revenue        decimal.Decimal `json:"revenue"`
	Costs          decimal.Decimal `json:"costs"`
	Profit         decimal.Decimal `json:"profit"`
	SalesCount     int             `json:"sales_count"`
	PurchasesCount int             `json:"purchases_count"`
}

// CategoryPerformanceDTO is one product-category leaderboard row.
type CategoryPerformanceDTO struct {
	Category            string          `json:"category"`
	Revenue             decimal.Decimal `json:"revenue"`
	Quantity            float64         `json:"quantity"`
	Transactions        int             `json:"transactions"`
	AvgTransactionValue decimal.Decimal `json:"avg_transaction_value"`
}

// ProfitLossReportDTO is the immutable snapshot returned by the aggregation.
type ProfitLossReportDTO struct {
	Summary             ProfitLossSummaryDTO     `json:"summary"`
	MonthlyTrends       []MonthlyTrendDTO        `json:"monthly_trends"`
	CategoryPerformance []CategoryPerformanceDTO `json:"category_performance"`
	GeneratedAt         time.Time                `json:"generated_at"`
	GeneratedBy         string                   `json:"generated_by"`
}
