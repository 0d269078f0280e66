package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses shared by sales and purchases.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentPartial = "partial"
)

// Sale records one outbound transaction (produce, livestock, etc.).
// TotalAmount is always Quantity × UnitPrice; it is recomputed whenever either
// factor changes and never accepted from the caller.
type Sale struct {
	ID            string
	ProductName   string
	ProductType   string // category, e.g. "crops", "livestock", "dairy"
	Buyer         string
	Quantity      float64
	UnitPrice     decimal.Decimal
	TotalAmount   decimal.Decimal
	SaleDate      time.Time
	PaymentStatus string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecomputeTotal re-derives TotalAmount from Quantity and UnitPrice.
func (s *Sale) RecomputeTotal() {
	s.TotalAmount = s.UnitPrice.Mul(decimal.NewFromFloat(s.Quantity))
}

// ValidPaymentStatus reports whether st is one of the known payment statuses.
func ValidPaymentStatus(st string) bool {
	switch st {
	case PaymentPending, PaymentPaid, PaymentPartial:
		return true
	}
	return false
}
