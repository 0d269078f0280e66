package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records one inbound transaction (feed, seeds, equipment, ...).
// TotalCost is always Quantity × UnitCost, recomputed on every change.
type Purchase struct {
	ID            string
	ItemName      string
	Category      string
	Supplier      string
	Quantity      float64
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
	PurchaseDate  time.Time
	ReceivedDate  *time.Time // nil until the goods arrive
	PaymentStatus string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecomputeTotal re-derives TotalCost from Quantity and UnitCost.
func (p *Purchase) RecomputeTotal() {
	p.TotalCost = p.UnitCost.Mul(decimal.NewFromFloat(p.Quantity))
}
