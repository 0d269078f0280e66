package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CriticalMarker is appended to an item's location when it is critically low.
const CriticalMarker = " [CRITICAL]"

// criticalFraction of the minimum threshold below which a low-stock item is critical.
const criticalFraction = 0.25

// InventoryItem is one stocked item. MinThreshold and UnitCost are nullable in
// the store and coalesced to zero at ingestion, so an item without a
// configured threshold only alerts once its quantity reaches zero.
type InventoryItem struct {
	ID           string
	ItemName     string
	Category     string
	Quantity     float64
	Unit         string
	UnitCost     decimal.Decimal
	MinThreshold float64
	Location     string
	Supplier     string
	CreatedBy    string
	CreatedAt    time.Time
	LastUpdated  time.Time
}

// IsLowStock reports whether the item is at or below its minimum threshold.
// Never persisted; recomputed on every read.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinThreshold
}

// IsCritical reports whether the item is below a quarter of its threshold.
func (i *InventoryItem) IsCritical() bool {
	return i.Quantity < i.MinThreshold*criticalFraction
}

// HasCriticalMarker reports whether the location already carries the marker.
func (i *InventoryItem) HasCriticalMarker() bool {
	return strings.Contains(i.Location, strings.TrimSpace(CriticalMarker))
}

// Value is the stock value of the item (quantity × unit cost).
func (i *InventoryItem) Value() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromFloat(i.Quantity))
}
