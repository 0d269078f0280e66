package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemRequest creates or replaces an inventory item.
type InventoryItemRequest struct {
	ItemName     string          `json:"item_name"`
	Category     string          `json:"category"`
	Quantity     float64         `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	MinThreshold float64         `json:"min_threshold"`
	Location     string          `json:"location"`
	Supplier     string          `json:"supplier"`
}

// InventoryItemResponse is the API view of an item; low_stock and is_critical
// are recomputed on every read, never persisted.
type InventoryItemResponse struct {
	ID           string          `json:"id"`
	ItemName     string          `json:"item_name"`
	Category     string          `json:"category"`
	Quantity     float64         `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	MinThreshold float64         `json:"min_threshold"`
	Location     string          `json:"location"`
	Supplier     string          `json:"supplier,omitempty"`
	LowStock     bool            `json:"low_stock"`
	IsCritical   bool            `json:"is_critical"`
	Value        decimal.Decimal `json:"value"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// BulkUpdateItem is one partial update keyed by item id. Pointer fields are
// optional; absent fields are left untouched.
type BulkUpdateItem struct {
	ID           string           `json:"id"`
	Quantity     *float64         `json:"quantity,omitempty"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	MinThreshold *float64         `json:"min_threshold,omitempty"`
	Location     *string          `json:"location,omitempty"`
	Supplier     *string          `json:"supplier,omitempty"`
}

// BulkUpdateRequest is the body of POST /functions/bulk-inventory-update.
type BulkUpdateRequest struct {
	Updates []BulkUpdateItem `json:"updates"`
	UserID  string           `json:"user_id"`
}

// BulkItemError records one item's failure inside a bulk run.
type BulkItemError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BulkUpdateResult summarizes a bulk run: per-item counts plus the recomputed
// global inventory value and low-stock count.
type BulkUpdateResult struct {
	SuccessfulUpdates   int             `json:"successful_updates"`
	FailedUpdates       int             `json:"failed_updates"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	LowStockItems       int             `json:"low_stock_items"`
	Errors              []BulkItemError `json:"errors,omitempty"`
}

// LowStockItemDTO is one row of the alert summary.
type LowStockItemDTO struct {
	ID              string  `json:"id"`
	ItemName        string  `json:"item_name"`
	CurrentQuantity float64 `json:"current_quantity"`
	MinThreshold    float64 `json:"min_threshold"`
	Category        string  `json:"category"`
	IsCritical      bool    `json:"is_critical"`
}

// AlertSummary is the output of one inventory sweep.
type AlertSummary struct {
	Timestamp     time.Time         `json:"timestamp"`
	TotalLowStock int               `json:"total_low_stock"`
	CriticalItems int               `json:"critical_items"`
	LowStockItems []LowStockItemDTO `json:"low_stock_items"`
}
