package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRequest creates or replaces a sale. total_amount is never accepted from
// the caller; it is derived from quantity × unit_price.
type SaleRequest struct {
	ProductName   string          `json:"product_name"`
	ProductType   string          `json:"product_type"`
	Buyer         string          `json:"buyer"`
	Quantity      float64         `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	SaleDate      string          `json:"sale_date"` // YYYY-MM-DD
	PaymentStatus string          `json:"payment_status"`
	Notes         string          `json:"notes"`
}

// SaleResponse is the API view of a sale.
type SaleResponse struct {
	ID            string          `json:"id"`
	ProductName   string          `json:"product_name"`
	ProductType   string          `json:"product_type"`
	Buyer         string          `json:"buyer"`
	Quantity      float64         `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalDisplay  string          `json:"total_display"` // KES formatted
	SaleDate      string          `json:"sale_date"`
	PaymentStatus string          `json:"payment_status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PurchaseRequest creates or replaces a purchase; total_cost is derived.
type PurchaseRequest struct {
	ItemName      string          `json:"item_name"`
	Category      string          `json:"category"`
	Supplier      string          `json:"supplier"`
	Quantity      float64         `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	PurchaseDate  string          `json:"purchase_date"` // YYYY-MM-DD
	ReceivedDate  string          `json:"received_date,omitempty"`
	PaymentStatus string          `json:"payment_status"`
	Notes         string          `json:"notes"`
}

// PurchaseResponse is the API view of a purchase.
type PurchaseResponse struct {
	ID            string          `json:"id"`
	ItemName      string          `json:"item_name"`
	Category      string          `json:"category"`
	Supplier      string          `json:"supplier"`
	Quantity      float64         `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalDisplay  string          `json:"total_display"`
	PurchaseDate  string          `json:"purchase_date"`
	ReceivedDate  string          `json:"received_date,omitempty"`
	PaymentStatus string          `json:"payment_status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
