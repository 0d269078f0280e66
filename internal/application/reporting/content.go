package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

// Row views embedded in report payloads. Payload key casing follows the
// persisted report contract: camelCase section keys, snake_case row fields.

type inventoryRow struct {
	ID           string          `json:"id"`
	ItemName     string          `json:"item_name"`
	Category     string          `json:"category"`
	Quantity     float64         `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	MinThreshold float64         `json:"min_threshold"`
	Location     string          `json:"location"`
	Supplier     string          `json:"supplier,omitempty"`
}

func toInventoryRow(i *entity.InventoryItem) inventoryRow {
	return inventoryRow{
		ID:           i.ID,
		ItemName:     i.ItemName,
		Category:     i.Category,
		Quantity:     i.Quantity,
		Unit:         i.Unit,
		UnitCost:     i.UnitCost,
		MinThreshold: i.MinThreshold,
		Location:     i.Location,
		Supplier:     i.Supplier,
	}
}

type purchaseRow struct {
	ID            string          `json:"id"`
	ItemName      string          `json:"item_name"`
	Category      string          `json:"category"`
	Supplier      string          `json:"supplier,omitempty"`
	Quantity      float64         `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	PurchaseDate  string          `json:"purchase_date"`
	PaymentStatus string          `json:"payment_status"`
}

func toPurchaseRow(p *entity.Purchase) purchaseRow {
	return purchaseRow{
		ID:            p.ID,
		ItemName:      p.ItemName,
		Category:      p.Category,
		Supplier:      p.Supplier,
		Quantity:      p.Quantity,
		UnitCost:      p.UnitCost,
		TotalCost:     p.TotalCost,
		PurchaseDate:  p.PurchaseDate.Format("2006-01-02"),
		PaymentStatus: p.PaymentStatus,
	}
}

type saleRow struct {
	ID            string          `json:"id"`
	ProductName   string          `json:"product_name"`
	ProductType   string          `json:"product_type,omitempty"`
	Buyer         string          `json:"buyer,omitempty"`
	Quantity      float64         `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	SaleDate      string          `json:"sale_date"`
	PaymentStatus string          `json:"payment_status"`
}

func toSaleRow(s *entity.Sale) saleRow {
	return saleRow{
		ID:            s.ID,
		ProductName:   s.ProductName,
		ProductType:   s.ProductType,
		Buyer:         s.Buyer,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalAmount:   s.TotalAmount,
		SaleDate:      s.SaleDate.Format("2006-01-02"),
		PaymentStatus: s.PaymentStatus,
	}
}

type livestockRow struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Breed        string  `json:"breed,omitempty"`
	Gender       string  `json:"gender,omitempty"`
	HealthStatus string  `json:"health_status"`
	Weight       float64 `json:"weight,omitempty"`
}

func toLivestockRow(l *entity.Livestock) livestockRow {
	return livestockRow{
		ID:           l.ID,
		Type:         l.Type,
		Breed:        l.Breed,
		Gender:       l.Gender,
		HealthStatus: l.HealthStatus,
		Weight:       l.Weight,
	}
}

// inventorySummaryContent is the inventory_summary payload.
type inventorySummaryContent struct {
	Summary struct {
		TotalItems          int             `json:"totalItems"`
		LowStockItems       int             `json:"lowStockItems"`
		TotalInventoryValue decimal.Decimal `json:"totalInventoryValue"`
	} `json:"summary"`
	LowStockAlert       []inventoryRow            `json:"lowStockAlert"`
	RecentPurchases     []purchaseRow             `json:"recentPurchases"`
	InventoryByCategory map[string][]inventoryRow `json:"inventoryByCategory"`
}

// salesSummaryContent is the sales_summary payload.
type salesSummaryContent struct {
	Summary struct {
		TotalSales        int             `json:"totalSales"`
		TotalRevenue      decimal.Decimal `json:"totalRevenue"`
		TotalQuantitySold float64         `json:"totalQuantitySold"`
		AverageSaleValue  decimal.Decimal `json:"averageSaleValue"`
	} `json:"summary"`
	SalesByProduct map[string]*productTally `json:"salesByProduct"`
	RecentSales    []saleRow                `json:"recentSales"`
}

type productTally struct {
	Quantity float64         `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
	Sales    int             `json:"sales"`
}

// livestockStatusContent is the livestock_status payload.
type livestockStatusContent struct {
	Summary struct {
		TotalLivestock       int `json:"totalLivestock"`
		NewLivestockInPeriod int `json:"newLivestockInPeriod"`
		HealthyCount         int `json:"healthyCount"`
		SickCount            int `json:"sickCount"`
	} `json:"summary"`
	LivestockByType map[string][]livestockRow `json:"livestockByType"`
	HealthStatus    map[string]int            `json:"healthStatus"`
	NewLivestock    []livestockRow            `json:"newLivestock"`
}

// farmReportContent is the composite monthly/quarterly/annual payload.
type farmReportContent struct {
	Summary struct {
		Period         string          `json:"period"`
		Revenue        decimal.Decimal `json:"revenue"`
		Expenses       decimal.Decimal `json:"expenses"`
		Profit         decimal.Decimal `json:"profit"`
		TotalLivestock int             `json:"totalLivestock"`
		TotalCrops     int             `json:"totalCrops"`
		InventoryItems int             `json:"inventoryItems"`
	} `json:"summary"`
	Sales struct {
		TotalSales  int                       `json:"totalSales"`
		Revenue     decimal.Decimal           `json:"revenue"`
		TopProducts map[string]*productVolume `json:"topProducts"`
	} `json:"sales"`
	Purchases struct {
		TotalPurchases int                        `json:"totalPurchases"`
		TotalCost      decimal.Decimal            `json:"totalCost"`
		ByCategory     map[string]*categorySpend `json:"byCategory"`
	} `json:"purchases"`
	Livestock struct {
		Total        int            `json:"total"`
		ByType       map[string]int `json:"byType"`
		HealthStatus map[string]int `json:"healthStatus"`
	} `json:"livestock"`
	Crops struct {
		Total    int            `json:"total"`
		ByType   map[string]int `json:"byType"`
		ByStatus map[string]int `json:"byStatus"`
	} `json:"crops"`
}

type productVolume struct {
	Quantity float64         `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type categorySpend struct {
	Count int             `json:"count"`
	Cost  decimal.Decimal `json:"cost"`
}
