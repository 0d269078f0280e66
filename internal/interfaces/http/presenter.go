package http

import (
	"time"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/internal/domain/metric"
	"github.com/jefftricks/shamba-api/pkg/currency"
)

const dateLayout = "2006-01-02"

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		ProductName:   s.ProductName,
		ProductType:   s.ProductType,
		Buyer:         s.Buyer,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalAmount:   s.TotalAmount,
		TotalDisplay:  currency.FormatKES(s.TotalAmount),
		SaleDate:      s.SaleDate.Format(dateLayout),
		PaymentStatus: s.PaymentStatus,
		Notes:         s.Notes,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toPurchaseResponse(p *entity.Purchase) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		ID:            p.ID,
		ItemName:      p.ItemName,
		Category:      p.Category,
		Supplier:      p.Supplier,
		Quantity:      p.Quantity,
		UnitCost:      p.UnitCost,
		TotalCost:     p.TotalCost,
		TotalDisplay:  currency.FormatKES(p.TotalCost),
		PurchaseDate:  p.PurchaseDate.Format(dateLayout),
		ReceivedDate:  formatDatePtr(p.ReceivedDate),
		PaymentStatus: p.PaymentStatus,
		Notes:         p.Notes,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toInventoryResponse(i *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:           i.ID,
		ItemName:     i.ItemName,
		Category:     i.Category,
		Quantity:     i.Quantity,
		Unit:         i.Unit,
		UnitCost:     i.UnitCost,
		MinThreshold: i.MinThreshold,
		Location:     i.Location,
		Supplier:     i.Supplier,
		LowStock:     i.IsLowStock(),
		IsCritical:   i.IsCritical(),
		Value:        i.Value(),
		LastUpdated:  i.LastUpdated,
	}
}

func toLivestockResponse(l *entity.Livestock) dto.LivestockResponse {
	return dto.LivestockResponse{
		ID:                  l.ID,
		Type:                l.Type,
		Breed:               l.Breed,
		Gender:              l.Gender,
		HealthStatus:        l.HealthStatus,
		Weight:              l.Weight,
		Age:                 metric.Age(l.DateOfBirth, l.DateOfBirthOnFarm),
		DateOfBirth:         formatDatePtr(l.DateOfBirth),
		DateOfBirthOnFarm:   formatDatePtr(l.DateOfBirthOnFarm),
		DateOfArrivalAtFarm: formatDatePtr(l.DateOfArrivalAtFarm),
		PurchasePrice:       l.PurchasePrice,
		FarmLocation:        l.FarmLocation,
		Notes:               l.Notes,
		CreatedBy:           l.CreatedBy,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
}

func toCropResponse(cr *entity.Crop) dto.CropResponse {
	return dto.CropResponse{
		ID:            cr.ID,
		Name:          cr.Name,
		Type:          cr.Type,
		FarmLocation:  cr.FarmLocation,
		Status:        cr.Status,
		Season:        cr.Season,
		YieldQuantity: cr.YieldQuantity,
		YieldUnit:     cr.YieldUnit,
		PlantingDate:  formatDatePtr(cr.PlantingDate),
		HarvestDate:   formatDatePtr(cr.HarvestDate),
		Notes:         cr.Notes,
		CreatedBy:     cr.CreatedBy,
		CreatedAt:     cr.CreatedAt,
		UpdatedAt:     cr.UpdatedAt,
	}
}

func toTaskResponse(t *entity.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		TaskType:    t.TaskType,
		Priority:    t.Priority,
		TaskDate:    t.TaskDate.Format(dateLayout),
		Completed:   t.Completed,
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toReportResponse(r *entity.Report) dto.ReportResponse {
	return dto.ReportResponse{
		ID:          r.ID,
		ReportType:  r.ReportType,
		Title:       r.Title,
		Content:     r.Content,
		PeriodStart: r.PeriodStart.Format(dateLayout),
		PeriodEnd:   r.PeriodEnd.Format(dateLayout),
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
	}
}
