// Package inventory contains the stock-level business operations that go
// beyond plain CRUD: the low-stock alert sweep and the bulk update run.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/internal/domain/repository"
)

// AlertsUseCase sweeps the inventory and classifies every item as fine, low
// stock, or critical. Critical items get the location marker written back so
// the list views surface them; the marker write is idempotent and best-effort,
// a failed flag never fails the sweep.
type AlertsUseCase struct {
	invRepo repository.InventoryRepository
}

// NewAlertsUseCase builds the use case.
func NewAlertsUseCase(invRepo repository.InventoryRepository) *AlertsUseCase {
	return &AlertsUseCase{invRepo: invRepo}
}

// Run executes one sweep. A read error aborts the run; flag-write errors are
// logged and the sweep continues.
func (uc *AlertsUseCase) Run(ctx context.Context) (*dto.AlertSummary, error) {
	items, err := uc.invRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("alert sweep: list inventory: %w", err)
	}

	now := time.Now()
	summary := &dto.AlertSummary{
		Timestamp:     now,
		LowStockItems: make([]dto.LowStockItemDTO, 0),
	}

	for _, item := range items {
		if !item.IsLowStock() {
			continue
		}
		critical := item.IsCritical()

		summary.TotalLowStock++
		if critical {
			summary.CriticalItems++
		}
		summary.LowStockItems = append(summary.LowStockItems, dto.LowStockItemDTO{
			ID:              item.ID,
			ItemName:        item.ItemName,
			CurrentQuantity: item.Quantity,
			MinThreshold:    item.MinThreshold,
			Category:        item.Category,
			IsCritical:      critical,
		})

		if critical && !item.HasCriticalMarker() {
			flagged := item.Location + entity.CriticalMarker
			if err := uc.invRepo.SetLocation(ctx, item.ID, flagged, now); err != nil {
				log.Error().Err(err).
					Str("item_id", item.ID).
					Str("item_name", item.ItemName).
					Msg("failed to flag critical inventory item")
			}
		}
	}

	log.Info().
		Int("total_low_stock", summary.TotalLowStock).
		Int("critical_items", summary.CriticalItems).
		Msg("inventory alert sweep completed")
	return summary, nil
}
