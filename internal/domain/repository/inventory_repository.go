package repository

import (
	"context"
	"time"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

// InventoryRepository is the persistence port for inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	// UpdateFields applies a partial update to one row and returns the
	// updated row. Allowed keys: quantity, unit_cost, min_threshold,
	// location, supplier. last_updated is stamped by the caller's entry.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*entity.InventoryItem, error)
	// SetLocation rewrites the location string and last_updated only
	// (used by the alert evaluator's critical flag).
	SetLocation(ctx context.Context, id, location string, ts time.Time) error
	Delete(ctx context.Context, id string) error
}
