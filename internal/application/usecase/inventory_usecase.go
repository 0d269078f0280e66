package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/internal/domain/repository"
)

// InventoryUseCase covers inventory item CRUD. Low-stock and critical flags
// are never stored; reads classify rows from (quantity, min_threshold) alone.
type InventoryUseCase struct {
	invRepo repository.InventoryRepository
}

// NewInventoryUseCase builds the use case.
func NewInventoryUseCase(invRepo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{invRepo: invRepo}
}

// Create validates and persists a new item owned by userID.
func (uc *InventoryUseCase) Create(ctx context.Context, userID string, in dto.InventoryItemRequest) (*entity.InventoryItem, error) {
	if in.ItemName == "" || in.Category == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinThreshold < 0 || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		ItemName:     in.ItemName,
		Category:     in.Category,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		UnitCost:     in.UnitCost,
		MinThreshold: in.MinThreshold,
		Location:     in.Location,
		Supplier:     in.Supplier,
		CreatedBy:    userID,
		CreatedAt:    now,
		LastUpdated:  now,
	}
	if err := uc.invRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get returns one item or ErrNotFound.
func (uc *InventoryUseCase) Get(ctx context.Context, id string) (*entity.InventoryItem, error) {
	item, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// List returns all items.
func (uc *InventoryUseCase) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	return uc.invRepo.List(ctx)
}

// ListLowStock returns the items at or below their threshold.
func (uc *InventoryUseCase) ListLowStock(ctx context.Context) ([]*entity.InventoryItem, error) {
	items, err := uc.invRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]*entity.InventoryItem, 0)
	for _, item := range items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

// Update replaces an item's fields and stamps last_updated.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.InventoryItemRequest) (*entity.InventoryItem, error) {
	item, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ItemName == "" || in.Quantity < 0 || in.MinThreshold < 0 || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	item.ItemName = in.ItemName
	item.Category = in.Category
	item.Quantity = in.Quantity
	item.Unit = in.Unit
	item.UnitCost = in.UnitCost
	item.MinThreshold = in.MinThreshold
	item.Location = in.Location
	item.Supplier = in.Supplier
	item.LastUpdated = time.Now()

	if err := uc.invRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.invRepo.Delete(ctx, id)
}
