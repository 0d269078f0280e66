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

// PurchaseUseCase covers purchase CRUD; total_cost is always derived.
type PurchaseUseCase struct {
	purchaseRepo repository.PurchaseRepository
}

// NewPurchaseUseCase builds the use case.
func NewPurchaseUseCase(purchaseRepo repository.PurchaseRepository) *PurchaseUseCase {
	return &PurchaseUseCase{purchaseRepo: purchaseRepo}
}

// Create validates and persists a new purchase owned by userID.
func (uc *PurchaseUseCase) Create(ctx context.Context, userID string, in dto.PurchaseRequest) (*entity.Purchase, error) {
	if in.ItemName == "" || in.Quantity <= 0 || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	purchaseDate, err := parseDate(in.PurchaseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	receivedDate, err := parseDatePtr(in.ReceivedDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.PaymentStatus
	if status == "" {
		status = entity.PaymentPending
	}
	if !entity.ValidPaymentStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:            uuid.New().String(),
		ItemName:      in.ItemName,
		Category:      in.Category,
		Supplier:      in.Supplier,
		Quantity:      in.Quantity,
		UnitCost:      in.UnitCost,
		PurchaseDate:  purchaseDate,
		ReceivedDate:  receivedDate,
		PaymentStatus: status,
		Notes:         in.Notes,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	purchase.RecomputeTotal()

	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// Get returns one purchase or ErrNotFound.
func (uc *PurchaseUseCase) Get(ctx context.Context, id string) (*entity.Purchase, error) {
	purchase, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	return purchase, nil
}

// List returns all purchases.
func (uc *PurchaseUseCase) List(ctx context.Context) ([]*entity.Purchase, error) {
	return uc.purchaseRepo.List(ctx)
}

// Update replaces a purchase's fields and re-derives the total.
func (uc *PurchaseUseCase) Update(ctx context.Context, id string, in dto.PurchaseRequest) (*entity.Purchase, error) {
	purchase, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ItemName == "" || in.Quantity <= 0 || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	purchaseDate, err := parseDate(in.PurchaseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	receivedDate, err := parseDatePtr(in.ReceivedDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentStatus(in.PaymentStatus) {
		return nil, domain.ErrInvalidInput
	}

	purchase.ItemName = in.ItemName
	purchase.Category = in.Category
	purchase.Supplier = in.Supplier
	purchase.Quantity = in.Quantity
	purchase.UnitCost = in.UnitCost
	purchase.PurchaseDate = purchaseDate
	purchase.ReceivedDate = receivedDate
	purchase.PaymentStatus = in.PaymentStatus
	purchase.Notes = in.Notes
	purchase.UpdatedAt = time.Now()
	purchase.RecomputeTotal()

	if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// Delete removes a purchase.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id string) error {
	return uc.purchaseRepo.Delete(ctx, id)
}
