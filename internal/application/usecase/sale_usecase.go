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

// SaleUseCase covers sale CRUD. The total_amount invariant lives here: the
// stored total is always recomputed from quantity × unit_price, on create and
// on every update that could touch either factor.
type SaleUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleUseCase builds the use case.
func NewSaleUseCase(saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo}
}

// Create validates and persists a new sale owned by userID.
func (uc *SaleUseCase) Create(ctx context.Context, userID string, in dto.SaleRequest) (*entity.Sale, error) {
	if in.ProductName == "" || in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	saleDate, err := parseDate(in.SaleDate)
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
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		ProductName:   in.ProductName,
		ProductType:   in.ProductType,
		Buyer:         in.Buyer,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		SaleDate:      saleDate,
		PaymentStatus: status,
		Notes:         in.Notes,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	sale.RecomputeTotal()

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Get returns one sale or ErrNotFound.
func (uc *SaleUseCase) Get(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// List returns all sales.
func (uc *SaleUseCase) List(ctx context.Context) ([]*entity.Sale, error) {
	return uc.saleRepo.List(ctx)
}

// Update replaces a sale's fields and re-derives the total.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.SaleRequest) (*entity.Sale, error) {
	sale, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ProductName == "" || in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	saleDate, err := parseDate(in.SaleDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentStatus(in.PaymentStatus) {
		return nil, domain.ErrInvalidInput
	}

	sale.ProductName = in.ProductName
	sale.ProductType = in.ProductType
	sale.Buyer = in.Buyer
	sale.Quantity = in.Quantity
	sale.UnitPrice = in.UnitPrice
	sale.SaleDate = saleDate
	sale.PaymentStatus = in.PaymentStatus
	sale.Notes = in.Notes
	sale.UpdatedAt = time.Now()
	sale.RecomputeTotal()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Delete removes a sale.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.saleRepo.Delete(ctx, id)
}
