package repository

import (
	"context"
	"time"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

// PurchaseRepository is the persistence port for purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id string) (*entity.Purchase, error)
	List(ctx context.Context) ([]*entity.Purchase, error)
	// ListByPeriod mirrors SaleRepository.ListByPeriod over purchase_date.
	ListByPeriod(ctx context.Context, start, end *time.Time, category string) ([]*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	Delete(ctx context.Context, id string) error
}
