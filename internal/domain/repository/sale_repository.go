package repository

import (
	"context"
	"time"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

// SaleRepository is the persistence port for sales.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	// ListByPeriod returns sales whose sale_date falls in [start, end]
	// (either bound may be nil for an open end), optionally restricted to a
	// product category.
	ListByPeriod(ctx context.Context, start, end *time.Time, category string) ([]*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id string) error
}
