package repository

import (
	"context"
	"time"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

// LivestockRepository is the persistence port for livestock.
type LivestockRepository interface {
	Create(ctx context.Context, animal *entity.Livestock) error
	GetByID(ctx context.Context, id string) (*entity.Livestock, error)
	List(ctx context.Context) ([]*entity.Livestock, error)
	// ListCreatedBetween returns animals whose row was created in the window
	// (used by the livestock status report for period additions).
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Livestock, error)
	Update(ctx context.Context, animal *entity.Livestock) error
	Delete(ctx context.Context, id string) error
}
