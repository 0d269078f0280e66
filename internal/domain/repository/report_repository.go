package repository

import (
	"context"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

// ReportRepository is the persistence port for report snapshots.
// Reports are append-only: no update or delete.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	List(ctx context.Context) ([]*entity.Report, error)
}
