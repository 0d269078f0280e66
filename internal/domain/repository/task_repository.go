package repository

import (
	"context"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

// TaskRepository is the persistence port for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	List(ctx context.Context) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id string) error
}
