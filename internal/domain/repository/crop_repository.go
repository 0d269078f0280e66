package repository

import (
	"context"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

// CropRepository is the persistence port for crops.
type CropRepository interface {
	Create(ctx context.Context, crop *entity.Crop) error
	GetByID(ctx context.Context, id string) (*entity.Crop, error)
	List(ctx context.Context) ([]*entity.Crop, error)
	Update(ctx context.Context, crop *entity.Crop) error
	Delete(ctx context.Context, id string) error
}
