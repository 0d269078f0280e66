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

// CropUseCase covers crop CRUD.
type CropUseCase struct {
	cropRepo repository.CropRepository
}

// NewCropUseCase builds the use case.
func NewCropUseCase(cropRepo repository.CropRepository) *CropUseCase {
	return &CropUseCase{cropRepo: cropRepo}
}

func (uc *CropUseCase) fromRequest(in dto.CropRequest) (*entity.Crop, error) {
	if in.Name == "" || in.Type == "" || in.FarmLocation == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.CropPlanted
	}
	if !entity.ValidCropStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	planting, err := parseDatePtr(in.PlantingDate)
	if err != nil {
		return nil, err
	}
	harvest, err := parseDatePtr(in.HarvestDate)
	if err != nil {
		return nil, err
	}
	return &entity.Crop{
		Name:          in.Name,
		Type:          in.Type,
		FarmLocation:  in.FarmLocation,
		Status:        status,
		Season:        in.Season,
		YieldQuantity: in.YieldQuantity,
		YieldUnit:     in.YieldUnit,
		PlantingDate:  planting,
		HarvestDate:   harvest,
		Notes:         in.Notes,
	}, nil
}

// Create validates and persists a new crop owned by userID.
func (uc *CropUseCase) Create(ctx context.Context, userID string, in dto.CropRequest) (*entity.Crop, error) {
	crop, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	crop.ID = uuid.New().String()
	crop.CreatedBy = userID
	crop.CreatedAt = now
	crop.UpdatedAt = now

	if err := uc.cropRepo.Create(ctx, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

// Get returns one crop or ErrNotFound.
func (uc *CropUseCase) Get(ctx context.Context, id string) (*entity.Crop, error) {
	crop, err := uc.cropRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if crop == nil {
		return nil, domain.ErrNotFound
	}
	return crop, nil
}

// List returns all crops.
func (uc *CropUseCase) List(ctx context.Context) ([]*entity.Crop, error) {
	return uc.cropRepo.List(ctx)
}

// Update replaces a crop's fields.
func (uc *CropUseCase) Update(ctx context.Context, id string, in dto.CropRequest) (*entity.Crop, error) {
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	crop, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	crop.ID = current.ID
	crop.CreatedBy = current.CreatedBy
	crop.CreatedAt = current.CreatedAt
	crop.UpdatedAt = time.Now()

	if err := uc.cropRepo.Update(ctx, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

// Delete removes a crop.
func (uc *CropUseCase) Delete(ctx context.Context, id string) error {
	return uc.cropRepo.Delete(ctx, id)
}
