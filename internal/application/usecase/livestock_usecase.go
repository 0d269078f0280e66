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

// LivestockUseCase covers livestock CRUD. Age is derived at read time from
// the birth dates; the input rule is that an animal must carry a
// birth-on-farm or an arrival date.
type LivestockUseCase struct {
	livestockRepo repository.LivestockRepository
}

// NewLivestockUseCase builds the use case.
func NewLivestockUseCase(livestockRepo repository.LivestockRepository) *LivestockUseCase {
	return &LivestockUseCase{livestockRepo: livestockRepo}
}

func (uc *LivestockUseCase) fromRequest(in dto.LivestockRequest) (*entity.Livestock, error) {
	if in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.HealthStatus
	if status == "" {
		status = entity.HealthHealthy
	}
	if !entity.ValidHealthStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	dob, err := parseDatePtr(in.DateOfBirth)
	if err != nil {
		return nil, err
	}
	dobFarm, err := parseDatePtr(in.DateOfBirthOnFarm)
	if err != nil {
		return nil, err
	}
	arrival, err := parseDatePtr(in.DateOfArrivalAtFarm)
	if err != nil {
		return nil, err
	}

	animal := &entity.Livestock{
		Type:                in.Type,
		Breed:               in.Breed,
		Gender:              in.Gender,
		HealthStatus:        status,
		Weight:              in.Weight,
		DateOfBirth:         dob,
		DateOfBirthOnFarm:   dobFarm,
		DateOfArrivalAtFarm: arrival,
		PurchasePrice:       in.PurchasePrice,
		FarmLocation:        in.FarmLocation,
		Notes:               in.Notes,
	}
	if !animal.HasOriginDate() {
		return nil, domain.ErrInvalidInput
	}
	return animal, nil
}

// Create validates and persists a new animal owned by userID.
func (uc *LivestockUseCase) Create(ctx context.Context, userID string, in dto.LivestockRequest) (*entity.Livestock, error) {
	animal, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	animal.ID = uuid.New().String()
	animal.CreatedBy = userID
	animal.CreatedAt = now
	animal.UpdatedAt = now

	if err := uc.livestockRepo.Create(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// Get returns one animal or ErrNotFound.
func (uc *LivestockUseCase) Get(ctx context.Context, id string) (*entity.Livestock, error) {
	animal, err := uc.livestockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, domain.ErrNotFound
	}
	return animal, nil
}

// List returns the whole herd.
func (uc *LivestockUseCase) List(ctx context.Context) ([]*entity.Livestock, error) {
	return uc.livestockRepo.List(ctx)
}

// Update replaces an animal's fields; the origin-date rule applies here too.
func (uc *LivestockUseCase) Update(ctx context.Context, id string, in dto.LivestockRequest) (*entity.Livestock, error) {
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	animal, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	animal.ID = current.ID
	animal.CreatedBy = current.CreatedBy
	animal.CreatedAt = current.CreatedAt
	animal.UpdatedAt = time.Now()

	if err := uc.livestockRepo.Update(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// Delete removes an animal.
func (uc *LivestockUseCase) Delete(ctx context.Context, id string) error {
	return uc.livestockRepo.Delete(ctx, id)
}
