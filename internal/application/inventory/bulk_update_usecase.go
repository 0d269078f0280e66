package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/repository"
)

// batchSize caps how many item updates run concurrently in one wave.
const batchSize = 50

// BulkUpdateUseCase applies partial updates to many inventory items in one
// call. The caller's role is checked first (admin or staff only); a rejected
// caller gets ErrForbidden and no mutation happens. Items are processed in
// waves of batchSize; within a wave every item runs concurrently, and each
// item's failure is recorded without stopping the run.
type BulkUpdateUseCase struct {
	invRepo     repository.InventoryRepository
	profileRepo repository.ProfileRepository
}

// NewBulkUpdateUseCase builds the use case.
func NewBulkUpdateUseCase(invRepo repository.InventoryRepository, profileRepo repository.ProfileRepository) *BulkUpdateUseCase {
	return &BulkUpdateUseCase{invRepo: invRepo, profileRepo: profileRepo}
}

// Run authorizes the caller, applies the updates, and recomputes the global
// inventory totals.
func (uc *BulkUpdateUseCase) Run(ctx context.Context, req dto.BulkUpdateRequest) (*dto.BulkUpdateResult, error) {
	if len(req.Updates) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.authorize(ctx, req.UserID); err != nil {
		return nil, err
	}

	result := &dto.BulkUpdateResult{Errors: make([]dto.BulkItemError, 0)}

	var mu sync.Mutex
	for offset := 0; offset < len(req.Updates); offset += batchSize {
		end := offset + batchSize
		if end > len(req.Updates) {
			end = len(req.Updates)
		}
		batch := req.Updates[offset:end]

		var wg sync.WaitGroup
		for _, upd := range batch {
			wg.Add(1)
			go func(upd dto.BulkUpdateItem) {
				defer wg.Done()
				err := uc.applyOne(ctx, upd)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					result.FailedUpdates++
					result.Errors = append(result.Errors, dto.BulkItemError{ID: upd.ID, Error: err.Error()})
					return
				}
				result.SuccessfulUpdates++
			}(upd)
		}
		wg.Wait()
	}

	uc.recomputeTotals(ctx, result)

	log.Info().
		Str("user_id", req.UserID).
		Int("successful", result.SuccessfulUpdates).
		Int("failed", result.FailedUpdates).
		Msg("bulk inventory update completed")
	return result, nil
}

// authorize resolves the caller's profile and checks the role gate. A missing
// user id or unknown profile is rejected, not defaulted.
func (uc *BulkUpdateUseCase) authorize(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrForbidden
	}
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil || !profile.CanBulkUpdate() {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *BulkUpdateUseCase) applyOne(ctx context.Context, upd dto.BulkUpdateItem) error {
	if upd.ID == "" {
		return domain.ErrInvalidInput
	}

	fields := map[string]any{"last_updated": time.Now()}
	if upd.Quantity != nil {
		if *upd.Quantity < 0 {
			return domain.ErrInvalidInput
		}
		fields["quantity"] = *upd.Quantity
	}
	if upd.UnitCost != nil {
		if upd.UnitCost.IsNegative() {
			return domain.ErrInvalidInput
		}
		fields["unit_cost"] = *upd.UnitCost
	}
	if upd.MinThreshold != nil {
		if *upd.MinThreshold < 0 {
			return domain.ErrInvalidInput
		}
		fields["min_threshold"] = *upd.MinThreshold
	}
	if upd.Location != nil {
		fields["location"] = *upd.Location
	}
	if upd.Supplier != nil {
		fields["supplier"] = *upd.Supplier
	}

	item, err := uc.invRepo.UpdateFields(ctx, upd.ID, fields)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return nil
}

// recomputeTotals refreshes the global value and low-stock count after the
// run. A read failure here leaves the totals at zero rather than failing a
// run whose updates already landed.
func (uc *BulkUpdateUseCase) recomputeTotals(ctx context.Context, result *dto.BulkUpdateResult) {
	items, err := uc.invRepo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to recompute inventory totals after bulk update")
		result.TotalInventoryValue = decimal.Zero
		return
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Value())
		if item.IsLowStock() {
			result.LowStockItems++
		}
	}
	result.TotalInventoryValue = total
}
