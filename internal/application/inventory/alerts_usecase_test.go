package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

func TestAlertSweepClassification(t *testing.T) {
	repo := newFakeInventoryRepo(
		stockItem("ok", "Fertilizer", 100, 10, 50),
		stockItem("low", "Maize Seed", 5, 10, 120), // low, 5 >= 2.5
		stockItem("crit", "Dairy Meal", 2, 10, 65), // critical, 2 < 2.5
	)
	uc := NewAlertsUseCase(repo)

	summary, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalLowStock)
	assert.Equal(t, 1, summary.CriticalItems)
	require.Len(t, summary.LowStockItems, 2)

	byID := make(map[string]bool)
	for _, row := range summary.LowStockItems {
		byID[row.ID] = row.IsCritical
	}
	assert.False(t, byID["low"])
	assert.True(t, byID["crit"])
}

func TestAlertSweepFlagsCriticalLocation(t *testing.T) {
	repo := newFakeInventoryRepo(stockItem("crit", "Dairy Meal", 1, 10, 65))
	uc := NewAlertsUseCase(repo)

	_, err := uc.Run(context.Background())
	require.NoError(t, err)

	item, _ := repo.GetByID(context.Background(), "crit")
	assert.Equal(t, "Main Store"+entity.CriticalMarker, item.Location)
}

func TestAlertSweepMarkerIsIdempotent(t *testing.T) {
	repo := newFakeInventoryRepo(stockItem("crit", "Dairy Meal", 1, 10, 65))
	uc := NewAlertsUseCase(repo)

	for i := 0; i < 3; i++ {
		_, err := uc.Run(context.Background())
		require.NoError(t, err)
	}

	item, _ := repo.GetByID(context.Background(), "crit")
	assert.Equal(t, "Main Store"+entity.CriticalMarker, item.Location)
	assert.Equal(t, 1, repo.setLocationCalls["crit"])
}

func TestAlertSweepZeroThreshold(t *testing.T) {
	// Without a configured threshold (coalesced to 0) an item alerts only
	// at zero quantity, and never critically (0 < 0 is false).
	repo := newFakeInventoryRepo(
		stockItem("empty", "Diesel", 0, 0, 180),
		stockItem("stocked", "Petrol", 3, 0, 190),
	)
	uc := NewAlertsUseCase(repo)

	summary, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalLowStock)
	assert.Equal(t, 0, summary.CriticalItems)
	assert.Equal(t, "empty", summary.LowStockItems[0].ID)
}

func TestAlertSweepFlagErrorDoesNotFailRun(t *testing.T) {
	repo := newFakeInventoryRepo(
		stockItem("crit-a", "Dairy Meal", 1, 10, 65),
		stockItem("crit-b", "Layers Mash", 1, 10, 70),
	)
	repo.failIDs["crit-a"] = errors.New("row locked")
	uc := NewAlertsUseCase(repo)

	summary, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.CriticalItems)

	b, _ := repo.GetByID(context.Background(), "crit-b")
	assert.True(t, b.HasCriticalMarker())
}

func TestAlertSweepListErrorAborts(t *testing.T) {
	repo := newFakeInventoryRepo()
	repo.listErr = errors.New("connection refused")
	uc := NewAlertsUseCase(repo)

	summary, err := uc.Run(context.Background())
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, repo.listErr)
}
