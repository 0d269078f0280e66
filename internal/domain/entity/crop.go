package entity

import "time"

// Crop lifecycle statuses.
const (
	CropPlanted        = "planted"
	CropGrowing        = "growing"
	CropFlowering      = "flowering"
	CropReadyToHarvest = "ready_to_harvest"
	CropHarvested      = "harvested"
)

// Crop is one planting on the farm.
type Crop struct {
	ID            string
	Name          string
	Type          string
	FarmLocation  string
	Status        string
	Season        string
	YieldQuantity float64
	YieldUnit     string
	PlantingDate  *time.Time
	HarvestDate   *time.Time
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidCropStatus reports whether st is a known crop status.
func ValidCropStatus(st string) bool {
	switch st {
	case CropPlanted, CropGrowing, CropFlowering, CropReadyToHarvest, CropHarvested:
		return true
	}
	return false
}
