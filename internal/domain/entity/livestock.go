package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Livestock health statuses.
const (
	HealthHealthy        = "healthy"
	HealthNeedsAttention = "needs_attention"
	HealthSick           = "sick"
	HealthQuarantine     = "quarantine"
)

// Livestock is one animal on the farm. Age is never stored; it is derived from
// DateOfBirth (or DateOfBirthOnFarm as fallback) on every read. At least one
// of DateOfBirthOnFarm or DateOfArrivalAtFarm must be set at input time.
type Livestock struct {
	ID                  string
	Type                string // cattle, goat, poultry, ...
	Breed               string
	Gender              string
	HealthStatus        string
	Weight              float64 // kg
	DateOfBirth         *time.Time
	DateOfBirthOnFarm   *time.Time
	DateOfArrivalAtFarm *time.Time
	PurchasePrice       decimal.Decimal
	FarmLocation        string
	Notes               string
	CreatedBy           string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasOriginDate reports whether the animal carries a birth-on-farm or arrival
// date. Enforced at input time only, not as a store constraint.
func (l *Livestock) HasOriginDate() bool {
	return l.DateOfBirthOnFarm != nil || l.DateOfArrivalAtFarm != nil
}

// ValidHealthStatus reports whether st is a known health status.
func ValidHealthStatus(st string) bool {
	switch st {
	case HealthHealthy, HealthNeedsAttention, HealthSick, HealthQuarantine:
		return true
	}
	return false
}
