package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LivestockRequest creates or replaces an animal. At least one of
// date_of_birth_on_farm or date_of_arrival_at_farm is required.
type LivestockRequest struct {
	Type                string          `json:"type"`
	Breed               string          `json:"breed"`
	Gender              string          `json:"gender"`
	HealthStatus        string          `json:"health_status"`
	Weight              float64         `json:"weight"`
	DateOfBirth         string          `json:"date_of_birth,omitempty"`
	DateOfBirthOnFarm   string          `json:"date_of_birth_on_farm,omitempty"`
	DateOfArrivalAtFarm string          `json:"date_of_arrival_at_farm,omitempty"`
	PurchasePrice       decimal.Decimal `json:"purchase_price"`
	FarmLocation        string          `json:"farm_location"`
	Notes               string          `json:"notes"`
}

// LivestockResponse is the API view of an animal; Age is derived, never stored.
type LivestockResponse struct {
	ID                  string          `json:"id"`
	Type                string          `json:"type"`
	Breed               string          `json:"breed,omitempty"`
	Gender              string          `json:"gender,omitempty"`
	HealthStatus        string          `json:"health_status"`
	Weight              float64         `json:"weight"`
	Age                 string          `json:"age"`
	DateOfBirth         string          `json:"date_of_birth,omitempty"`
	DateOfBirthOnFarm   string          `json:"date_of_birth_on_farm,omitempty"`
	DateOfArrivalAtFarm string          `json:"date_of_arrival_at_farm,omitempty"`
	PurchasePrice       decimal.Decimal `json:"purchase_price"`
	FarmLocation        string          `json:"farm_location"`
	Notes               string          `json:"notes,omitempty"`
	CreatedBy           string          `json:"created_by"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// CropRequest creates or replaces a crop.
type CropRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	FarmLocation  string  `json:"farm_location"`
	Status        string  `json:"status"`
	Season        string  `json:"season"`
	YieldQuantity float64 `json:"yield_quantity"`
	YieldUnit     string  `json:"yield_unit"`
	PlantingDate  string  `json:"planting_date,omitempty"`
	HarvestDate   string  `json:"harvest_date,omitempty"`
	Notes         string  `json:"notes"`
}

// CropResponse is the API view of a crop.
type CropResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	FarmLocation  string    `json:"farm_location"`
	Status        string    `json:"status"`
	Season        string    `json:"season,omitempty"`
	YieldQuantity float64   `json:"yield_quantity"`
	YieldUnit     string    `json:"yield_unit,omitempty"`
	PlantingDate  string    `json:"planting_date,omitempty"`
	HarvestDate   string    `json:"harvest_date,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TaskRequest creates or replaces a task.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TaskType    string `json:"task_type"`
	Priority    string `json:"priority"`
	TaskDate    string `json:"task_date"` // YYYY-MM-DD
	Completed   bool   `json:"completed"`
	AssignedTo  string `json:"assigned_to"`
}

// TaskResponse is the API view of a task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TaskType    string    `json:"task_type"`
	Priority    string    `json:"priority"`
	TaskDate    string    `json:"task_date"`
	Completed   bool      `json:"completed"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
