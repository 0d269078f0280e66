package entity

import "time"

// Task types and priorities.
const (
	TaskCrop        = "crop"
	TaskLivestock   = "livestock"
	TaskMaintenance = "maintenance"
	TaskHarvest     = "harvest"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is one scheduled farm chore.
type Task struct {
	ID          string
	Title       string
	Description string
	TaskType    string
	Priority    string
	TaskDate    time.Time
	Completed   bool
	AssignedTo  string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidTaskType reports whether t is a known task type.
func ValidTaskType(t string) bool {
	switch t {
	case TaskCrop, TaskLivestock, TaskMaintenance, TaskHarvest:
		return true
	}
	return false
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
