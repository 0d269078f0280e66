package entity

import "time"

// Roles for row-level and endpoint authorization.
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleFarmer = "farmer"
)

// User is an authenticated account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile carries the user's display data and role. Role drives RBAC for the
// bulk-update surface (admin/staff only).
type Profile struct {
	ID           string
	UserID       string
	Name         string
	Phone        string
	Role         string
	FarmLocation string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanBulkUpdate reports whether the profile's role may run bulk inventory updates.
func (p *Profile) CanBulkUpdate() bool {
	return p.Role == RoleAdmin || p.Role == RoleStaff
}
