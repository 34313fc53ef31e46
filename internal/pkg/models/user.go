package models

import (
	"github.com/google/uuid"
)

// Role represents the role carried by an authenticated principal
type Role string

const (
	RolePassenger Role = "passenger"
	RoleDriver    Role = "driver"
	RoleAdmin     Role = "admin"
)

// Principal is the authenticated caller of an operation
type Principal struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
}

// IsDriver reports whether the principal acts as a driver
func (p Principal) IsDriver() bool {
	return p.Role == RoleDriver
}

// IsAdmin reports whether the principal has admin rights
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// User is the subset of the identity record this service reads and maintains
type User struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Role       Role      `json:"role" db:"role"`
	Rating     *float64  `json:"rating,omitempty" db:"rating"`
	TotalRides int       `json:"total_rides" db:"total_rides"`
}

// IsValidRole checks a raw role string
func IsValidRole(s string) bool {
	switch Role(s) {
	case RolePassenger, RoleDriver, RoleAdmin:
		return true
	}
	return false
}
