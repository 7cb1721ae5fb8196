package model

import "time"

// Role constants. A user's role is the sole determinant of its capability
// set; there are no per-user overrides.
const (
	RoleAdmin     = "admin"
	RoleReception = "reception"
	RoleDoctor    = "doctor"
)

// BootstrapAdminID marks the synthesized admin user that exists outside
// the users collection.
const BootstrapAdminID = "default-admin"

// User represents a system user. Password is stored in the clear by
// default for parity with the legacy data; see the hash_passwords option.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"password,omitempty"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	LinkedDoctorID string    `json:"doctor_id,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// Sanitized returns a copy safe to return to clients.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleReception || r == RoleDoctor
}

// CreateUserRequest represents user creation parameters
type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required,min=3"`
	Name           string `json:"name" binding:"required"`
	Role           string `json:"role" binding:"required,oneof=admin reception doctor"`
	LinkedDoctorID string `json:"doctor_id"`
}

// UpdateUserRequest represents user update parameters
type UpdateUserRequest struct {
	Username       *string `json:"username"`
	Password       *string `json:"password" binding:"omitempty,min=3"`
	Name           *string `json:"name"`
	Role           *string `json:"role" binding:"omitempty,oneof=admin reception doctor"`
	LinkedDoctorID *string `json:"doctor_id"`
	IsActive       *bool   `json:"is_active"`
}
