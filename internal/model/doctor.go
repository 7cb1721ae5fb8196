package model

import "time"

// Doctor represents a practicing clinician
type Doctor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Phone          string    `json:"phone"`
	WorkingDays    []string  `json:"working_days"`
	WorkingHours   string    `json:"working_hours"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateDoctorRequest represents doctor creation parameters
type CreateDoctorRequest struct {
	Name           string   `json:"name" binding:"required"`
	Specialization string   `json:"specialization" binding:"required"`
	Phone          string   `json:"phone"`
	WorkingDays    []string `json:"working_days"`
	WorkingHours   string   `json:"working_hours"`
}

// UpdateDoctorRequest represents doctor update parameters
type UpdateDoctorRequest struct {
	Name           *string  `json:"name"`
	Specialization *string  `json:"specialization"`
	Phone          *string  `json:"phone"`
	WorkingDays    []string `json:"working_days"`
	WorkingHours   *string  `json:"working_hours"`
	IsActive       *bool    `json:"is_active"`
}
