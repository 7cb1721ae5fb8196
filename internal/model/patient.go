package model

import "time"

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Patient represents a registered clinic patient
type Patient struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	Address        string    `json:"address"`
	MedicalHistory string    `json:"medical_history"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreatePatientRequest represents patient creation parameters
type CreatePatientRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Age            int    `json:"age" binding:"required,gte=0,lte=150"`
	Gender         string `json:"gender" binding:"required,oneof=male female"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history"`
}

// UpdatePatientRequest represents patient update parameters
type UpdatePatientRequest struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Age            *int    `json:"age" binding:"omitempty,gte=0,lte=150"`
	Gender         *string `json:"gender" binding:"omitempty,oneof=male female"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
}
