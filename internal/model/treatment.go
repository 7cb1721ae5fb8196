package model

import "time"

// Treatment represents a performed clinical procedure
type Treatment struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patient_id"`
	PatientName   string    `json:"patient_name"`
	DoctorID      string    `json:"doctor_id"`
	DoctorName    string    `json:"doctor_name"`
	TreatmentType string    `json:"treatment_type"`
	Description   string    `json:"description"`
	Cost          float64   `json:"cost"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateTreatmentRequest represents treatment recording parameters
type CreateTreatmentRequest struct {
	PatientID     string  `json:"patient_id" binding:"required"`
	DoctorID      string  `json:"doctor_id" binding:"required"`
	TreatmentType string  `json:"treatment_type" binding:"required"`
	Description   string  `json:"description"`
	Cost          float64 `json:"cost" binding:"gte=0"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateTreatmentRequest represents treatment update parameters
type UpdateTreatmentRequest struct {
	TreatmentType *string  `json:"treatment_type"`
	Description   *string  `json:"description"`
	Cost          *float64 `json:"cost" binding:"omitempty,gte=0"`
	Date          *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}
