package model

import "time"

// PatientNote is a free-form clinical note attached to a patient file
type PatientNote struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Note      string    `json:"note"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePatientNoteRequest represents note creation parameters
type CreatePatientNoteRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	Note      string `json:"note" binding:"required"`
}

// PrescriptionMedication is one prescribed medication line
type PrescriptionMedication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

// Prescription represents a prescription issued to a patient
type Prescription struct {
	ID          string                   `json:"id"`
	PatientID   string                   `json:"patient_id"`
	PatientName string                   `json:"patient_name"`
	DoctorID    string                   `json:"doctor_id"`
	DoctorName  string                   `json:"doctor_name"`
	Date        string                   `json:"date"`
	Medications []PrescriptionMedication `json:"medications"`
	Notes       string                   `json:"notes"`
	CreatedAt   time.Time                `json:"created_at"`
}

// CreatePrescriptionRequest represents prescription issuing parameters
type CreatePrescriptionRequest struct {
	PatientID   string                   `json:"patient_id" binding:"required"`
	DoctorID    string                   `json:"doctor_id" binding:"required"`
	Date        string                   `json:"date" binding:"required,datetime=2006-01-02"`
	Medications []PrescriptionMedication `json:"medications" binding:"required,min=1"`
	Notes       string                   `json:"notes"`
}

// XRayImage represents an uploaded radiograph. ImageData carries the image
// as base64 text, matching the slot store's string-only value model.
type XRayImage struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageData   string    `json:"image_data"`
	Date        string    `json:"date"`
	DoctorID    string    `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateXRayRequest represents x-ray upload parameters
type CreateXRayRequest struct {
	PatientID   string `json:"patient_id" binding:"required"`
	DoctorID    string `json:"doctor_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageData   string `json:"image_data" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
}
