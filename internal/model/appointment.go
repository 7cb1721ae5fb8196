package model

import "time"

// Appointment status constants
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment represents a scheduled visit. PatientName and DoctorName are
// display fallbacks captured at write time; reads re-derive them from the
// canonical patient and doctor collections so renames never go stale.
type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	DoctorID    string    `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Treatment   string    `json:"treatment"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateAppointmentRequest represents appointment booking parameters
type CreateAppointmentRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	DoctorID  string `json:"doctor_id" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Time      string `json:"time" binding:"required"`
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`
}

// UpdateAppointmentRequest represents appointment update parameters
type UpdateAppointmentRequest struct {
	DoctorID  *string `json:"doctor_id"`
	Date      *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time      *string `json:"time"`
	Treatment *string `json:"treatment"`
	Status    *string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	Notes     *string `json:"notes"`
}
