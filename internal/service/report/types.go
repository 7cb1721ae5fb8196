package report

import "github.com/jwalitptl/clinic-api/internal/model"

// DashboardReport is the landing-page snapshot.
type DashboardReport struct {
	TotalPatients        int                 `json:"total_patients"`
	ActiveDoctors        int                 `json:"active_doctors"`
	TodayAppointments    int                 `json:"today_appointments"`
	TotalRevenue         float64             `json:"total_revenue"`
	PendingAmount        float64             `json:"pending_amount"`
	RecentPatients       []model.Patient     `json:"recent_patients"`
	UpcomingAppointments []model.Appointment `json:"upcoming_appointments"`
}

// TreatmentTypeStat aggregates treatments sharing one type.
type TreatmentTypeStat struct {
	Type         string  `json:"type"`
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
	AveragePrice int     `json:"average_price"`
}

// MonthlyReport folds one calendar month of activity. Month is the
// YYYY-MM prefix the entities were filtered by.
type MonthlyReport struct {
	Month                 string              `json:"month"`
	TotalAppointments     int                 `json:"total_appointments"`
	CompletedAppointments int                 `json:"completed_appointments"`
	CancelledAppointments int                 `json:"cancelled_appointments"`
	ScheduledAppointments int                 `json:"scheduled_appointments"`
	NewPatients           int                 `json:"new_patients"`
	TotalTreatments       int                 `json:"total_treatments"`
	TotalRevenue          float64             `json:"total_revenue"`
	TotalPaid             float64             `json:"total_paid"`
	TotalPending          float64             `json:"total_pending"`
	TreatmentsByType      []TreatmentTypeStat `json:"treatments_by_type"`
}

// YearlyReport carries all twelve monthly folds plus year totals.
type YearlyReport struct {
	Year                  string          `json:"year"`
	Months                []MonthlyReport `json:"months"`
	TotalAppointments     int             `json:"total_appointments"`
	CompletedAppointments int             `json:"completed_appointments"`
	NewPatients           int             `json:"new_patients"`
	TotalTreatments       int             `json:"total_treatments"`
	TotalRevenue          float64         `json:"total_revenue"`
	TotalPaid             float64         `json:"total_paid"`
	TotalPending          float64         `json:"total_pending"`
}

// DoctorPerformance summarizes one doctor's workload.
type DoctorPerformance struct {
	DoctorID              string  `json:"doctor_id"`
	DoctorName            string  `json:"doctor_name"`
	TotalAppointments     int     `json:"total_appointments"`
	CompletedAppointments int     `json:"completed_appointments"`
	TotalTreatments       int     `json:"total_treatments"`
	TreatmentRevenue      float64 `json:"treatment_revenue"`
}

// FinancialReport folds one year of invoices plus current stock value.
type FinancialReport struct {
	Year            string  `json:"year"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalPaid       float64 `json:"total_paid"`
	TotalPending    float64 `json:"total_pending"`
	PaidInvoices    int     `json:"paid_invoices"`
	PartialInvoices int     `json:"partial_invoices"`
	UnpaidInvoices  int     `json:"unpaid_invoices"`
	InventoryValue  float64 `json:"inventory_value"`
	CollectionRate  int     `json:"collection_rate"`
}
