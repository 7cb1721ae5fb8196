package model

import "time"

// Invoice status constants
const (
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPartial = "partial"
	InvoiceStatusUnpaid  = "unpaid"
)

// InvoiceItem is a billed line on an invoice
type InvoiceItem struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// Invoice represents a patient bill. Status is derived from payments:
// a new invoice starts unpaid, a payment that does not cover the total
// moves it to partial and full coverage moves it to paid.
type Invoice struct {
	ID          string        `json:"id"`
	PatientID   string        `json:"patient_id"`
	PatientName string        `json:"patient_name"`
	Items       []InvoiceItem `json:"items"`
	TotalAmount float64       `json:"total_amount"`
	PaidAmount  float64       `json:"paid_amount"`
	Status      string        `json:"status"`
	Date        string        `json:"date"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Outstanding returns the unpaid remainder of the invoice.
func (i Invoice) Outstanding() float64 {
	return i.TotalAmount - i.PaidAmount
}

// CreateInvoiceRequest represents invoice creation parameters
type CreateInvoiceRequest struct {
	PatientID string        `json:"patient_id" binding:"required"`
	Items     []InvoiceItem `json:"items" binding:"required,min=1,dive"`
	Date      string        `json:"date" binding:"required,datetime=2006-01-02"`
}

// RecordPaymentRequest represents a payment against an invoice
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
