package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

// ErrOverpayment is returned when a payment exceeds the invoice's
// outstanding balance.
var ErrOverpayment = fmt.Errorf("payment exceeds outstanding balance")

type Service struct {
	reg *repository.Registry
}

func NewService(reg *repository.Registry) *Service {
	return &Service{reg: reg}
}

func (s *Service) Create(ctx context.Context, req *model.CreateInvoiceRequest) (model.Invoice, error) {
	patient, ok := s.reg.Patients.Get(req.PatientID)
	if !ok {
		return model.Invoice{}, fmt.Errorf("patient: %w", repository.ErrNotFound)
	}

	var total float64
	for _, item := range req.Items {
		total += item.Cost
	}

	inv := model.Invoice{
		ID:          uuid.NewString(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Items:       req.Items,
		TotalAmount: total,
		PaidAmount:  0,
		Status:      model.InvoiceStatusUnpaid,
		Date:        req.Date,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.reg.Invoices.Insert(ctx, inv); err != nil {
		return model.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}
	return s.decorate(inv), nil
}

func (s *Service) Get(_ context.Context, id string) (model.Invoice, error) {
	inv, ok := s.reg.Invoices.Get(id)
	if !ok {
		return model.Invoice{}, repository.ErrNotFound
	}
	return s.decorate(inv), nil
}

func (s *Service) List(_ context.Context) []model.Invoice {
	invoices := s.reg.Invoices.List()
	for i := range invoices {
		invoices[i] = s.decorate(invoices[i])
	}
	return invoices
}

// RecordPayment applies a payment and re-derives the invoice status:
// full coverage of the total means paid, anything short means partial.
func (s *Service) RecordPayment(ctx context.Context, id string, req *model.RecordPaymentRequest) (model.Invoice, error) {
	inv, ok := s.reg.Invoices.Get(id)
	if !ok {
		return model.Invoice{}, repository.ErrNotFound
	}
	if req.Amount > inv.Outstanding() {
		return model.Invoice{}, ErrOverpayment
	}

	inv.PaidAmount += req.Amount
	if inv.PaidAmount >= inv.TotalAmount {
		inv.Status = model.InvoiceStatusPaid
	} else {
		inv.Status = model.InvoiceStatusPartial
	}

	if err := s.reg.Invoices.Update(ctx, inv); err != nil {
		return model.Invoice{}, fmt.Errorf("failed to record payment: %w", err)
	}
	return s.decorate(inv), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.reg.Invoices.Remove(ctx, id)
}

func (s *Service) decorate(inv model.Invoice) model.Invoice {
	if p, ok := s.reg.Patients.Get(inv.PatientID); ok {
		inv.PatientName = p.Name
	}
	return inv
}
