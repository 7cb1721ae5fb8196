package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/internal/store"
)

func newTestService(t *testing.T) (*Service, *repository.Registry) {
	t.Helper()
	reg, err := repository.NewRegistry(context.Background(), store.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, reg.Patients.Insert(context.Background(), model.Patient{ID: "p1", Name: "Alice"}))
	return NewService(reg), reg
}

func TestCreateInvoiceStartsUnpaid(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	inv, err := svc.Create(ctx, &model.CreateInvoiceRequest{
		PatientID: "p1",
		Items:     []model.InvoiceItem{{Name: "Cleaning", Cost: 300}, {Name: "Filling", Cost: 200}},
		Date:      "2026-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusUnpaid, inv.Status)
	assert.Equal(t, 500.0, inv.TotalAmount)
	assert.Equal(t, 0.0, inv.PaidAmount)
}

func TestCreateInvoiceUnknownPatient(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Create(context.Background(), &model.CreateInvoiceRequest{
		PatientID: "ghost",
		Items:     []model.InvoiceItem{{Name: "Cleaning", Cost: 100}},
		Date:      "2026-03-10",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPaymentTransitions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	inv, err := svc.Create(ctx, &model.CreateInvoiceRequest{
		PatientID: "p1",
		Items:     []model.InvoiceItem{{Name: "Root canal", Cost: 500}},
		Date:      "2026-03-10",
	})
	require.NoError(t, err)

	inv, err = svc.RecordPayment(ctx, inv.ID, &model.RecordPaymentRequest{Amount: 200})
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPartial, inv.Status)
	assert.Equal(t, 200.0, inv.PaidAmount)

	inv, err = svc.RecordPayment(ctx, inv.ID, &model.RecordPaymentRequest{Amount: 300})
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, inv.Status)
	assert.Equal(t, 0.0, inv.Outstanding())
}

func TestPaymentCannotExceedOutstanding(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	inv, err := svc.Create(ctx, &model.CreateInvoiceRequest{
		PatientID: "p1",
		Items:     []model.InvoiceItem{{Name: "Cleaning", Cost: 100}},
		Date:      "2026-03-10",
	})
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, inv.ID, &model.RecordPaymentRequest{Amount: 150})
	assert.ErrorIs(t, err, ErrOverpayment)

	// The failed payment left the invoice untouched.
	inv, err = svc.Get(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusUnpaid, inv.Status)
	assert.Equal(t, 0.0, inv.PaidAmount)
}

func TestInvoiceNameRederivedOnRead(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	inv, err := svc.Create(ctx, &model.CreateInvoiceRequest{
		PatientID: "p1",
		Items:     []model.InvoiceItem{{Name: "Cleaning", Cost: 100}},
		Date:      "2026-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", inv.PatientName)

	p, _ := reg.Patients.Get("p1")
	p.Name = "Alice Brown"
	require.NoError(t, reg.Patients.Update(ctx, p))

	inv, err = svc.Get(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Brown", inv.PatientName)
}
