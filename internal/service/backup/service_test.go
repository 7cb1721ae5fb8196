package backup

import (
	"context"
	"encoding/json"
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
	return NewService(reg), reg
}

func TestExportCoversCoreCollectionsOnly(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	require.NoError(t, reg.Patients.Insert(ctx, model.Patient{ID: "p1", Name: "Alice"}))
	require.NoError(t, reg.Doctors.Insert(ctx, model.Doctor{ID: "d1", Name: "Dr. Chen"}))
	require.NoError(t, reg.Inventory.Insert(ctx, model.InventoryItem{ID: "n1", Name: "Gloves"}))
	require.NoError(t, reg.Users.Insert(ctx, model.User{ID: "u1", Username: "reception"}))

	snap := svc.Export(ctx)
	assert.False(t, snap.ExportedAt.IsZero())
	require.Len(t, snap.Patients, 1)
	assert.Equal(t, "Alice", snap.Patients[0].Name)
	require.Len(t, snap.Doctors, 1)

	// Inventory and users never leave through the export document.
	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Gloves")
	assert.NotContains(t, string(raw), "reception")
}

func TestImportReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	require.NoError(t, reg.Patients.Insert(ctx, model.Patient{ID: "old", Name: "Old"}))
	require.NoError(t, reg.Treatments.Insert(ctx, model.Treatment{ID: "t-old"}))

	doc, err := json.Marshal(Snapshot{
		Patients: []model.Patient{{ID: "new", Name: "New"}},
		Doctors:  []model.Doctor{{ID: "d1", Name: "Dr. Okafor"}},
	})
	require.NoError(t, err)
	require.NoError(t, svc.Import(ctx, doc))

	patients := reg.Patients.List()
	require.Len(t, patients, 1)
	assert.Equal(t, "new", patients[0].ID)
	assert.Equal(t, 1, reg.Doctors.Len())

	// Collections absent from the document are emptied, not kept.
	assert.Equal(t, 0, reg.Treatments.Len())
}

func TestImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	require.NoError(t, reg.Patients.Insert(ctx, model.Patient{ID: "p1", Name: "Alice"}))
	require.NoError(t, reg.Invoices.Insert(ctx, model.Invoice{
		ID: "i1", PatientID: "p1", TotalAmount: 300, PaidAmount: 100, Status: model.InvoiceStatusPartial,
	}))

	doc, err := json.Marshal(svc.Export(ctx))
	require.NoError(t, err)

	require.NoError(t, reg.ClearAll(ctx))
	require.NoError(t, svc.Import(ctx, doc))

	invoices := reg.Invoices.List()
	require.Len(t, invoices, 1)
	assert.Equal(t, 100.0, invoices[0].PaidAmount)
	assert.Equal(t, model.InvoiceStatusPartial, invoices[0].Status)
}

func TestImportRejectsMalformedDocument(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	require.NoError(t, reg.Patients.Insert(ctx, model.Patient{ID: "p1", Name: "Alice"}))

	err := svc.Import(ctx, []byte("{not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)

	// A failed parse must not touch existing data.
	assert.Equal(t, 1, reg.Patients.Len())
}
