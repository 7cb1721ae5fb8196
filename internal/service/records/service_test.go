package records

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
	ctx := context.Background()
	reg, err := repository.NewRegistry(ctx, store.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, reg.Patients.Insert(ctx, model.Patient{ID: "p1", Name: "Alice"}))
	require.NoError(t, reg.Doctors.Insert(ctx, model.Doctor{ID: "d1", Name: "Dr. Chen"}))
	return NewService(reg), reg
}

func TestCreateNoteRequiresPatient(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateNote(ctx, &model.CreatePatientNoteRequest{PatientID: "missing", Note: "n"}, "Dr. Chen")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	note, err := svc.CreateNote(ctx, &model.CreatePatientNoteRequest{PatientID: "p1", Note: "first visit"}, "Dr. Chen")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Chen", note.CreatedBy)
	assert.False(t, note.CreatedAt.IsZero())
}

func TestListNotesNewestFirstAndFiltered(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)
	require.NoError(t, reg.Patients.Insert(ctx, model.Patient{ID: "p2", Name: "Bob"}))

	for _, c := range []struct{ pid, note string }{
		{"p1", "older"}, {"p1", "newer"}, {"p2", "other patient"},
	} {
		_, err := svc.CreateNote(ctx, &model.CreatePatientNoteRequest{PatientID: c.pid, Note: c.note}, "staff")
		require.NoError(t, err)
	}

	notes := svc.ListNotes(ctx, "p1")
	require.Len(t, notes, 2)
	assert.False(t, notes[0].CreatedAt.Before(notes[1].CreatedAt))

	assert.Len(t, svc.ListNotes(ctx, ""), 3)
}

func TestPrescriptionNameDecoration(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	p, err := svc.CreatePrescription(ctx, &model.CreatePrescriptionRequest{
		PatientID: "p1", DoctorID: "d1", Date: "2026-03-01",
		Medications: []model.PrescriptionMedication{{Name: "Amoxicillin", Dosage: "500mg"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.PatientName)
	assert.Equal(t, "Dr. Chen", p.DoctorName)

	// A rename shows up on the next read.
	doc, ok := reg.Doctors.Get("d1")
	require.True(t, ok)
	doc.Name = "Dr. Chen-Wu"
	require.NoError(t, reg.Doctors.Update(ctx, doc))

	got, err := svc.GetPrescription(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Chen-Wu", got.DoctorName)
}

func TestCreateXRayValidatesReferences(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateXRay(ctx, &model.CreateXRayRequest{PatientID: "p1", DoctorID: "missing"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	x, err := svc.CreateXRay(ctx, &model.CreateXRayRequest{
		PatientID: "p1", DoctorID: "d1", Title: "Panoramic", ImageData: "base64data", Date: "2026-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "base64data", x.ImageData)
	assert.Equal(t, "Alice", x.PatientName)
}

func TestPatientFileAggregation(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	require.NoError(t, reg.Appointments.Insert(ctx, model.Appointment{ID: "a1", PatientID: "p1"}))
	require.NoError(t, reg.Appointments.Insert(ctx, model.Appointment{ID: "a2", PatientID: "p2"}))
	require.NoError(t, reg.Treatments.Insert(ctx, model.Treatment{ID: "t1", PatientID: "p1"}))
	require.NoError(t, reg.Invoices.Insert(ctx, model.Invoice{ID: "i1", PatientID: "p1"}))
	_, err := svc.CreateNote(ctx, &model.CreatePatientNoteRequest{PatientID: "p1", Note: "n"}, "staff")
	require.NoError(t, err)

	file, err := svc.File(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", file.Patient.Name)
	assert.Len(t, file.Appointments, 1)
	assert.Len(t, file.Treatments, 1)
	assert.Len(t, file.Invoices, 1)
	assert.Len(t, file.Notes, 1)

	_, err = svc.File(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
