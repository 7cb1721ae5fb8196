package appointment

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
	require.NoError(t, reg.Doctors.Insert(ctx, model.Doctor{ID: "d1", Name: "Dr. Chen", IsActive: true}))
	return NewService(reg), reg
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	appt, err := svc.Create(ctx, &model.CreateAppointmentRequest{
		PatientID: "p1", DoctorID: "d1", Date: "2026-09-02", Time: "10:30",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, model.AppointmentStatusScheduled, appt.Status)
	assert.Equal(t, "Alice", appt.PatientName)
	assert.Equal(t, "Dr. Chen", appt.DoctorName)
}

func TestCreateAppointmentUnknownReferences(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Create(ctx, &model.CreateAppointmentRequest{
		PatientID: "ghost", DoctorID: "d1", Date: "2026-09-02", Time: "10:30",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Create(ctx, &model.CreateAppointmentRequest{
		PatientID: "p1", DoctorID: "ghost", Date: "2026-09-02", Time: "10:30",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNamesRederivedAfterRename(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	appt, err := svc.Create(ctx, &model.CreateAppointmentRequest{
		PatientID: "p1", DoctorID: "d1", Date: "2026-09-02", Time: "10:30",
	})
	require.NoError(t, err)

	d, _ := reg.Doctors.Get("d1")
	d.Name = "Dr. Chen-Okafor"
	require.NoError(t, reg.Doctors.Update(ctx, d))

	appt, err = svc.Get(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Chen-Okafor", appt.DoctorName)
}

func TestStoredNameSurvivesDanglingReference(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	appt, err := svc.Create(ctx, &model.CreateAppointmentRequest{
		PatientID: "p1", DoctorID: "d1", Date: "2026-09-02", Time: "10:30",
	})
	require.NoError(t, err)

	// Deleting the patient does not cascade; the appointment keeps the
	// captured name as fallback.
	require.NoError(t, reg.Patients.Remove(ctx, "p1"))
	appt, err = svc.Get(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", appt.PatientName)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	appt, err := svc.Create(ctx, &model.CreateAppointmentRequest{
		PatientID: "p1", DoctorID: "d1", Date: "2026-09-02", Time: "10:30",
	})
	require.NoError(t, err)

	completed := model.AppointmentStatusCompleted
	appt, err = svc.Update(ctx, appt.ID, &model.UpdateAppointmentRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, appt.Status)
}
