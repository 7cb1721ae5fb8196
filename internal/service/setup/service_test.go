package setup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/internal/store"
)

func newTestService(t *testing.T) (*Service, *repository.Registry, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	reg, err := repository.NewRegistry(context.Background(), st)
	require.NoError(t, err)
	return NewService(reg), reg, st
}

func TestSetupLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _, st := newTestService(t)

	assert.False(t, svc.Status(ctx).IsSetupComplete)

	settings, err := svc.Complete(ctx, &model.CompleteSetupRequest{
		CenterName: "Smile Clinic", Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.True(t, settings.IsSetupComplete)
	assert.Equal(t, "Smile Clinic", svc.Status(ctx).CenterName)

	_, err = svc.Complete(ctx, &model.CompleteSetupRequest{CenterName: "Again"})
	assert.ErrorIs(t, err, ErrAlreadyComplete)

	// The completed settings survive a restart against the same store.
	reg2, err := repository.NewRegistry(ctx, st)
	require.NoError(t, err)
	assert.True(t, NewService(reg2).Status(ctx).IsSetupComplete)
}

func TestUpdatePartial(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.Complete(ctx, &model.CompleteSetupRequest{
		CenterName: "Smile Clinic", Phone: "555-0100", Address: "1 Main St",
	})
	require.NoError(t, err)

	phone := "555-0199"
	settings, err := svc.Update(ctx, &model.UpdateSettingsRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", settings.Phone)
	assert.Equal(t, "Smile Clinic", settings.CenterName)
	assert.Equal(t, "1 Main St", settings.Address)
	assert.True(t, settings.IsSetupComplete)
}

func TestClearDataKeepsSettings(t *testing.T) {
	ctx := context.Background()
	svc, reg, _ := newTestService(t)

	_, err := svc.Complete(ctx, &model.CompleteSetupRequest{CenterName: "Smile Clinic"})
	require.NoError(t, err)
	require.NoError(t, reg.Patients.Insert(ctx, model.Patient{ID: "p1", Name: "Alice"}))
	require.NoError(t, reg.Invoices.Insert(ctx, model.Invoice{ID: "i1"}))

	require.NoError(t, svc.ClearData(ctx))

	assert.Equal(t, 0, reg.Patients.Len())
	assert.Equal(t, 0, reg.Invoices.Len())
	assert.True(t, svc.Status(ctx).IsSetupComplete)
	assert.Equal(t, "Smile Clinic", svc.Status(ctx).CenterName)
}
