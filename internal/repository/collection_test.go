package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/store"
)

func newTestRegistry(t *testing.T) (*Registry, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	reg, err := NewRegistry(context.Background(), st)
	require.NoError(t, err)
	return reg, st
}

func TestCollectionMirrorsEveryMutation(t *testing.T) {
	ctx := context.Background()
	reg, st := newTestRegistry(t)

	p := model.Patient{ID: "p1", Name: "Alice"}
	require.NoError(t, reg.Patients.Insert(ctx, p))

	raw, found, err := st.Get(ctx, store.SlotPatients)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, raw, "Alice")

	p.Name = "Alice B"
	require.NoError(t, reg.Patients.Update(ctx, p))
	raw, _, _ = st.Get(ctx, store.SlotPatients)
	assert.Contains(t, raw, "Alice B")

	require.NoError(t, reg.Patients.Remove(ctx, "p1"))
	raw, _, _ = st.Get(ctx, store.SlotPatients)
	assert.NotContains(t, raw, "Alice")
}

func TestCollectionReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	reg, err := NewRegistry(ctx, st)
	require.NoError(t, err)
	require.NoError(t, reg.Patients.Insert(ctx, model.Patient{ID: "p1", Name: "Alice"}))
	require.NoError(t, reg.Patients.Insert(ctx, model.Patient{ID: "p2", Name: "Bob"}))

	// A second registry over the same store sees the mirrored state.
	reloaded, err := NewRegistry(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Patients.Len())
	p, ok := reloaded.Patients.Get("p2")
	require.True(t, ok)
	assert.Equal(t, "Bob", p.Name)
}

func TestCollectionCorruptSlotLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, store.SlotPatients, "{not json"))

	reg, err := NewRegistry(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Patients.Len())
}

func TestCollectionUpdateMissingRecord(t *testing.T) {
	reg, _ := newTestRegistry(t)
	err := reg.Patients.Update(context.Background(), model.Patient{ID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry(t)
	require.NoError(t, reg.Patients.Insert(ctx, model.Patient{ID: "p1", Name: "Alice"}))

	list := reg.Patients.List()
	list[0].Name = "mutated"

	p, _ := reg.Patients.Get("p1")
	assert.Equal(t, "Alice", p.Name)
}

func TestGenerationBumpsOnMutation(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry(t)

	before := reg.Generation()
	require.NoError(t, reg.Doctors.Insert(ctx, model.Doctor{ID: "d1"}))
	assert.Greater(t, reg.Generation(), before)

	// Reads leave the generation alone.
	mid := reg.Generation()
	reg.Doctors.List()
	reg.Doctors.Get("d1")
	assert.Equal(t, mid, reg.Generation())
}

func TestClearAllPreservesSettings(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry(t)

	require.NoError(t, reg.Patients.Insert(ctx, model.Patient{ID: "p1"}))
	require.NoError(t, reg.Users.Insert(ctx, model.User{ID: "u1"}))
	require.NoError(t, reg.Settings.Set(ctx, model.CenterSettings{CenterName: "Test Clinic", IsSetupComplete: true}))

	require.NoError(t, reg.ClearAll(ctx))

	assert.Equal(t, 0, reg.Patients.Len())
	assert.Equal(t, 0, reg.Users.Len())
	settings := reg.Settings.Get()
	assert.True(t, settings.IsSetupComplete)
	assert.Equal(t, "Test Clinic", settings.CenterName)
}

func TestDocumentCorruptSlotReadsZero(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, store.SlotCenterSettings, "][banana"))

	reg, err := NewRegistry(ctx, st)
	require.NoError(t, err)
	assert.False(t, reg.Settings.Get().IsSetupComplete)
}
