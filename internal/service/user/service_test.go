package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/internal/store"
	"github.com/jwalitptl/clinic-api/pkg/security"
)

func newTestService(t *testing.T) (*Service, *repository.Registry) {
	t.Helper()
	reg, err := repository.NewRegistry(context.Background(), store.NewMemoryStore())
	require.NoError(t, err)
	return NewService(reg, security.PlaintextHasher{}, "admin"), reg
}

func TestCreateSanitizesPassword(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	u, err := svc.Create(ctx, &model.CreateUserRequest{
		Username: "maria", Password: "secret", Name: "Maria", Role: model.RoleReception,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Empty(t, u.Password)
	assert.True(t, u.IsActive)

	// The stored record keeps the credential.
	stored, ok := reg.Users.Get(u.ID)
	require.True(t, ok)
	assert.Equal(t, "secret", stored.Password)
}

func TestCreateRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Create(ctx, &model.CreateUserRequest{Username: "maria", Password: "x", Role: model.RoleReception})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.CreateUserRequest{Username: "maria", Password: "y", Role: model.RoleDoctor})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestBootstrapUsernameReserved(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, name := range []string{"admin", "Admin", "ADMIN"} {
		_, err := svc.Create(ctx, &model.CreateUserRequest{Username: name, Password: "x", Role: model.RoleReception})
		assert.ErrorIs(t, err, ErrUsernameTaken, name)
	}
}

func TestBootstrapAdminImmutableAndInvisible(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Get(ctx, model.BootstrapAdminID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	name := "Renamed"
	_, err = svc.Update(ctx, model.BootstrapAdminID, &model.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, ErrBootstrapImmutable)

	err = svc.Delete(ctx, model.BootstrapAdminID)
	assert.ErrorIs(t, err, ErrBootstrapImmutable)

	assert.Empty(t, svc.List(ctx))
}

func TestLinkedDoctorValidation(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	_, err := svc.Create(ctx, &model.CreateUserRequest{
		Username: "drchen", Password: "x", Role: model.RoleDoctor, LinkedDoctorID: "missing",
	})
	assert.ErrorIs(t, err, ErrLinkedDoctorMissing)

	require.NoError(t, reg.Doctors.Insert(ctx, model.Doctor{ID: "d1", Name: "Dr. Chen"}))
	u, err := svc.Create(ctx, &model.CreateUserRequest{
		Username: "drchen", Password: "x", Role: model.RoleDoctor, LinkedDoctorID: "d1",
	})
	require.NoError(t, err)
	assert.Equal(t, "d1", u.LinkedDoctorID)
}

func TestUpdateRenameToTakenUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	a, err := svc.Create(ctx, &model.CreateUserRequest{Username: "alpha", Password: "x", Role: model.RoleReception})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &model.CreateUserRequest{Username: "beta", Password: "x", Role: model.RoleReception})
	require.NoError(t, err)

	taken := "beta"
	_, err = svc.Update(ctx, a.ID, &model.UpdateUserRequest{Username: &taken})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// Keeping your own username is not a collision.
	same := "alpha"
	_, err = svc.Update(ctx, a.ID, &model.UpdateUserRequest{Username: &same})
	assert.NoError(t, err)
}

func TestDeactivate(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	u, err := svc.Create(ctx, &model.CreateUserRequest{Username: "maria", Password: "x", Role: model.RoleReception})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(ctx, u.ID, &model.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	stored, ok := reg.Users.Get(u.ID)
	require.True(t, ok)
	assert.False(t, stored.IsActive)
}
