package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/config"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/internal/store"
	pkgauth "github.com/jwalitptl/clinic-api/pkg/auth"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:         "test-secret",
		TokenExpiry:       time.Hour,
		BootstrapUsername: "admin",
		BootstrapPassword: "000",
	}
}

func newTestService(t *testing.T) (*Service, *repository.Registry, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	reg, err := repository.NewRegistry(context.Background(), st)
	require.NoError(t, err)
	cfg := testAuthConfig()
	jwtSvc := pkgauth.NewJWTService(cfg.JWTSecret, cfg.TokenExpiry)
	return NewService(reg, st, jwtSvc, cfg), reg, st
}

func TestAuthenticateBootstrapAdmin(t *testing.T) {
	svc, _, _ := newTestService(t)

	user, err := svc.Authenticate(context.Background(), "admin", "000")
	require.NoError(t, err)
	assert.Equal(t, model.BootstrapAdminID, user.ID)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.True(t, user.IsActive)
}

func TestAuthenticateBootstrapWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "admin", "111")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateCollectionUser(t *testing.T) {
	ctx := context.Background()
	svc, reg, _ := newTestService(t)
	require.NoError(t, reg.Users.Insert(ctx, model.User{
		ID: "u1", Username: "maria", Password: "s3cret", Role: model.RoleReception, IsActive: true,
	}))

	user, err := svc.Authenticate(ctx, "maria", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = svc.Authenticate(ctx, "maria", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateDisabledAccount(t *testing.T) {
	ctx := context.Background()
	svc, reg, _ := newTestService(t)
	require.NoError(t, reg.Users.Insert(ctx, model.User{
		ID: "u1", Username: "maria", Password: "s3cret", Role: model.RoleReception, IsActive: false,
	}))

	// Correct credentials on a disabled account must not read as a
	// credential failure.
	_, err := svc.Authenticate(ctx, "maria", "s3cret")
	assert.ErrorIs(t, err, ErrAccountDisabled)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesValidToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	resp, err := svc.Login(ctx, "admin", "000")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.Password)

	user, err := svc.ValidateToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, model.BootstrapAdminID, user.ID)
}

func TestValidateTokenDeletedUser(t *testing.T) {
	ctx := context.Background()
	svc, reg, _ := newTestService(t)
	require.NoError(t, reg.Users.Insert(ctx, model.User{
		ID: "u1", Username: "maria", Password: "s3cret", Role: model.RoleDoctor, IsActive: true,
	}))

	resp, err := svc.Login(ctx, "maria", "s3cret")
	require.NoError(t, err)

	require.NoError(t, reg.Users.Remove(ctx, "u1"))
	_, err = svc.ValidateToken(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionPersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	svc, reg, st := newTestService(t)
	require.NoError(t, reg.Users.Insert(ctx, model.User{
		ID: "u1", Username: "maria", Password: "s3cret", Role: model.RoleReception, IsActive: true,
	}))
	_, err := svc.Authenticate(ctx, "maria", "s3cret")
	require.NoError(t, err)

	// A fresh service over the same store restores the session.
	cfg := testAuthConfig()
	reloaded := NewService(reg, st, pkgauth.NewJWTService(cfg.JWTSecret, cfg.TokenExpiry), cfg)
	user, err := reloaded.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestCurrentSessionCorruptSlotCleared(t *testing.T) {
	ctx := context.Background()
	svc, _, st := newTestService(t)
	require.NoError(t, st.Set(ctx, store.SlotCurrentSession, "{{{{"))

	_, err := svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	// The corrupt slot is gone afterwards.
	_, found, err := st.Get(ctx, store.SlotCurrentSession)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.Authenticate(ctx, "admin", "000")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}
