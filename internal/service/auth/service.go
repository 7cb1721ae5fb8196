package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-api/config"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/internal/store"
	pkgauth "github.com/jwalitptl/clinic-api/pkg/auth"
	"github.com/jwalitptl/clinic-api/pkg/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrNoSession          = errors.New("no active session")
)

// Service authenticates users against the users collection plus the one
// bootstrap admin credential, and keeps the current session mirrored in
// the store so a restart restores it.
type Service struct {
	reg    *repository.Registry
	st     store.Store
	jwtSvc pkgauth.JWTService
	hasher security.PasswordHasher
	cfg    config.AuthConfig
}

func NewService(reg *repository.Registry, st store.Store, jwtSvc pkgauth.JWTService, cfg config.AuthConfig) *Service {
	var hasher security.PasswordHasher = security.PlaintextHasher{}
	if cfg.HashPasswords {
		hasher = security.NewBcryptHasher(cfg.BcryptCost)
	}
	return &Service{reg: reg, st: st, jwtSvc: jwtSvc, hasher: hasher, cfg: cfg}
}

// Hasher exposes the configured password hasher for user management.
func (s *Service) Hasher() security.PasswordHasher {
	return s.hasher
}

// Authenticate validates a username/password pair. The bootstrap admin
// credential short-circuits the users collection entirely; everything
// else is an exact username match followed by a password check and an
// active-account check. Disabled accounts fail with ErrAccountDisabled,
// never ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	if username == s.cfg.BootstrapUsername && password == s.cfg.BootstrapPassword {
		admin := s.bootstrapAdmin()
		if err := s.saveSession(ctx, admin); err != nil {
			return model.User{}, err
		}
		return admin, nil
	}

	for _, u := range s.reg.Users.List() {
		if u.Username != username {
			continue
		}
		if err := s.hasher.Compare(u.Password, password); err != nil {
			return model.User{}, ErrInvalidCredentials
		}
		if !u.IsActive {
			return model.User{}, ErrAccountDisabled
		}
		if err := s.saveSession(ctx, u); err != nil {
			return model.User{}, err
		}
		return u, nil
	}
	return model.User{}, ErrInvalidCredentials
}

// Login authenticates and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	token, err := s.jwtSvc.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &model.LoginResponse{Token: token, User: user.Sanitized()}, nil
}

// ValidateToken parses a session token and resolves it to a live user.
// Bootstrap sessions resolve without touching the users collection; a
// user that was deleted or disabled since login no longer validates.
func (s *Service) ValidateToken(_ context.Context, token string) (model.User, error) {
	claims, err := s.jwtSvc.Validate(token)
	if err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	if claims.UserID == model.BootstrapAdminID {
		return s.bootstrapAdmin(), nil
	}
	user, ok := s.reg.Users.Get(claims.UserID)
	if !ok {
		return model.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return model.User{}, ErrAccountDisabled
	}
	return user, nil
}

// CurrentSession returns the user persisted by the last login, if any.
// An unparseable session slot is treated as no session and cleared.
func (s *Service) CurrentSession(ctx context.Context) (model.User, error) {
	raw, found, err := s.st.Get(ctx, store.SlotCurrentSession)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to read session: %w", err)
	}
	if !found || raw == "" {
		return model.User{}, ErrNoSession
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Warn().Err(err).Msg("corrupt session slot, clearing")
		if delErr := s.st.Delete(ctx, store.SlotCurrentSession); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clear corrupt session")
		}
		return model.User{}, ErrNoSession
	}
	return user, nil
}

// Logout drops the persisted session.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.st.Delete(ctx, store.SlotCurrentSession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *Service) saveSession(ctx context.Context, user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.st.Set(ctx, store.SlotCurrentSession, string(raw)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (s *Service) bootstrapAdmin() model.User {
	return model.User{
		ID:        model.BootstrapAdminID,
		Username:  s.cfg.BootstrapUsername,
		Name:      "System Administrator",
		Role:      model.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}
