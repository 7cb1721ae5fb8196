package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/pkg/security"
)

var (
	ErrUsernameTaken       = errors.New("username already taken")
	ErrBootstrapImmutable  = errors.New("bootstrap admin cannot be managed")
	ErrLinkedDoctorMissing = errors.New("linked doctor not found")
)

// Service manages user accounts. The bootstrap admin lives outside the
// collection and is invisible to every operation here.
type Service struct {
	reg               *repository.Registry
	hasher            security.PasswordHasher
	bootstrapUsername string
}

func NewService(reg *repository.Registry, hasher security.PasswordHasher, bootstrapUsername string) *Service {
	return &Service{reg: reg, hasher: hasher, bootstrapUsername: bootstrapUsername}
}

func (s *Service) Create(ctx context.Context, req *model.CreateUserRequest) (model.User, error) {
	if s.usernameTaken(req.Username, "") {
		return model.User{}, ErrUsernameTaken
	}
	if req.Role == model.RoleDoctor && req.LinkedDoctorID != "" {
		if _, ok := s.reg.Doctors.Get(req.LinkedDoctorID); !ok {
			return model.User{}, ErrLinkedDoctorMissing
		}
	}
	password, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	u := model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Password:       password,
		Name:           req.Name,
		Role:           req.Role,
		LinkedDoctorID: req.LinkedDoctorID,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.reg.Users.Insert(ctx, u); err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u.Sanitized(), nil
}

func (s *Service) Get(_ context.Context, id string) (model.User, error) {
	u, ok := s.reg.Users.Get(id)
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u.Sanitized(), nil
}

func (s *Service) List(_ context.Context) []model.User {
	users := s.reg.Users.List()
	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users
}

func (s *Service) Update(ctx context.Context, id string, req *model.UpdateUserRequest) (model.User, error) {
	if id == model.BootstrapAdminID {
		return model.User{}, ErrBootstrapImmutable
	}
	u, ok := s.reg.Users.Get(id)
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	if req.Username != nil && *req.Username != u.Username {
		if s.usernameTaken(*req.Username, id) {
			return model.User{}, ErrUsernameTaken
		}
		u.Username = *req.Username
	}
	if req.Password != nil && *req.Password != "" {
		password, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		u.Password = password
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.LinkedDoctorID != nil {
		if *req.LinkedDoctorID != "" {
			if _, ok := s.reg.Doctors.Get(*req.LinkedDoctorID); !ok {
				return model.User{}, ErrLinkedDoctorMissing
			}
		}
		u.LinkedDoctorID = *req.LinkedDoctorID
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if err := s.reg.Users.Update(ctx, u); err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return u.Sanitized(), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == model.BootstrapAdminID {
		return ErrBootstrapImmutable
	}
	return s.reg.Users.Remove(ctx, id)
}

// usernameTaken also reserves the bootstrap credential's username so no
// collection account can shadow it.
func (s *Service) usernameTaken(username, excludeID string) bool {
	if strings.EqualFold(username, s.bootstrapUsername) {
		return true
	}
	for _, u := range s.reg.Users.List() {
		if u.ID != excludeID && u.Username == username {
			return true
		}
	}
	return false
}
