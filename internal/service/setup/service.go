package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

var ErrAlreadyComplete = errors.New("setup already completed")

// Service runs the first-launch wizard and manages center settings.
type Service struct {
	reg *repository.Registry
}

func NewService(reg *repository.Registry) *Service {
	return &Service{reg: reg}
}

// Status reports the current settings. A zero-value settings document
// means setup has never run.
func (s *Service) Status(_ context.Context) model.CenterSettings {
	return s.reg.Settings.Get()
}

// Complete finishes the setup wizard. It refuses to run twice; settings
// changes after setup go through Update.
func (s *Service) Complete(ctx context.Context, req *model.CompleteSetupRequest) (model.CenterSettings, error) {
	settings := s.reg.Settings.Get()
	if settings.IsSetupComplete {
		return model.CenterSettings{}, ErrAlreadyComplete
	}
	settings = model.CenterSettings{
		CenterName:      req.CenterName,
		Logo:            req.Logo,
		Phone:           req.Phone,
		Address:         req.Address,
		IsSetupComplete: true,
	}
	if err := s.reg.Settings.Set(ctx, settings); err != nil {
		return model.CenterSettings{}, fmt.Errorf("failed to complete setup: %w", err)
	}
	return settings, nil
}

func (s *Service) Update(ctx context.Context, req *model.UpdateSettingsRequest) (model.CenterSettings, error) {
	settings := s.reg.Settings.Get()
	if req.CenterName != nil {
		settings.CenterName = *req.CenterName
	}
	if req.Logo != nil {
		settings.Logo = *req.Logo
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if err := s.reg.Settings.Set(ctx, settings); err != nil {
		return model.CenterSettings{}, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

// ClearData wipes every entity collection. Center settings and the setup
// flag survive a data reset.
func (s *Service) ClearData(ctx context.Context) error {
	return s.reg.ClearAll(ctx)
}
