package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type Service struct {
	reg *repository.Registry
}

func NewService(reg *repository.Registry) *Service {
	return &Service{reg: reg}
}

func (s *Service) Create(ctx context.Context, req *model.CreateDoctorRequest) (model.Doctor, error) {
	doctor := model.Doctor{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		WorkingDays:    req.WorkingDays,
		WorkingHours:   req.WorkingHours,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.reg.Doctors.Insert(ctx, doctor); err != nil {
		return model.Doctor{}, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor, nil
}

func (s *Service) Get(_ context.Context, id string) (model.Doctor, error) {
	doctor, ok := s.reg.Doctors.Get(id)
	if !ok {
		return model.Doctor{}, repository.ErrNotFound
	}
	return doctor, nil
}

func (s *Service) List(_ context.Context) []model.Doctor {
	return s.reg.Doctors.List()
}

func (s *Service) Update(ctx context.Context, id string, req *model.UpdateDoctorRequest) (model.Doctor, error) {
	doctor, ok := s.reg.Doctors.Get(id)
	if !ok {
		return model.Doctor{}, repository.ErrNotFound
	}
	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.WorkingDays != nil {
		doctor.WorkingDays = req.WorkingDays
	}
	if req.WorkingHours != nil {
		doctor.WorkingHours = *req.WorkingHours
	}
	if req.IsActive != nil {
		doctor.IsActive = *req.IsActive
	}
	if err := s.reg.Doctors.Update(ctx, doctor); err != nil {
		return model.Doctor{}, fmt.Errorf("failed to update doctor: %w", err)
	}
	return doctor, nil
}

// Delete removes the doctor record. Appointments and treatments keep
// their captured doctor name as a fallback for the dangling reference.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.reg.Doctors.Remove(ctx, id)
}
