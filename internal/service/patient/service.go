package patient

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

func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (model.Patient, error) {
	patient := model.Patient{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Phone:          req.Phone,
		Age:            req.Age,
		Gender:         req.Gender,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.reg.Patients.Insert(ctx, patient); err != nil {
		return model.Patient{}, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

func (s *Service) Get(_ context.Context, id string) (model.Patient, error) {
	patient, ok := s.reg.Patients.Get(id)
	if !ok {
		return model.Patient{}, repository.ErrNotFound
	}
	return patient, nil
}

func (s *Service) List(_ context.Context) []model.Patient {
	return s.reg.Patients.List()
}

func (s *Service) Update(ctx context.Context, id string, req *model.UpdatePatientRequest) (model.Patient, error) {
	patient, ok := s.reg.Patients.Get(id)
	if !ok {
		return model.Patient{}, repository.ErrNotFound
	}
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = *req.MedicalHistory
	}
	if err := s.reg.Patients.Update(ctx, patient); err != nil {
		return model.Patient{}, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

// Delete removes the patient record only. Appointments, treatments and
// invoices referencing the id stay behind; there is no cascade.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.reg.Patients.Remove(ctx, id)
}
