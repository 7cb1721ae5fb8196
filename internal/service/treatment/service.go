package treatment

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

func (s *Service) Create(ctx context.Context, req *model.CreateTreatmentRequest) (model.Treatment, error) {
	patient, ok := s.reg.Patients.Get(req.PatientID)
	if !ok {
		return model.Treatment{}, fmt.Errorf("patient: %w", repository.ErrNotFound)
	}
	doctor, ok := s.reg.Doctors.Get(req.DoctorID)
	if !ok {
		return model.Treatment{}, fmt.Errorf("doctor: %w", repository.ErrNotFound)
	}

	t := model.Treatment{
		ID:            uuid.NewString(),
		PatientID:     patient.ID,
		PatientName:   patient.Name,
		DoctorID:      doctor.ID,
		DoctorName:    doctor.Name,
		TreatmentType: req.TreatmentType,
		Description:   req.Description,
		Cost:          req.Cost,
		Date:          req.Date,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.reg.Treatments.Insert(ctx, t); err != nil {
		return model.Treatment{}, fmt.Errorf("failed to create treatment: %w", err)
	}
	return s.decorate(t), nil
}

func (s *Service) Get(_ context.Context, id string) (model.Treatment, error) {
	t, ok := s.reg.Treatments.Get(id)
	if !ok {
		return model.Treatment{}, repository.ErrNotFound
	}
	return s.decorate(t), nil
}

func (s *Service) List(_ context.Context) []model.Treatment {
	treatments := s.reg.Treatments.List()
	for i := range treatments {
		treatments[i] = s.decorate(treatments[i])
	}
	return treatments
}

// ListForPatient returns the patient's treatments, newest date first.
func (s *Service) ListForPatient(_ context.Context, patientID string) []model.Treatment {
	var out []model.Treatment
	for _, t := range s.reg.Treatments.List() {
		if t.PatientID == patientID {
			out = append(out, s.decorate(t))
		}
	}
	return out
}

func (s *Service) Update(ctx context.Context, id string, req *model.UpdateTreatmentRequest) (model.Treatment, error) {
	t, ok := s.reg.Treatments.Get(id)
	if !ok {
		return model.Treatment{}, repository.ErrNotFound
	}
	if req.TreatmentType != nil {
		t.TreatmentType = *req.TreatmentType
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Cost != nil {
		t.Cost = *req.Cost
	}
	if req.Date != nil {
		t.Date = *req.Date
	}
	if err := s.reg.Treatments.Update(ctx, t); err != nil {
		return model.Treatment{}, fmt.Errorf("failed to update treatment: %w", err)
	}
	return s.decorate(t), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.reg.Treatments.Remove(ctx, id)
}

func (s *Service) decorate(t model.Treatment) model.Treatment {
	if p, ok := s.reg.Patients.Get(t.PatientID); ok {
		t.PatientName = p.Name
	}
	if d, ok := s.reg.Doctors.Get(t.DoctorID); ok {
		t.DoctorName = d.Name
	}
	return t
}
