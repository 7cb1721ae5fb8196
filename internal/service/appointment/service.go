package appointment

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

func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (model.Appointment, error) {
	patient, ok := s.reg.Patients.Get(req.PatientID)
	if !ok {
		return model.Appointment{}, fmt.Errorf("patient: %w", repository.ErrNotFound)
	}
	doctor, ok := s.reg.Doctors.Get(req.DoctorID)
	if !ok {
		return model.Appointment{}, fmt.Errorf("doctor: %w", repository.ErrNotFound)
	}

	appt := model.Appointment{
		ID:          uuid.NewString(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Date:        req.Date,
		Time:        req.Time,
		Treatment:   req.Treatment,
		Status:      model.AppointmentStatusScheduled,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.reg.Appointments.Insert(ctx, appt); err != nil {
		return model.Appointment{}, fmt.Errorf("failed to create appointment: %w", err)
	}
	return s.decorate(appt), nil
}

func (s *Service) Get(_ context.Context, id string) (model.Appointment, error) {
	appt, ok := s.reg.Appointments.Get(id)
	if !ok {
		return model.Appointment{}, repository.ErrNotFound
	}
	return s.decorate(appt), nil
}

func (s *Service) List(_ context.Context) []model.Appointment {
	appts := s.reg.Appointments.List()
	for i := range appts {
		appts[i] = s.decorate(appts[i])
	}
	return appts
}

func (s *Service) Update(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (model.Appointment, error) {
	appt, ok := s.reg.Appointments.Get(id)
	if !ok {
		return model.Appointment{}, repository.ErrNotFound
	}
	if req.DoctorID != nil {
		doctor, ok := s.reg.Doctors.Get(*req.DoctorID)
		if !ok {
			return model.Appointment{}, fmt.Errorf("doctor: %w", repository.ErrNotFound)
		}
		appt.DoctorID = doctor.ID
		appt.DoctorName = doctor.Name
	}
	if req.Date != nil {
		appt.Date = *req.Date
	}
	if req.Time != nil {
		appt.Time = *req.Time
	}
	if req.Treatment != nil {
		appt.Treatment = *req.Treatment
	}
	if req.Status != nil {
		appt.Status = *req.Status
	}
	if req.Notes != nil {
		appt.Notes = *req.Notes
	}
	if err := s.reg.Appointments.Update(ctx, appt); err != nil {
		return model.Appointment{}, fmt.Errorf("failed to update appointment: %w", err)
	}
	return s.decorate(appt), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.reg.Appointments.Remove(ctx, id)
}

// decorate re-derives display names from the canonical patient and
// doctor collections so a rename shows up everywhere on the next read.
// The stored names survive as fallback when the reference dangles.
func (s *Service) decorate(appt model.Appointment) model.Appointment {
	if p, ok := s.reg.Patients.Get(appt.PatientID); ok {
		appt.PatientName = p.Name
	}
	if d, ok := s.reg.Doctors.Get(appt.DoctorID); ok {
		appt.DoctorName = d.Name
	}
	return appt
}
