package records

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

// PatientFile aggregates everything on record for one patient.
type PatientFile struct {
	Patient       model.Patient        `json:"patient"`
	Appointments  []model.Appointment  `json:"appointments"`
	Treatments    []model.Treatment    `json:"treatments"`
	Invoices      []model.Invoice      `json:"invoices"`
	Notes         []model.PatientNote  `json:"notes"`
	Prescriptions []model.Prescription `json:"prescriptions"`
	XRays         []model.XRayImage    `json:"xrays"`
}

type Service struct {
	reg *repository.Registry
}

func NewService(reg *repository.Registry) *Service {
	return &Service{reg: reg}
}

// CreateNote records a clinical note. createdBy is the display name of
// the authenticated user taken from the session.
func (s *Service) CreateNote(ctx context.Context, req *model.CreatePatientNoteRequest, createdBy string) (model.PatientNote, error) {
	if _, ok := s.reg.Patients.Get(req.PatientID); !ok {
		return model.PatientNote{}, fmt.Errorf("patient: %w", repository.ErrNotFound)
	}
	note := model.PatientNote{
		ID:        uuid.NewString(),
		PatientID: req.PatientID,
		Note:      req.Note,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reg.PatientNotes.Insert(ctx, note); err != nil {
		return model.PatientNote{}, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

func (s *Service) ListNotes(_ context.Context, patientID string) []model.PatientNote {
	var out []model.PatientNote
	for _, n := range s.reg.PatientNotes.List() {
		if patientID == "" || n.PatientID == patientID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Service) DeleteNote(ctx context.Context, id string) error {
	return s.reg.PatientNotes.Remove(ctx, id)
}

func (s *Service) CreatePrescription(ctx context.Context, req *model.CreatePrescriptionRequest) (model.Prescription, error) {
	patient, ok := s.reg.Patients.Get(req.PatientID)
	if !ok {
		return model.Prescription{}, fmt.Errorf("patient: %w", repository.ErrNotFound)
	}
	doctor, ok := s.reg.Doctors.Get(req.DoctorID)
	if !ok {
		return model.Prescription{}, fmt.Errorf("doctor: %w", repository.ErrNotFound)
	}
	p := model.Prescription{
		ID:          uuid.NewString(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Date:        req.Date,
		Medications: req.Medications,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.reg.Prescriptions.Insert(ctx, p); err != nil {
		return model.Prescription{}, fmt.Errorf("failed to create prescription: %w", err)
	}
	return s.decoratePrescription(p), nil
}

func (s *Service) ListPrescriptions(_ context.Context, patientID string) []model.Prescription {
	var out []model.Prescription
	for _, p := range s.reg.Prescriptions.List() {
		if patientID == "" || p.PatientID == patientID {
			out = append(out, s.decoratePrescription(p))
		}
	}
	return out
}

func (s *Service) GetPrescription(_ context.Context, id string) (model.Prescription, error) {
	p, ok := s.reg.Prescriptions.Get(id)
	if !ok {
		return model.Prescription{}, repository.ErrNotFound
	}
	return s.decoratePrescription(p), nil
}

func (s *Service) DeletePrescription(ctx context.Context, id string) error {
	return s.reg.Prescriptions.Remove(ctx, id)
}

func (s *Service) CreateXRay(ctx context.Context, req *model.CreateXRayRequest) (model.XRayImage, error) {
	patient, ok := s.reg.Patients.Get(req.PatientID)
	if !ok {
		return model.XRayImage{}, fmt.Errorf("patient: %w", repository.ErrNotFound)
	}
	doctor, ok := s.reg.Doctors.Get(req.DoctorID)
	if !ok {
		return model.XRayImage{}, fmt.Errorf("doctor: %w", repository.ErrNotFound)
	}
	x := model.XRayImage{
		ID:          uuid.NewString(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Title:       req.Title,
		Description: req.Description,
		ImageData:   req.ImageData,
		Date:        req.Date,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.reg.XRays.Insert(ctx, x); err != nil {
		return model.XRayImage{}, fmt.Errorf("failed to store x-ray: %w", err)
	}
	return s.decorateXRay(x), nil
}

func (s *Service) ListXRays(_ context.Context, patientID string) []model.XRayImage {
	var out []model.XRayImage
	for _, x := range s.reg.XRays.List() {
		if patientID == "" || x.PatientID == patientID {
			out = append(out, s.decorateXRay(x))
		}
	}
	return out
}

func (s *Service) GetXRay(_ context.Context, id string) (model.XRayImage, error) {
	x, ok := s.reg.XRays.Get(id)
	if !ok {
		return model.XRayImage{}, repository.ErrNotFound
	}
	return s.decorateXRay(x), nil
}

func (s *Service) DeleteXRay(ctx context.Context, id string) error {
	return s.reg.XRays.Remove(ctx, id)
}

// File returns the full patient file in one read.
func (s *Service) File(ctx context.Context, patientID string) (PatientFile, error) {
	patient, ok := s.reg.Patients.Get(patientID)
	if !ok {
		return PatientFile{}, repository.ErrNotFound
	}
	file := PatientFile{Patient: patient}
	for _, a := range s.reg.Appointments.List() {
		if a.PatientID == patientID {
			file.Appointments = append(file.Appointments, a)
		}
	}
	for _, t := range s.reg.Treatments.List() {
		if t.PatientID == patientID {
			file.Treatments = append(file.Treatments, t)
		}
	}
	for _, inv := range s.reg.Invoices.List() {
		if inv.PatientID == patientID {
			file.Invoices = append(file.Invoices, inv)
		}
	}
	file.Notes = s.ListNotes(ctx, patientID)
	file.Prescriptions = s.ListPrescriptions(ctx, patientID)
	file.XRays = s.ListXRays(ctx, patientID)
	return file, nil
}

func (s *Service) decoratePrescription(p model.Prescription) model.Prescription {
	if pat, ok := s.reg.Patients.Get(p.PatientID); ok {
		p.PatientName = pat.Name
	}
	if d, ok := s.reg.Doctors.Get(p.DoctorID); ok {
		p.DoctorName = d.Name
	}
	return p
}

func (s *Service) decorateXRay(x model.XRayImage) model.XRayImage {
	if pat, ok := s.reg.Patients.Get(x.PatientID); ok {
		x.PatientName = pat.Name
	}
	if d, ok := s.reg.Doctors.Get(x.DoctorID); ok {
		x.DoctorName = d.Name
	}
	return x
}
