package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

// ErrParse wraps a malformed import document.
var ErrParse = fmt.Errorf("backup parse error")

// Snapshot is the export document. It carries the five core collections
// only; clinical records, inventory, notifications, users and settings
// stay out of the backup, matching the legacy export surface.
type Snapshot struct {
	ExportedAt   time.Time           `json:"exported_at"`
	Patients     []model.Patient     `json:"patients"`
	Doctors      []model.Doctor      `json:"doctors"`
	Appointments []model.Appointment `json:"appointments"`
	Treatments   []model.Treatment   `json:"treatments"`
	Invoices     []model.Invoice     `json:"invoices"`
}

type Service struct {
	reg *repository.Registry
}

func NewService(reg *repository.Registry) *Service {
	return &Service{reg: reg}
}

// Export captures the current core collections.
func (s *Service) Export(_ context.Context) Snapshot {
	return Snapshot{
		ExportedAt:   time.Now().UTC(),
		Patients:     s.reg.Patients.List(),
		Doctors:      s.reg.Doctors.List(),
		Appointments: s.reg.Appointments.List(),
		Treatments:   s.reg.Treatments.List(),
		Invoices:     s.reg.Invoices.List(),
	}
}

// Import replaces the five core collections wholesale with the snapshot
// contents. There is no referential validation and no merge; collections
// absent from the document become empty.
func (s *Service) Import(ctx context.Context, data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := s.reg.Patients.Replace(ctx, snap.Patients); err != nil {
		return fmt.Errorf("failed to import patients: %w", err)
	}
	if err := s.reg.Doctors.Replace(ctx, snap.Doctors); err != nil {
		return fmt.Errorf("failed to import doctors: %w", err)
	}
	if err := s.reg.Appointments.Replace(ctx, snap.Appointments); err != nil {
		return fmt.Errorf("failed to import appointments: %w", err)
	}
	if err := s.reg.Treatments.Replace(ctx, snap.Treatments); err != nil {
		return fmt.Errorf("failed to import treatments: %w", err)
	}
	if err := s.reg.Invoices.Replace(ctx, snap.Invoices); err != nil {
		return fmt.Errorf("failed to import invoices: %w", err)
	}
	return nil
}
