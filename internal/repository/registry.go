package repository

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/store"
)

// Registry bundles every entity collection over one slot store. It is the
// explicit application-state object handed to services instead of ambient
// page state. Generation increments on any mutation so derived views can
// tell whether their inputs changed.
type Registry struct {
	Patients      *Collection[model.Patient]
	Doctors       *Collection[model.Doctor]
	Appointments  *Collection[model.Appointment]
	Treatments    *Collection[model.Treatment]
	Invoices      *Collection[model.Invoice]
	PatientNotes  *Collection[model.PatientNote]
	Prescriptions *Collection[model.Prescription]
	XRays         *Collection[model.XRayImage]
	Inventory     *Collection[model.InventoryItem]
	Notifications *Collection[model.Notification]
	Users         *Collection[model.User]
	Settings      *Document[model.CenterSettings]

	gen atomic.Uint64
}

// NewRegistry builds and loads all collections from the store.
func NewRegistry(ctx context.Context, st store.Store) (*Registry, error) {
	r := &Registry{}
	bump := r.bump

	r.Patients = NewCollection(st, store.SlotPatients, func(p model.Patient) string { return p.ID }, bump)
	r.Doctors = NewCollection(st, store.SlotDoctors, func(d model.Doctor) string { return d.ID }, bump)
	r.Appointments = NewCollection(st, store.SlotAppointments, func(a model.Appointment) string { return a.ID }, bump)
	r.Treatments = NewCollection(st, store.SlotTreatments, func(t model.Treatment) string { return t.ID }, bump)
	r.Invoices = NewCollection(st, store.SlotInvoices, func(i model.Invoice) string { return i.ID }, bump)
	r.PatientNotes = NewCollection(st, store.SlotPatientNotes, func(n model.PatientNote) string { return n.ID }, bump)
	r.Prescriptions = NewCollection(st, store.SlotPrescriptions, func(p model.Prescription) string { return p.ID }, bump)
	r.XRays = NewCollection(st, store.SlotXRays, func(x model.XRayImage) string { return x.ID }, bump)
	r.Inventory = NewCollection(st, store.SlotInventory, func(i model.InventoryItem) string { return i.ID }, bump)
	r.Notifications = NewCollection(st, store.SlotNotifications, func(n model.Notification) string { return n.ID }, bump)
	r.Users = NewCollection(st, store.SlotUsers, func(u model.User) string { return u.ID }, bump)
	r.Settings = NewDocument[model.CenterSettings](st, store.SlotCenterSettings)

	loaders := []func(context.Context) error{
		r.Patients.Load, r.Doctors.Load, r.Appointments.Load, r.Treatments.Load,
		r.Invoices.Load, r.PatientNotes.Load, r.Prescriptions.Load, r.XRays.Load,
		r.Inventory.Load, r.Notifications.Load, r.Users.Load, r.Settings.Load,
	}
	for _, load := range loaders {
		if err := load(ctx); err != nil {
			return nil, fmt.Errorf("failed to load registry: %w", err)
		}
	}
	return r, nil
}

// Generation returns the mutation counter.
func (r *Registry) Generation() uint64 {
	return r.gen.Load()
}

func (r *Registry) bump() {
	r.gen.Add(1)
}

// ClearAll wipes every collection, the settings-screen reset action.
// The settings document itself survives; identity outlasts data resets.
func (r *Registry) ClearAll(ctx context.Context) error {
	clears := []func(context.Context) error{
		r.Patients.Clear, r.Doctors.Clear, r.Appointments.Clear, r.Treatments.Clear,
		r.Invoices.Clear, r.PatientNotes.Clear, r.Prescriptions.Clear, r.XRays.Clear,
		r.Inventory.Clear, r.Notifications.Clear, r.Users.Clear,
	}
	for _, clear := range clears {
		if err := clear(ctx); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}
	}
	return nil
}
