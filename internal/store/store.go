// Package store provides the slot store: a synchronous string key-value
// store that is the application's sole durability mechanism. Each named
// slot holds one independently written JSON document; there are no
// cross-slot transactions.
package store

import "context"

// Slot names, one per persisted collection.
const (
	SlotPatients       = "patients"
	SlotDoctors        = "doctors"
	SlotAppointments   = "appointments"
	SlotTreatments     = "treatments"
	SlotInvoices       = "invoices"
	SlotCenterSettings = "center_settings"
	SlotPatientNotes   = "patient_notes"
	SlotPrescriptions  = "prescriptions"
	SlotXRays          = "xrays"
	SlotInventory      = "inventory"
	SlotNotifications  = "notifications"
	SlotUsers          = "users"
	SlotCurrentSession = "current_session_user"
)

// Store is a synchronous get/set string store keyed by slot name.
// Get reports found=false for a slot that was never written.
type Store interface {
	Get(ctx context.Context, slot string) (value string, found bool, err error)
	Set(ctx context.Context, slot, value string) error
	Delete(ctx context.Context, slot string) error
	Close() error
}
