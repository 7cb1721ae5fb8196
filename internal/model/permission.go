package model

// Capability names one gated screen or feature area.
type Capability string

// Capabilities, one per application area.
const (
	CapDashboard      Capability = "dashboard"
	CapNotifications  Capability = "notifications"
	CapPatientFiles   Capability = "patientFiles"
	CapPatients       Capability = "patients"
	CapPatientNotes   Capability = "patientNotes"
	CapDoctors        Capability = "doctors"
	CapAppointments   Capability = "appointments"
	CapTreatments     Capability = "treatments"
	CapPrescriptions  Capability = "prescriptions"
	CapXRays          Capability = "xrays"
	CapInvoices       Capability = "invoices"
	CapInventory      Capability = "inventory"
	CapReports        Capability = "reports"
	CapSettings       Capability = "settings"
	CapUserManagement Capability = "userManagement"
)

// AllCapabilities lists every capability in navigation order.
var AllCapabilities = []Capability{
	CapDashboard,
	CapNotifications,
	CapPatientFiles,
	CapPatients,
	CapPatientNotes,
	CapDoctors,
	CapAppointments,
	CapTreatments,
	CapPrescriptions,
	CapXRays,
	CapInvoices,
	CapInventory,
	CapReports,
	CapSettings,
	CapUserManagement,
}

// PermissionSet maps each capability to whether the role may use it.
type PermissionSet map[Capability]bool

// Allows reports whether the capability is granted. Unknown capabilities
// are denied.
func (p PermissionSet) Allows(c Capability) bool {
	return p[c]
}

// rolePermissions is the fixed role to capability table. Reception handles
// registration, scheduling and billing; doctors work patient files,
// clinical notes, treatments, prescriptions and x-rays but do not schedule
// or bill; admin holds everything.
var rolePermissions = map[string]PermissionSet{
	RoleAdmin: {
		CapDashboard:      true,
		CapNotifications:  true,
		CapPatientFiles:   true,
		CapPatients:       true,
		CapPatientNotes:   true,
		CapDoctors:        true,
		CapAppointments:   true,
		CapTreatments:     true,
		CapPrescriptions:  true,
		CapXRays:          true,
		CapInvoices:       true,
		CapInventory:      true,
		CapReports:        true,
		CapSettings:       true,
		CapUserManagement: true,
	},
	RoleReception: {
		CapDashboard:      true,
		CapNotifications:  true,
		CapPatientFiles:   false,
		CapPatients:       true,
		CapPatientNotes:   false,
		CapDoctors:        false,
		CapAppointments:   true,
		CapTreatments:     false,
		CapPrescriptions:  false,
		CapXRays:          false,
		CapInvoices:       true,
		CapInventory:      false,
		CapReports:        false,
		CapSettings:       false,
		CapUserManagement: false,
	},
	RoleDoctor: {
		CapDashboard:      true,
		CapNotifications:  true,
		CapPatientFiles:   true,
		CapPatients:       false,
		CapPatientNotes:   true,
		CapDoctors:        false,
		CapAppointments:   false,
		CapTreatments:     true,
		CapPrescriptions:  true,
		CapXRays:          true,
		CapInvoices:       false,
		CapInventory:      false,
		CapReports:        false,
		CapSettings:       false,
		CapUserManagement: false,
	},
}

// PermissionsFor returns the capability set for a role. The result is a
// copy, so callers may not mutate the shared table. Unknown roles get an
// empty set, which denies everything.
func PermissionsFor(role string) PermissionSet {
	src, ok := rolePermissions[role]
	if !ok {
		return PermissionSet{}
	}
	out := make(PermissionSet, len(src))
	for c, allowed := range src {
		out[c] = allowed
	}
	return out
}
