package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionsForAdmin(t *testing.T) {
	perms := PermissionsFor(RoleAdmin)
	for _, cap := range AllCapabilities {
		assert.True(t, perms.Allows(cap), "admin should have %s", cap)
	}
}

func TestPermissionsForReception(t *testing.T) {
	perms := PermissionsFor(RoleReception)

	allowed := []Capability{CapDashboard, CapNotifications, CapPatients, CapAppointments, CapInvoices}
	for _, cap := range allowed {
		assert.True(t, perms.Allows(cap), "reception should have %s", cap)
	}

	denied := []Capability{
		CapPatientFiles, CapPatientNotes, CapDoctors, CapTreatments,
		CapPrescriptions, CapXRays, CapInventory, CapReports,
		CapSettings, CapUserManagement,
	}
	for _, cap := range denied {
		assert.False(t, perms.Allows(cap), "reception should not have %s", cap)
	}
}

func TestPermissionsForDoctor(t *testing.T) {
	perms := PermissionsFor(RoleDoctor)

	allowed := []Capability{
		CapDashboard, CapNotifications, CapPatientFiles, CapPatientNotes,
		CapTreatments, CapPrescriptions, CapXRays,
	}
	for _, cap := range allowed {
		assert.True(t, perms.Allows(cap), "doctor should have %s", cap)
	}

	denied := []Capability{
		CapPatients, CapDoctors, CapAppointments, CapInvoices,
		CapInventory, CapReports, CapSettings, CapUserManagement,
	}
	for _, cap := range denied {
		assert.False(t, perms.Allows(cap), "doctor should not have %s", cap)
	}
}

func TestPermissionsForIsDeterministic(t *testing.T) {
	first := PermissionsFor(RoleDoctor)
	second := PermissionsFor(RoleDoctor)
	assert.Equal(t, first, second)
}

func TestPermissionsForReturnsCopy(t *testing.T) {
	perms := PermissionsFor(RoleReception)
	perms[CapSettings] = true

	fresh := PermissionsFor(RoleReception)
	assert.False(t, fresh.Allows(CapSettings))
}

func TestPermissionsForUnknownRoleDeniesEverything(t *testing.T) {
	perms := PermissionsFor("superuser")
	require.NotNil(t, perms)
	for _, cap := range AllCapabilities {
		assert.False(t, perms.Allows(cap))
	}
}
