// internal/services/admin_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
)

func TestListUsersExcludesCaller(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAdminService(st)

	users := svc.ListUsers("admin-1")
	require.Len(t, users, 1)
	assert.Equal(t, "vendor-1", users[0].ID)
}

func TestPendingVendors(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAdminService(st)

	assert.Empty(t, svc.PendingVendors())

	require.NoError(t, st.RegisterVendor(models.User{ID: "vendor-2", Name: "Pendente", Role: models.RoleVendor}))

	pending := svc.PendingVendors()
	require.Len(t, pending, 1)
	assert.Equal(t, "vendor-2", pending[0].ID)

	_, err := svc.ApproveVendor("vendor-2")
	require.NoError(t, err)
	assert.Empty(t, svc.PendingVendors())
}

func TestDeleteUserService(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAdminService(st)

	require.NoError(t, svc.DeleteUser("vendor-1"))
	assert.ErrorIs(t, svc.DeleteUser("vendor-1"), store.ErrUserNotFound)
}

func TestUpdateSettings(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAdminService(st)

	updated := store.DefaultSiteSettings
	updated.HeroTitle = "Verão 2026"

	settings, err := svc.UpdateSettings(&updated)
	require.NoError(t, err)
	assert.Equal(t, "Verão 2026", settings.HeroTitle)
	assert.Equal(t, "Verão 2026", st.Settings().HeroTitle)
}

func TestUpdateSettingsValidation(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAdminService(st)

	bad := store.DefaultSiteSettings
	bad.HeroImage = "not-a-url"

	_, err := svc.UpdateSettings(&bad)
	assert.Error(t, err)
	assert.Equal(t, store.DefaultSiteSettings, st.Settings(), "rejected update leaves settings untouched")
}
