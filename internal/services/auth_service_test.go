// internal/services/auth_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleeffc/sunflowerbeach/internal/config"
	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			AccessTokenTTL: 1,
			LoginDelayMS:   0,
		},
		Checkout: config.CheckoutConfig{
			WhatsAppNumber: "5571991370781",
		},
	}
}

func TestStaffLogin(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAuthService(st, testConfig())

	resp, err := svc.StaffLogin(&StaffLoginRequest{Name: "Adim", Password: "0906"})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", resp.User.ID)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Contains(t, resp.Capabilities, models.CapabilityManageSettings)
}

func TestStaffLoginInvalidCredentials(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAuthService(st, testConfig())

	_, err := svc.StaffLogin(&StaffLoginRequest{Name: "Adim", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.StaffLogin(&StaffLoginRequest{Name: "ninguém", Password: "0906"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStaffLoginPendingVendor(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAuthService(st, testConfig())

	_, err := svc.RegisterVendor(&RegisterVendorRequest{Name: "Loja Nova", Password: "abc"})
	require.NoError(t, err)

	_, err = svc.StaffLogin(&StaffLoginRequest{Name: "Loja Nova", Password: "abc"})
	assert.ErrorIs(t, err, ErrVendorPending)
}

func TestStaffLoginAppliesConfiguredDelay(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.LoginDelayMS = 1500

	st := store.NewSeeded()
	svc := NewAuthService(st, cfg)

	var slept time.Duration
	svc.SetSleeper(func(d time.Duration) { slept = d })

	_, err := svc.StaffLogin(&StaffLoginRequest{Name: "Adim", Password: "0906"})
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, slept)
}

func TestClientLogin(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAuthService(st, testConfig())

	resp, err := svc.ClientLogin(&ClientLoginRequest{Name: "Ana", Phone: "71999990000"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, resp.User.Role)
	assert.Contains(t, resp.User.ID, "client-")
	assert.Equal(t, []models.Capability{models.CapabilityShop}, resp.Capabilities)

	// Clients never collide on name; a second Ana gets her own identity.
	again, err := svc.ClientLogin(&ClientLoginRequest{Name: "Ana", Phone: "71999990001"})
	require.NoError(t, err)
	assert.NotEqual(t, resp.User.ID, again.User.ID)
}

func TestRegisterVendor(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAuthService(st, testConfig())

	user, err := svc.RegisterVendor(&RegisterVendorRequest{Name: "Loja Nova", Password: "abc"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleVendor, user.Role)
	assert.False(t, user.IsApproved)
	assert.Contains(t, user.ID, "vendor-")
}

func TestRegisterVendorNameTaken(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAuthService(st, testConfig())

	_, err := svc.RegisterVendor(&RegisterVendorRequest{Name: "Maria Moda Praia", Password: "abc"})
	assert.ErrorIs(t, err, ErrNameTaken)
	assert.Len(t, st.Users(), 2)
}

func TestLogoutClearsCart(t *testing.T) {
	st := store.NewSeeded()
	svc := NewAuthService(st, testConfig())

	product, err := st.ProductByID("1")
	require.NoError(t, err)
	st.CartAdd("client-1", product)

	svc.Logout("client-1")
	assert.Empty(t, st.Cart("client-1"))
}
