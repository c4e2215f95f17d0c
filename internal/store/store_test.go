// internal/store/store_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleeffc/sunflowerbeach/internal/models"
)

func TestSeedFixtures(t *testing.T) {
	st := NewSeeded()

	users := st.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "admin-1", users[0].ID)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Equal(t, "vendor-1", users[1].ID)
	assert.True(t, users[1].IsApproved)

	products := st.Products()
	require.Len(t, products, 9)
	assert.Equal(t, "Biquíni Sunflower Gold", products[0].Name)

	assert.Equal(t, DefaultSiteSettings, st.Settings())
	assert.Equal(t, uint64(1), st.CatalogVersion())
}

func TestFindStaff(t *testing.T) {
	st := NewSeeded()

	admin, ok := st.FindStaff("Adim", "0906")
	require.True(t, ok)
	assert.Equal(t, "admin-1", admin.ID)

	_, ok = st.FindStaff("Adim", "wrong")
	assert.False(t, ok)

	_, ok = st.FindStaff("nobody", "0906")
	assert.False(t, ok)
}

func TestFindStaffIgnoresClients(t *testing.T) {
	st := NewSeeded()
	st.AddClient(models.User{ID: "client-9", Name: "Ana", Role: models.RoleClient})

	_, ok := st.FindStaff("Ana", "")
	assert.False(t, ok)
}

func TestRegisterVendorDuplicateName(t *testing.T) {
	st := NewSeeded()

	err := st.RegisterVendor(models.User{ID: "vendor-2", Name: "Maria Moda Praia", Role: models.RoleVendor})
	assert.ErrorIs(t, err, ErrNameTaken)
	assert.Len(t, st.Users(), 2)

	err = st.RegisterVendor(models.User{ID: "vendor-2", Name: "Loja da Praia", Role: models.RoleVendor})
	require.NoError(t, err)
	assert.Len(t, st.Users(), 3)
}

func TestAddClientAllowsDuplicateNames(t *testing.T) {
	st := NewSeeded()

	st.AddClient(models.User{ID: "client-1", Name: "Ana", Role: models.RoleClient})
	st.AddClient(models.User{ID: "client-2", Name: "Ana", Role: models.RoleClient})

	assert.Len(t, st.Users(), 4)
}

func TestApproveVendor(t *testing.T) {
	st := NewSeeded()
	require.NoError(t, st.RegisterVendor(models.User{ID: "vendor-2", Name: "Nova Loja", Role: models.RoleVendor}))

	user, err := st.ApproveVendor("vendor-2")
	require.NoError(t, err)
	assert.True(t, user.IsApproved)

	stored, err := st.UserByID("vendor-2")
	require.NoError(t, err)
	assert.True(t, stored.IsApproved)

	_, err = st.ApproveVendor("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	st := NewSeeded()

	require.NoError(t, st.DeleteUser("vendor-1"))
	_, err := st.UserByID("vendor-1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, st.DeleteUser("vendor-1"), ErrUserNotFound)
}

func TestAddProductPrependsAndBumpsVersion(t *testing.T) {
	st := NewSeeded()
	before := st.CatalogVersion()

	st.AddProduct(models.Product{ID: "prod-x", Name: "Canga Nova", VendorID: "vendor-1"})

	products := st.Products()
	assert.Equal(t, "prod-x", products[0].ID)
	assert.Len(t, products, 10)
	assert.Equal(t, before+1, st.CatalogVersion())
}

func TestDeleteProduct(t *testing.T) {
	st := NewSeeded()
	before := st.CatalogVersion()

	require.NoError(t, st.DeleteProduct("3"))
	_, err := st.ProductByID("3")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Len(t, st.Products(), 8)
	assert.Equal(t, before+1, st.CatalogVersion())

	assert.ErrorIs(t, st.DeleteProduct("3"), ErrProductNotFound)
	assert.Equal(t, before+1, st.CatalogVersion())
}

func TestCartAddAndRemove(t *testing.T) {
	st := NewSeeded()
	product, err := st.ProductByID("1")
	require.NoError(t, err)

	items := st.CartAdd("client-1", product)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	// Same product bumps the line instead of opening a second one.
	items = st.CartAdd("client-1", product)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	other, err := st.ProductByID("2")
	require.NoError(t, err)
	items = st.CartAdd("client-1", other)
	assert.Len(t, items, 2)

	// Remove drops the whole line regardless of quantity.
	require.NoError(t, st.CartRemove("client-1", "1"))
	items = st.Cart("client-1")
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)

	assert.ErrorIs(t, st.CartRemove("client-1", "1"), ErrCartItemMissing)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	st := NewSeeded()
	product, _ := st.ProductByID("1")

	st.CartAdd("client-1", product)
	assert.Empty(t, st.Cart("client-2"))

	st.ClearCart("client-1")
	assert.Empty(t, st.Cart("client-1"))
}

func TestCartKeepsCopyOfDeletedProduct(t *testing.T) {
	st := NewSeeded()
	product, _ := st.ProductByID("1")
	st.CartAdd("client-1", product)

	require.NoError(t, st.DeleteProduct("1"))

	items := st.Cart("client-1")
	require.Len(t, items, 1)
	assert.Equal(t, product.Name, items[0].Name)
}

func TestTranscriptSeedsGreetingOnce(t *testing.T) {
	st := NewSeeded()
	greeting := models.ChatMessage{Role: models.ChatRoleModel, Text: "oi"}

	first := st.Transcript("client-1", greeting)
	require.Len(t, first, 1)
	assert.Equal(t, greeting, first[0])

	st.AppendTurn("client-1", models.ChatMessage{Role: models.ChatRoleUser, Text: "olá"})

	again := st.Transcript("client-1", greeting)
	assert.Len(t, again, 2)
}
