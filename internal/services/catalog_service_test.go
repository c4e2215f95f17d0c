// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
)

func TestListProductsFilters(t *testing.T) {
	st := store.NewSeeded()
	svc := NewCatalogService(st)

	assert.Len(t, svc.ListProducts(""), 9)
	assert.Len(t, svc.ListProducts(models.CategoryAll), 9)

	bikinis := svc.ListProducts(string(models.CategoryBikinis))
	require.Len(t, bikinis, 3)
	for _, p := range bikinis {
		assert.Equal(t, models.CategoryBikinis, p.Category)
	}

	assert.Empty(t, svc.ListProducts("Sapatos"))
}

func TestCreateProductDefaults(t *testing.T) {
	st := store.NewSeeded()
	svc := NewCatalogService(st)

	product, err := svc.CreateProduct("vendor-1", &CreateProductRequest{
		Name:        "Canga Por do Sol",
		Price:       99.90,
		Category:    models.CategoryCoverUps,
		Description: "Leve e estampada.",
	})
	require.NoError(t, err)

	assert.Contains(t, product.ID, "prod-")
	assert.True(t, product.IsNew)
	assert.Equal(t, "vendor-1", product.VendorID)
	assert.Equal(t, []string{"Único"}, product.Sizes)
	assert.NotEmpty(t, product.Image)

	// Newly published ads show first.
	assert.Equal(t, product.ID, st.Products()[0].ID)
}

func TestCreateProductRequiresPublisher(t *testing.T) {
	st := store.NewSeeded()
	st.AddClient(models.User{ID: "client-1", Name: "Ana", Role: models.RoleClient})
	svc := NewCatalogService(st)

	req := &CreateProductRequest{
		Name:        "Canga Por do Sol",
		Price:       99.90,
		Category:    models.CategoryCoverUps,
		Description: "Leve e estampada.",
	}

	_, err := svc.CreateProduct("client-1", req)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.CreateProduct("missing", req)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestCreateProductValidation(t *testing.T) {
	st := store.NewSeeded()
	svc := NewCatalogService(st)

	_, err := svc.CreateProduct("vendor-1", &CreateProductRequest{
		Name:        "Canga",
		Price:       99.90,
		Category:    "Sapatos",
		Description: "Inválida.",
	})
	assert.Error(t, err)
	assert.Len(t, st.Products(), 9)
}

func TestDeleteProductOwnership(t *testing.T) {
	st := store.NewSeeded()
	svc := NewCatalogService(st)

	// Product 3 belongs to vendor-1; product 1 to admin-1.
	require.NoError(t, svc.DeleteProduct("vendor-1", "3"))

	err := svc.DeleteProduct("vendor-1", "1")
	assert.ErrorIs(t, err, ErrForbidden)

	// Admin deletes anything.
	require.NoError(t, svc.DeleteProduct("admin-1", "5"))

	err = svc.DeleteProduct("admin-1", "missing")
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductsOf(t *testing.T) {
	st := store.NewSeeded()
	svc := NewCatalogService(st)

	mine, err := svc.ProductsOf("vendor-1")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for _, p := range mine {
		assert.Equal(t, "vendor-1", p.VendorID)
	}

	all, err := svc.ProductsOf("admin-1")
	require.NoError(t, err)
	assert.Len(t, all, 9)
}
