// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
	"github.com/Aleeffc/sunflowerbeach/internal/utils"
)

var ErrForbidden = errors.New("operation not permitted")

// defaultProductImage is used when a listing is published without a photo.
const defaultProductImage = "https://images.unsplash.com/photo-1596454010008-767791992761?q=80&w=1000"

type CatalogService struct {
	store *store.Store
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=3,max=255"`
	Price       float64         `json:"price" validate:"required,gt=0"`
	Category    models.Category `json:"category" validate:"required,category"`
	Image       string          `json:"image,omitempty" validate:"omitempty,url"`
	Description string          `json:"description" validate:"required"`
	Sizes       []string        `json:"sizes,omitempty"`
	Colors      []string        `json:"colors,omitempty"`
	Material    string          `json:"material,omitempty"`
}

func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// ListProducts returns the subset matching the category selector. "all" (or
// an empty selector) returns the full catalog.
func (s *CatalogService) ListProducts(category string) []models.Product {
	products := s.store.Products()
	if category == "" || category == models.CategoryAll {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == models.Category(category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *CatalogService) GetProduct(id string) (models.Product, error) {
	return s.store.ProductByID(id)
}

// CreateProduct publishes a new listing owned by the caller. New listings are
// flagged as new arrivals and show first in the catalog.
func (s *CatalogService) CreateProduct(ownerID string, req *CreateProductRequest) (models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Product{}, fmt.Errorf("validation failed: %w", err)
	}

	owner, err := s.store.UserByID(ownerID)
	if err != nil {
		return models.Product{}, err
	}
	if !models.Authorize(owner.Role, models.CapabilityPublishProducts) {
		return models.Product{}, ErrForbidden
	}

	image := req.Image
	if image == "" {
		image = defaultProductImage
	}
	sizes := req.Sizes
	if len(sizes) == 0 {
		sizes = []string{"Único"}
	}

	product := models.Product{
		ID:          "prod-" + uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Image:       image,
		Description: req.Description,
		IsNew:       true,
		VendorID:    owner.ID,
		Sizes:       sizes,
		Colors:      req.Colors,
		Material:    req.Material,
	}

	s.store.AddProduct(product)
	return product, nil
}

// DeleteProduct removes a listing. Admins may delete any; vendors only their
// own.
func (s *CatalogService) DeleteProduct(actorID, id string) error {
	actor, err := s.store.UserByID(actorID)
	if err != nil {
		return err
	}

	product, err := s.store.ProductByID(id)
	if err != nil {
		return err
	}

	if !models.Authorize(actor.Role, models.CapabilityDeleteAnyProduct) {
		if !models.Authorize(actor.Role, models.CapabilityDeleteOwnProduct) || product.VendorID != actor.ID {
			return ErrForbidden
		}
	}

	return s.store.DeleteProduct(id)
}

// ProductsOf lists the ads owned by one identity; admins see everything.
func (s *CatalogService) ProductsOf(userID string) ([]models.Product, error) {
	user, err := s.store.UserByID(userID)
	if err != nil {
		return nil, err
	}

	products := s.store.Products()
	if models.Authorize(user.Role, models.CapabilityViewAllReports) {
		return products, nil
	}

	mine := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.VendorID == user.ID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}
