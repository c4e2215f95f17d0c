// internal/services/admin_service.go
package services

import (
	"fmt"

	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
	"github.com/Aleeffc/sunflowerbeach/internal/utils"
)

type AdminService struct {
	store *store.Store
}

func NewAdminService(st *store.Store) *AdminService {
	return &AdminService{store: st}
}

// ListUsers returns every identity except the caller, the way the admin
// panel presents them.
func (s *AdminService) ListUsers(excludeID string) []models.User {
	users := s.store.Users()
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != excludeID {
			out = append(out, u)
		}
	}
	return out
}

func (s *AdminService) PendingVendors() []models.User {
	var pending []models.User
	for _, u := range s.store.Users() {
		if u.Role == models.RoleVendor && !u.IsApproved {
			pending = append(pending, u)
		}
	}
	return pending
}

// ApproveVendor flips the approval flag so the vendor can authenticate into
// staff views.
func (s *AdminService) ApproveVendor(id string) (models.User, error) {
	return s.store.ApproveVendor(id)
}

func (s *AdminService) DeleteUser(id string) error {
	return s.store.DeleteUser(id)
}

func (s *AdminService) Settings() models.SiteSettings {
	return s.store.Settings()
}

// UpdateSettings replaces the single global customization record. No
// versioning and no history.
func (s *AdminService) UpdateSettings(settings *models.SiteSettings) (models.SiteSettings, error) {
	if err := utils.ValidateStruct(settings); err != nil {
		return models.SiteSettings{}, fmt.Errorf("validation failed: %w", err)
	}
	s.store.UpdateSettings(*settings)
	return s.store.Settings(), nil
}
