// internal/store/store.go
package store

import (
	"errors"
	"sync"

	"github.com/Aleeffc/sunflowerbeach/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrNameTaken       = errors.New("username already taken")
	ErrCartItemMissing = errors.New("cart item not found")
)

// Store owns the whole application state: users, products, site settings,
// per-user carts and stylist transcripts. Everything lives in process memory
// and is lost on restart; there is no persistence layer.
//
// All mutations go through named operations so the invariants (unique ids,
// unapproved vendors kept out, cart line uniqueness) stay centralized.
type Store struct {
	mu             sync.RWMutex
	users          []*models.User
	products       []*models.Product
	settings       models.SiteSettings
	carts          map[string][]*models.CartItem
	transcripts    map[string][]models.ChatMessage
	catalogVersion uint64
}

func New() *Store {
	return &Store{
		carts:       make(map[string][]*models.CartItem),
		transcripts: make(map[string][]models.ChatMessage),
	}
}

// CatalogVersion increments on every product mutation. Derived data that must
// stay stable per catalog snapshot (the mock analytics) memoizes on it.
func (s *Store) CatalogVersion() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogVersion
}

// --- Users ---

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out
}

func (s *Store) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return *u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// FindStaff scans for an exact name+password match among staff identities.
// Credentials are stored and compared in plaintext.
func (s *Store) FindStaff(name, password string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Role != models.RoleClient && u.Name == name && u.CheckPassword(password) {
			return *u, true
		}
	}
	return models.User{}, false
}

// AddClient appends a client identity. Clients are throwaway per-session
// accounts, so no uniqueness is enforced on their names.
func (s *Store) AddClient(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := u
	s.users = append(s.users, &added)
}

// RegisterVendor appends a vendor request. A name already present among any
// existing identity is rejected, leaving the user list untouched.
func (s *Store) RegisterVendor(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Name == u.Name {
			return ErrNameTaken
		}
	}
	added := u
	s.users = append(s.users, &added)
	return nil
}

func (s *Store) ApproveVendor(id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u.IsApproved = true
			return *u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}

// --- Products ---

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out
}

func (s *Store) ProductByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return *p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// AddProduct prepends so newly published ads show first, matching the
// storefront ordering.
func (s *Store) AddProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := p
	s.products = append([]*models.Product{&added}, s.products...)
	s.catalogVersion++
}

// DeleteProduct removes exactly the product with the given id, preserving the
// order of the rest. Carts already holding the product keep their line; the
// cart owns a copy.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.catalogVersion++
			return nil
		}
	}
	return ErrProductNotFound
}

// --- Site settings ---

func (s *Store) Settings() models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) UpdateSettings(settings models.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// --- Carts ---

func (s *Store) Cart(userID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartCopyLocked(userID)
}

// CartAdd bumps the quantity of an existing line or opens a new one at
// quantity 1. Lines are keyed by product id.
func (s *Store) CartAdd(userID string, p models.Product) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.carts[userID] {
		if item.ID == p.ID {
			item.Quantity++
			return s.cartCopyLocked(userID)
		}
	}
	s.carts[userID] = append(s.carts[userID], &models.CartItem{Product: p, Quantity: 1})
	return s.cartCopyLocked(userID)
}

// CartRemove deletes the whole line regardless of quantity.
func (s *Store) CartRemove(userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[userID]
	for i, item := range items {
		if item.ID == productID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrCartItemMissing
}

func (s *Store) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *Store) cartCopyLocked(userID string) []models.CartItem {
	items := s.carts[userID]
	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	return out
}

// --- Stylist transcripts ---

// Transcript returns the user's transcript, seeding it with the greeting on
// first access.
func (s *Store) Transcript(userID string, greeting models.ChatMessage) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transcripts[userID]; !ok {
		s.transcripts[userID] = []models.ChatMessage{greeting}
	}
	return append([]models.ChatMessage(nil), s.transcripts[userID]...)
}

func (s *Store) AppendTurn(userID string, msg models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[userID] = append(s.transcripts[userID], msg)
}
