// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Aleeffc/sunflowerbeach/internal/config"
	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
	"github.com/Aleeffc/sunflowerbeach/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrVendorPending      = errors.New("vendor account pending approval")
	ErrNameTaken          = store.ErrNameTaken
)

type AuthService struct {
	store *store.Store
	cfg   *config.Config
	// sleep applies the configured simulated login latency. Injectable so
	// tests run with no delay at all.
	sleep func(time.Duration)
}

type StaffLoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ClientLoginRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type RegisterVendorRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User         models.User         `json:"user"`
	Capabilities []models.Capability `json:"capabilities"`
	AccessToken  string              `json:"access_token"`
	TokenType    string              `json:"token_type"`
	ExpiresIn    int                 `json:"expires_in"` // in seconds
}

func NewAuthService(st *store.Store, cfg *config.Config) *AuthService {
	return &AuthService{
		store: st,
		cfg:   cfg,
		sleep: time.Sleep,
	}
}

// SetSleeper swaps the latency function. Tests pass a no-op.
func (s *AuthService) SetSleeper(sleep func(time.Duration)) {
	s.sleep = sleep
}

func (s *AuthService) simulateLoading() {
	if delay := s.cfg.Auth.LoginDelayMS; delay > 0 {
		s.sleep(time.Duration(delay) * time.Millisecond)
	}
}

// StaffLogin authenticates an admin or vendor by exact name+password match.
// An unapproved vendor is rejected without touching any state.
func (s *AuthService) StaffLogin(req *StaffLoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.simulateLoading()

	user, ok := s.store.FindStaff(req.Name, req.Password)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.CanAuthenticate() {
		return nil, ErrVendorPending
	}

	return s.issueToken(user)
}

// ClientLogin creates a throwaway client identity; clients carry no password.
func (s *AuthService) ClientLogin(req *ClientLoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.simulateLoading()

	user := models.User{
		ID:    "client-" + uuid.NewString(),
		Name:  req.Name,
		Phone: req.Phone,
		Role:  models.RoleClient,
	}
	s.store.AddClient(user)

	return s.issueToken(user)
}

// RegisterVendor appends an unapproved vendor identity. A duplicate name is
// rejected and the user list stays unchanged.
func (s *AuthService) RegisterVendor(req *RegisterVendorRequest) (models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.User{}, fmt.Errorf("validation failed: %w", err)
	}

	s.simulateLoading()

	user := models.User{
		ID:       "vendor-" + uuid.NewString(),
		Name:     req.Name,
		Password: req.Password,
		Role:     models.RoleVendor,
	}
	if err := s.store.RegisterVendor(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout clears the caller's cart. The token simply stops being presented.
func (s *AuthService) Logout(userID string) {
	s.store.ClearCart(userID)
}

func (s *AuthService) GetUserByID(id string) (models.User, error) {
	return s.store.UserByID(id)
}

func (s *AuthService) issueToken(user models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Name, string(user.Role), s.cfg.Auth.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:         user,
		Capabilities: models.Capabilities(user.Role),
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.Auth.AccessTokenTTL * 3600,
	}, nil
}
