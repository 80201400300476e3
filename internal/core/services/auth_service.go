package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"grievance-backend/internal/adapters/persistence/models"
	"grievance-backend/internal/adapters/persistence/repositories"
	"grievance-backend/internal/config"
	"grievance-backend/internal/core/domain"
	"grievance-backend/internal/pkg/password"
)

// AuthService handles signup and login business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	Email              string `json:"email"`
	Password           string `json:"password"`
}

// LoginResult represents a successful authentication
type LoginResult struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

// Register registers a new user
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) error {
	// 1. All fields are required
	if input.Name == "" || input.RegistrationNumber == "" || input.Email == "" || input.Password == "" {
		return domain.ErrValidation
	}

	// 2. Only institutional addresses may register
	if !strings.HasSuffix(input.Email, s.cfg.AllowedEmailDomain) {
		return domain.ErrInvalidEmailDomain
	}

	// 3. Email and registration number must both be unused
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if !exists {
		exists, err = s.userRepo.ExistsByRegistrationNumber(ctx, input.RegistrationNumber)
		if err != nil {
			return err
		}
	}
	if exists {
		return domain.ErrUserAlreadyExists
	}

	// 4. Store the salted hash, never the raw password
	hashed, err := password.Hash(input.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:               input.Name,
		RegistrationNumber: input.RegistrationNumber,
		Email:              input.Email,
		Password:           hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	log.Printf("✅ User registered: %s", user.Email)
	return nil
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	if email == "" || pass == "" {
		return nil, domain.ErrValidation
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same generic error as a wrong password
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	return &LoginResult{
		Name:   user.Name,
		UserID: user.ID,
	}, nil
}
