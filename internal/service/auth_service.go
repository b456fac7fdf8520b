// internal/service/auth_service.go
package service

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/adspark/adspark-backend/internal/auth"
	appErrors "github.com/adspark/adspark-backend/internal/errors"
	"github.com/adspark/adspark-backend/internal/model"
	"github.com/adspark/adspark-backend/internal/repository"
)

type AuthService struct {
	AdminRepo repository.AdminRepositoryInterface
	UserRepo  repository.UserRepositoryInterface

	JWTSecret []byte
	TokenTTL  time.Duration
}

// Register creates a new admin account. Email and username must be unused.
func (s *AuthService) Register(email, username, password string) (*model.Admin, error) {
	if email == "" {
		return nil, appErrors.NewValidation("email")
	}
	if username == "" {
		return nil, appErrors.NewValidation("username")
	}
	if password == "" {
		return nil, appErrors.NewValidation("password")
	}

	if existing, err := s.AdminRepo.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, appErrors.NewInvalidArgument("email already registered")
	}
	if existing, err := s.AdminRepo.GetByUsername(username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, appErrors.NewInvalidArgument("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.AdminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Login verifies credentials and issues a bearer token valid for TokenTTL.
func (s *AuthService) Login(email, password string) (string, *model.Admin, error) {
	admin, err := s.AdminRepo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, appErrors.NewUnauthorized("invalid credentials")
	}

	token, err := auth.SignToken(s.JWTSecret, admin.ID, s.TokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// ListAttributes returns the distinct demographic values across users.
func (s *AuthService) ListAttributes() (*model.AttributeValues, error) {
	return s.UserRepo.DistinctValues()
}
