package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodorder/internal/apperr"
	"foodorder/internal/models"
	"foodorder/internal/policy"
	"foodorder/internal/repository"
	"foodorder/internal/token"
)

type AuthService interface {
	Register(name, email, password, role, location string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(name, email, password, role, location string) (*models.User, string, error) {
	if name == "" || email == "" || password == "" || role == "" || location == "" {
		return nil, "", apperr.New(apperr.Validation, "All fields are required")
	}
	if !policy.ValidRole(role) {
		return nil, "", apperr.New(apperr.Validation, "Invalid role")
	}
	if !policy.ValidLocation(location) {
		return nil, "", apperr.New(apperr.Validation, "Invalid location")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Storage, "Failed to register user", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Location: location,
	}
	if err := s.userRepo.Create(user); err != nil {
		if isDuplicate(err) {
			return nil, "", apperr.New(apperr.Conflict, "Email already exists")
		}
		return nil, "", apperr.Wrap(apperr.Storage, "Failed to register user", err)
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Storage, "Failed to issue token", err)
	}
	return user, signed, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password report the identical failure, never revealing which one it was.
func (s *authService) Login(email, password string) (*models.User, string, error) {
	invalid := apperr.New(apperr.Unauthenticated, "Invalid email or password")

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", invalid
		}
		return nil, "", apperr.Wrap(apperr.Storage, "Failed to log in", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", invalid
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Storage, "Failed to issue token", err)
	}
	return user, signed, nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for drivers without error translation.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}
