package services

import (
	"log"
	"strings"

	"authgate/internal/models"
	"authgate/internal/repositories"
)

type UserService interface {
	Register(name, email, password string) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
}

type userService struct {
	repo           repositories.UserRepository
	emailService   EmailService
	authService    AuthService
	normalizeEmail bool
}

func NewUserService(repo repositories.UserRepository, emailService EmailService, authService AuthService, normalizeEmail bool) UserService {
	return &userService{
		repo:           repo,
		emailService:   emailService,
		authService:    authService,
		normalizeEmail: normalizeEmail,
	}
}

// NormalizeEmail trims the address and, when folding is enabled,
// lowercases it so lookups become case-insensitive.
func NormalizeEmail(email string, fold bool) string {
	email = strings.TrimSpace(email)
	if fold {
		email = strings.ToLower(email)
	}
	return email
}

func (s *userService) Register(name, email, password string) (*models.User, error) {
	email = NormalizeEmail(email, s.normalizeEmail)
	if len(strings.TrimSpace(password)) < 6 {
		return nil, ErrWeakPassword
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	if s.emailService != nil {
		// warn but do not fail registration
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Printf("[users][register] warning: failed to send welcome email to %s: %v", user.Email, err)
		}
	}
	return user, nil
}

func (s *userService) GetUserByID(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(NormalizeEmail(email, s.normalizeEmail))
}
