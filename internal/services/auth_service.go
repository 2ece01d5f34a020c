package services

import (
	"golang.org/x/crypto/bcrypt"
)

// AuthService hashes and verifies passwords.
type AuthService interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
}

type authService struct {
	cost int
}

// NewAuthService creates a bcrypt-backed hasher. cost <= 0 selects the
// library default work factor.
func NewAuthService(cost int) AuthService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &authService{cost: cost}
}

func (s *authService) HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword returns false for any mismatch, including a malformed
// stored hash; it never propagates an error to the caller.
func (s *authService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
