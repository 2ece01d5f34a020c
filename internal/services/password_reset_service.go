package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"authgate/internal/repositories"
	"authgate/internal/utils"
)

// PasswordResetService drives the reset-token lifecycle: one live
// token per user, 1h window by default, consumed on first use.
type PasswordResetService interface {
	RequestReset(email string) error
	ResetPassword(token, newPassword string) (sessionToken string, err error)
}

type passwordResetService struct {
	userRepo        repositories.UserRepository
	emails          EmailService
	auth            AuthService
	tokens          TokenService
	resetTTL        time.Duration
	frontendBaseURL string
	autoLogin       bool
	normalizeEmail  bool
}

func NewPasswordResetService(
	userRepo repositories.UserRepository,
	emails EmailService,
	auth AuthService,
	tokens TokenService,
	resetTTL time.Duration,
	frontendBaseURL string,
	autoLogin bool,
	normalizeEmail bool,
) PasswordResetService {
	return &passwordResetService{
		userRepo:        userRepo,
		emails:          emails,
		auth:            auth,
		tokens:          tokens,
		resetTTL:        resetTTL,
		frontendBaseURL: strings.TrimRight(frontendBaseURL, "/"),
		autoLogin:       autoLogin,
		normalizeEmail:  normalizeEmail,
	}
}

// RequestReset never reveals whether the email belongs to an account:
// an unknown address returns nil with no side effects.
func (s *passwordResetService) RequestReset(email string) error {
	email = NormalizeEmail(email, s.normalizeEmail)
	if email == "" {
		return fmt.Errorf("email is required")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		// don't leak existence
		log.Printf("[password-reset] request for unknown email, nothing sent")
		return nil
	}

	plain, fingerprint, err := utils.NewResetToken(32)
	if err != nil {
		return err
	}
	expires := time.Now().Add(s.resetTTL)

	// overwrite semantics: any earlier unused token stops matching
	if err := s.userRepo.SetResetToken(user.ID, fingerprint, expires); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendBaseURL, plain)
	if err := s.emails.SendPasswordResetEmail(user.Email, resetURL); err != nil {
		log.Printf("[password-reset] failed to send email to userID=%d: %v", user.ID, err)
		// never leave a live, undeliverable token behind
		if rbErr := s.userRepo.ClearResetToken(user.ID); rbErr != nil {
			log.Printf("[password-reset] rollback failed for userID=%d: %v", user.ID, rbErr)
		}
		return ErrDispatchFailed
	}
	return nil
}

// ResetPassword consumes a token on first successful validation. The
// error is the same for wrong, expired and already used tokens.
func (s *passwordResetService) ResetPassword(token, newPassword string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidOrExpiredToken
	}
	if len(strings.TrimSpace(newPassword)) < 6 {
		return "", ErrWeakPassword
	}

	fingerprint := utils.ResetTokenFingerprint(token)
	user, err := s.userRepo.GetByResetFingerprint(fingerprint, time.Now())
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidOrExpiredToken
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return "", err
	}
	if err := s.userRepo.ConsumeResetToken(user.ID, hash); err != nil {
		return "", err
	}
	log.Printf("[password-reset] password reset for userID=%d", user.ID)

	if !s.autoLogin {
		return "", nil
	}
	return s.tokens.Issue(user.ID)
}
