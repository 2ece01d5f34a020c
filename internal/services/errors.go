package services

import "errors"

var (
	// ErrDuplicateUser is returned when registering an email that is
	// already taken.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is deliberately generic: callers cannot
	// tell an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidOrExpiredToken covers wrong, expired and already
	// consumed reset tokens with a single answer.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")

	// ErrDispatchFailed means the notification email could not be
	// delivered; any reset token persisted for it has been rolled back.
	ErrDispatchFailed = errors.New("failed to send notification email")

	// ErrWeakPassword rejects passwords below the minimum length.
	ErrWeakPassword = errors.New("password must be at least 6 characters")

	// ErrInvalidSessionToken is returned by TokenService.Verify for
	// malformed, tampered or expired session tokens.
	ErrInvalidSessionToken = errors.New("invalid or expired token")
)
