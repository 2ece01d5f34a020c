package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()
	svc := NewTokenService([]byte("super-secret"), time.Hour)

	tok, err := svc.Issue(42)
	require.NoError(t, err)

	userID, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()
	svc := NewTokenService([]byte("secret"), -time.Second)

	tok, err := svc.Issue(1)
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()
	issuer := NewTokenService([]byte("right-secret"), time.Hour)
	verifier := NewTokenService([]byte("wrong-secret"), time.Hour)

	tok, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()
	svc := NewTokenService([]byte("k"), time.Hour)

	_, err := svc.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	_, err = svc.Verify("")
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}
