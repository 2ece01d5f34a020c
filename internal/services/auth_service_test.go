package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_HashAndVerify(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(bcrypt.MinCost)

	hash, err := svc.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, svc.VerifyPassword("s3cret-password", hash))
	assert.False(t, svc.VerifyPassword("wrong-password", hash))
}

func TestAuthService_HashIsSalted(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(bcrypt.MinCost)

	h1, err := svc.HashPassword("same-input")
	require.NoError(t, err)
	h2, err := svc.HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, svc.VerifyPassword("same-input", h1))
	assert.True(t, svc.VerifyPassword("same-input", h2))
}

func TestAuthService_VerifyMalformedHash(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(0)

	assert.False(t, svc.VerifyPassword("whatever", ""))
	assert.False(t, svc.VerifyPassword("whatever", "not-a-bcrypt-digest"))
	assert.False(t, svc.VerifyPassword("whatever", "$2a$garbage"))
}
