package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	t.Parallel()

	plain, fp, err := NewResetToken(32)
	require.NoError(t, err)

	b, err := hex.DecodeString(plain)
	require.NoError(t, err)
	assert.Len(t, b, 32)

	assert.Equal(t, ResetTokenFingerprint(plain), fp)
	assert.Len(t, fp, 64) // sha256 hex
	assert.NotEqual(t, plain, fp)
}

func TestNewResetToken_DefaultLength(t *testing.T) {
	t.Parallel()

	plain, _, err := NewResetToken(0)
	require.NoError(t, err)
	assert.Len(t, plain, 64) // 32 bytes hex-encoded
}

func TestNewResetToken_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		plain, fp, err := NewResetToken(32)
		require.NoError(t, err)
		require.False(t, seen[plain], "duplicate secret generated")
		require.False(t, seen[fp], "duplicate fingerprint generated")
		seen[plain] = true
		seen[fp] = true
	}
}

func TestResetTokenFingerprint_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ResetTokenFingerprint("abc"), ResetTokenFingerprint("abc"))
	assert.NotEqual(t, ResetTokenFingerprint("abc"), ResetTokenFingerprint("abd"))
}
