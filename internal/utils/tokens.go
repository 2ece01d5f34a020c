package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// NewResetToken returns a fresh reset secret and its fingerprint. The
// plain secret goes into the reset email; only the fingerprint is ever
// persisted, so a leaked database does not yield usable tokens.
func NewResetToken(nBytes int) (plain, fingerprint string, err error) {
	if nBytes <= 0 {
		nBytes = 32 // 256 бит по умолчанию
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	plain = hex.EncodeToString(b)
	return plain, ResetTokenFingerprint(plain), nil
}

// ResetTokenFingerprint derives the stored form of a plain reset
// secret: sha256 over the transport encoding, hex-encoded.
func ResetTokenFingerprint(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
