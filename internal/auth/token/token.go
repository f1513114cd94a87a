// Package token generates and hashes opaque refresh tokens.
// Only the SHA-256 hash is persisted; the raw token lives in the
// client's cookie.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// GenerateRandom returns a URL-safe random token of size bytes entropy.
func GenerateRandom(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashSHA256 returns the hex-encoded SHA-256 digest of a token.
func HashSHA256(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
