package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// TokenSize is the number of random bytes behind a bearer token. Hex
// encoding doubles it on the wire.
const TokenSize = 48

func GenerateToken() (string, error) {
	buffer := make([]byte, TokenSize)
	if _, err := rand.Read(buffer); err != nil {
		return "", err
	}
	return hex.EncodeToString(buffer), nil
}

// HashToken derives the storage key for a bearer token. Only the hash is
// ever persisted, so a leaked sessions table holds no usable credentials.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
