package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// GenerateSecureID returns a prefixed identifier with `length` bytes of
// crypto/rand entropy, base64url encoded without padding.
func GenerateSecureID(prefix string, length int) (string, error) {
	if length <= 0 {
		return "", errors.New("length must be positive")
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(buf)
	if prefix == "" {
		return encoded, nil
	}
	return prefix + "_" + encoded, nil
}

// GenerateSessionToken returns an opaque session token with 32 bytes of entropy.
func GenerateSessionToken() (string, error) {
	return GenerateSecureID("", 32)
}
