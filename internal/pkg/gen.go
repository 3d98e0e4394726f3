package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// GenerateGameID - generates a unique, URL-safe identifier for a game session.
func GenerateGameID() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NewSeed - generates a dice seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}
