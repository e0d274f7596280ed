package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrInvalidToken = errors.New("invalid auth token")

// KeyGenerator produces candidate keys for opaque auth tokens.
type KeyGenerator interface {
	Generate() (string, error)
}

// RandomKeyGenerator draws keys from crypto/rand, hex encoded.
type RandomKeyGenerator struct {
	size int
}

// NewRandomKeyGenerator creates generator reading size random bytes per key.
// Non-positive size falls back to 20 bytes (40 hex characters).
func NewRandomKeyGenerator(size int) *RandomKeyGenerator {
	if size <= 0 {
		size = 20
	}
	return &RandomKeyGenerator{size: size}
}

// Generate returns a fresh random key.
func (g *RandomKeyGenerator) Generate() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
