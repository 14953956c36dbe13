package util

import (
	"crypto/sha256"
	"encoding/base64"
)

// KeyGenerator derives stable document ids from natural keys
type KeyGenerator struct {
	salt string
}

// NewKeyGenerator creates a KeyGenerator mixing salt into every id
func NewKeyGenerator(salt string) *KeyGenerator {
	return &KeyGenerator{salt: salt}
}

// Generate returns the base64url encoded sha256 of salt+base. The same base
// always yields the same id.
func (g *KeyGenerator) Generate(base string) string {
	sum := sha256.Sum256([]byte(g.salt + base))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
