package util

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// NewEtag returns a fresh opaque etag. Every write of a resource gets a new one.
func NewEtag() string {
	sum := sha256.Sum256([]byte(uuid.NewString() + time.Now().UTC().Format(time.RFC3339Nano)))
	return hex.EncodeToString(sum[:20])
}
