// Package randid generates short random and content-derived identifiers
// for logging, correlation, and cache keys.
//
// None of the generators promise uniqueness or cryptographic strength
// beyond what their underlying primitives provide; callers needing
// either should reach for a real UUID/ULID registry instead of string
// helpers.
package randid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	mrand "math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const alnumChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// Hex returns an n-character lowercase hex string from crypto/rand.
// n must be even and greater than zero.
func Hex(n int) (string, error) {
	if n <= 0 || n%2 != 0 {
		return "", fmt.Errorf("length[%d] must be a positive even number", n)
	}

	b := make([]byte, n/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}

// Alnum returns an n-character lowercase alphanumeric string. It uses
// math/rand/v2 and is not suitable for secrets.
func Alnum(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alnumChars[mrand.IntN(len(alnumChars))]
	}

	return string(b)
}

// UUID returns a random (version 4) UUID string.
func UUID() string {
	return uuid.New().String()
}

// ULID returns a lexicographically sortable ULID string.
func ULID() string {
	return ulid.Make().String()
}

// Hash returns a deterministic 12-character hex ID derived from the
// sha256 of the given parts, joined with "|". The same parts always
// produce the same ID.
func Hash(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:6])
}
