// Package crypto implements server-side password hashing and session token generation.
package crypto

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is fixed: expensive enough to slow offline attacks,
// cheap enough to keep login latency tolerable.
const bcryptCost = 12

// sessionTokenBytes sizes tokens so guessing is infeasible (256 bits).
const sessionTokenBytes = 32

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// HashPassword returns a self-contained bcrypt hash of password
// (salt and cost embedded in the output).
func HashPassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, bcryptCost)
}

// VerifyPassword reports whether password matches the stored hash.
// A malformed stored hash is treated as a non-match, never an error.
func VerifyPassword(password, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, password) == nil
}

// NewSessionToken returns a fresh opaque session token.
func NewSessionToken() (string, error) {
	b, err := RandBytes(sessionTokenBytes)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
