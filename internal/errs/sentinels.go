// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials indicates a failed login. Deliberately identical
	// for an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated indicates a missing, invalid or expired session.
	ErrUnauthenticated = errors.New("unauthenticated")
)
