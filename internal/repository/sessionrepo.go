package repository

import (
	"context"

	"github.com/akulagin/shopapi/internal/model"
)

// SessionRepository persists opaque session tokens.
type SessionRepository interface {
	// Create inserts a new session row.
	Create(ctx context.Context, s *model.Session) error
	// GetUserByToken resolves a session token to its owning user in a single
	// lookup. Returns errs.ErrNotFound for a missing or expired token.
	GetUserByToken(ctx context.Context, token string) (*model.User, error)
	// Delete removes a session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
