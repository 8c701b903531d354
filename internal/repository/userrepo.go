// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/akulagin/shopapi/internal/model"
	"github.com/gofrs/uuid/v5"
)

// UserRepository provides CRUD access for users.
type UserRepository interface {
	// CreateWithSession inserts a new user and its initial session as one
	// atomic unit. Returns errs.ErrAlreadyExists if the email is taken.
	CreateWithSession(ctx context.Context, u *model.User, s *model.Session) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByEmail loads a user by lowercased email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Delete removes a user; sessions and orders cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
