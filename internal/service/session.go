// Package service contains application services for identity, sessions and orders.
package service

import (
	"context"
	"errors"
	"time"

	pkgcrypto "github.com/akulagin/shopapi/internal/crypto"
	"github.com/akulagin/shopapi/internal/errs"
	"github.com/akulagin/shopapi/internal/model"
	"github.com/akulagin/shopapi/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// SessionManager is the sole authorization mechanism: every protected
// operation resolves its caller through it.
type SessionManager interface {
	// NewForUser builds a session (fresh token, expiry set) without persisting it.
	NewForUser(userID uuid.UUID) (*model.Session, error)
	// Issue creates and persists a session, returning its token.
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	// Resolve maps a token to its user; errs.ErrUnauthenticated if the token
	// is empty, unknown or expired.
	Resolve(ctx context.Context, token string) (*model.User, error)
	// Revoke deletes a session; a no-op for an empty or unknown token.
	Revoke(ctx context.Context, token string) error
}

type SessionManagerImpl struct {
	sessions repository.SessionRepository
	ttl      time.Duration
}

// NewSessionManager constructs SessionManager with the given session lifetime.
func NewSessionManager(sessions repository.SessionRepository, ttl time.Duration) *SessionManagerImpl {
	return &SessionManagerImpl{sessions: sessions, ttl: ttl}
}

// NewForUser generates a fresh token and stamps the expiry. The caller decides
// how the session is persisted (standalone, or inside the user-creation tx).
func (m *SessionManagerImpl) NewForUser(userID uuid.UUID) (*model.Session, error) {
	token, err := pkgcrypto.NewSessionToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &model.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}, nil
}

// Issue creates and stores a session for the user.
func (m *SessionManagerImpl) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	s, err := m.NewForUser(userID)
	if err != nil {
		return "", err
	}
	if err := m.sessions.Create(ctx, s); err != nil {
		return "", err
	}
	return s.Token, nil
}

// Resolve returns the session's user. An empty token short-circuits without
// a store round-trip.
func (m *SessionManagerImpl) Resolve(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, errs.ErrUnauthenticated
	}
	u, err := m.sessions.GetUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}
	return u, nil
}

// Revoke deletes the session. Always succeeds from the caller's perspective
// when the token is empty or already gone.
func (m *SessionManagerImpl) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.sessions.Delete(ctx, token)
}
