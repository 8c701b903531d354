package service

import (
	"context"
	"fmt"
	"strings"

	pkgcrypto "github.com/akulagin/shopapi/internal/crypto"
	"github.com/akulagin/shopapi/internal/errs"
	"github.com/akulagin/shopapi/internal/model"
	"github.com/akulagin/shopapi/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// AuthService defines registration and login operations.
type AuthService interface {
	// Register creates a new user and logs it in immediately.
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	// Login verifies credentials and issues a fresh session. Logins are
	// additive: a user may hold multiple concurrent sessions.
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	// Logout revokes a session; never an error for a missing one.
	Logout(ctx context.Context, token string) error
	// CurrentUser resolves the session's user or errs.ErrUnauthenticated.
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}

type AuthServiceImpl struct {
	users    repository.UserRepository
	sessions SessionManager
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, sessions SessionManager) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, sessions: sessions}
}

// normalizeEmail is applied before any lookup or insert; emails are stored
// and compared lowercased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates input, hashes the password and creates the user together
// with its initial session in one storage transaction. Email uniqueness is
// enforced by the storage constraint, not a lookup, so two concurrent
// registrations cannot both succeed.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", errs.ErrValidation)
	}

	hash, err := pkgcrypto.HashPassword([]byte(password))
	if err != nil {
		return nil, "", err
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return nil, "", err
	}
	u := &model.User{
		ID:      uid,
		Name:    name,
		Email:   email,
		PwdHash: hash,
	}
	sess, err := s.sessions.NewForUser(uid)
	if err != nil {
		return nil, "", err
	}
	if err := s.users.CreateWithSession(ctx, u, sess); err != nil {
		return nil, "", err
	}
	return u, sess.Token, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both return errs.ErrInvalidCredentials so a caller cannot probe
// which emails are registered.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", errs.ErrValidation)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), u.PwdHash) {
		return nil, "", errs.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout revokes the session via the session manager.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// CurrentUser resolves the caller's identity.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	return s.sessions.Resolve(ctx, token)
}
