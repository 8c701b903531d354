package postgres

import (
	"context"
	"errors"

	"github.com/akulagin/shopapi/internal/errs"
	"github.com/akulagin/shopapi/internal/model"
	"github.com/jackc/pgx/v5"
)

// SessionRepo implements SessionRepository using PostgreSQL.
type SessionRepo struct{ db *DB }

// NewSessionRepo constructs a session repository.
func NewSessionRepo(db *DB) *SessionRepo { return &SessionRepo{db: db} }

// Create inserts a new session row.
func (r *SessionRepo) Create(ctx context.Context, s *model.Session) error {
	const q = `
INSERT INTO sessions (token, user_id, expires_at)
VALUES ($1, $2, $3)`
	_, err := r.db.Pool.Exec(ctx, q, s.Token, s.UserID, s.ExpiresAt)
	return err
}

// GetUserByToken joins the session to its user in one query. Expired rows are
// filtered here rather than garbage-collected, so a stale cookie can never
// authenticate.
func (r *SessionRepo) GetUserByToken(ctx context.Context, token string) (*model.User, error) {
	const q = `
SELECT u.id, u.name, u.email, u.pwd_hash, u.created_at
FROM sessions s
JOIN users u ON u.id = s.user_id
WHERE s.token=$1 AND s.expires_at > now()`
	row := r.db.Pool.QueryRow(ctx, q, token)
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PwdHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

// Delete removes a session. Idempotent: a missing token is not an error.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	const q = `DELETE FROM sessions WHERE token=$1`
	_, err := r.db.Pool.Exec(ctx, q, token)
	return err
}
