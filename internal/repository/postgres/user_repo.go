package postgres

import (
	"context"
	"errors"

	"github.com/akulagin/shopapi/internal/errs"
	"github.com/akulagin/shopapi/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// CreateWithSession inserts the user row and its initial session in one
// transaction, so a registered user is never visible without a usable session.
// A duplicate email surfaces as errs.ErrAlreadyExists via the unique constraint;
// checking first and inserting after would race with concurrent registrations.
func (r *UserRepo) CreateWithSession(ctx context.Context, u *model.User, s *model.Session) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const insUser = `
INSERT INTO users (id, name, email, pwd_hash)
VALUES ($1, $2, $3, $4)
RETURNING created_at`
	if err = tx.QueryRow(ctx, insUser, u.ID, u.Name, u.Email, u.PwdHash).Scan(&u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			err = errs.ErrAlreadyExists
		}
		return err
	}

	const insSession = `
INSERT INTO sessions (token, user_id, expires_at)
VALUES ($1, $2, $3)`
	if _, err = tx.Exec(ctx, insSession, s.Token, s.UserID, s.ExpiresAt); err != nil {
		return err
	}
	return nil
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `
SELECT id, name, email, pwd_hash, created_at
FROM users WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PwdHash, &u.CreatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

// GetByEmail selects a user by lowercased email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT id, name, email, pwd_hash, created_at
FROM users WHERE email=$1`
	row := r.db.Pool.QueryRow(ctx, q, email)
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PwdHash, &u.CreatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

// Delete removes the user row; sessions, orders and order items cascade
// through foreign keys, so no orphaned session can resolve afterwards.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
