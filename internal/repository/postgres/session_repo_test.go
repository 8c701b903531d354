package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/akulagin/shopapi/internal/errs"
	"github.com/akulagin/shopapi/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSessionRepo(db)
	ctx := context.Background()
	s := &model.Session{
		Token:     "tok-1",
		UserID:    uuid.Must(uuid.NewV4()),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mock.ExpectExec(`INSERT INTO sessions \(token, user_id, expires_at\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs(s.Token, s.UserID, s.ExpiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, s))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetUserByToken(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSessionRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT u.id, u.name, u.email, u.pwd_hash, u.created_at FROM sessions s JOIN users u ON u.id = s.user_id WHERE s.token=\$1 AND s.expires_at > now\(\)`).
		WithArgs("tok-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "pwd_hash", "created_at"}).
			AddRow(id, "Alice", "alice@example.com", []byte("h"), time.Now()))
	u, err := r.GetUserByToken(ctx, "tok-1")
	require.NoError(t, err)
	require.Equal(t, id, u.ID)

	// missing or expired token resolves to nothing
	mock.ExpectQuery(`SELECT u.id, u.name, u.email, u.pwd_hash, u.created_at FROM sessions s JOIN users u`).
		WithArgs("tok-gone").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetUserByToken(ctx, "tok-gone")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSessionRepo_Delete_Idempotent(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSessionRepo(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM sessions WHERE token=\$1`).
		WithArgs("tok-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, "tok-1"))

	// second delete of the same token is still a success
	mock.ExpectExec(`DELETE FROM sessions WHERE token=\$1`).
		WithArgs("tok-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.NoError(t, r.Delete(ctx, "tok-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
