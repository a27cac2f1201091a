// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/sage-nfm/internal/core"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(sqlx.NewDb(db, "pgx")), mock
}

func TestRepository_CreateStampsAndInserts(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(sqlmock.AnyArg(), "a@x.com", "hash", "A", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &User{Email: "a@x.com", PasswordHash: "hash", Name: "A"}
	require.NoError(t, repo.Create(context.Background(), u))

	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateDuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &User{Email: "a@x.com"})
	require.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestRepository_GetByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}).
		AddRow("u1", "a@x.com", "hash", "A", created)
	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "A", u.Name)
	assert.Equal(t, created, u.CreatedAt)
}

func TestRepository_GetByEmailNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM users`).
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@x.com")
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestMemoryRepository_CreateAndLookup(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u := &User{Email: "a@x.com", Name: "A", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEmpty(t, u.ID)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = repo.GetByEmail(ctx, "A@X.COM")
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestMemoryRepository_RejectsDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &User{Email: "a@x.com"}))
	err := repo.Create(ctx, &User{Email: "a@x.com"})
	require.ErrorIs(t, err, core.ErrDuplicateKey)

	require.NoError(t, repo.Create(ctx, &User{Email: "A@x.com"}))
}

func TestService_CreateReturnsUserInfo(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	info, err := svc.Create(context.Background(), "b@x.com", "hash", "B")
	require.NoError(t, err)
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, "b@x.com", info.Email)
	assert.Equal(t, "hash", info.PasswordHash)

	found, err := svc.GetByEmail(context.Background(), "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, info.ID, found.ID)
}
