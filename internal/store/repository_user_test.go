package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func userColumns() []string {
	return []string{"user_id", "role", "email", "password_hash", "first_name", "last_name", "nickname", "created_at"}
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	newUser := models.User{
		Role:         models.RoleUser,
		Email:        "user1@example.com",
		PasswordHash: "deadbeef",
	}
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs(newUser.Role, newUser.Email, newUser.PasswordHash, "", "", "").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(int64(1), string(models.RoleUser), newUser.Email, newUser.PasswordHash, "", "", "", createdAt))

	saved, err := repo.CreateUser(context.Background(), newUser)
	require.NoError(t, err)

	assert.Equal(t, int64(1), saved.UserID)
	assert.Equal(t, models.RoleUser, saved.Role)
	assert.Equal(t, newUser.Email, saved.Email)
	assert.Equal(t, createdAt, saved.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateUser(context.Background(), models.User{Email: "user1@example.com"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(int64(7), string(models.RoleAdmin), "admin@example.com", "cafe", "", "", "", createdAt))

	found, err := repo.FindUserByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, int64(7), found.UserID)
	assert.Equal(t, models.RoleAdmin, found.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindUserByEmail(context.Background(), "missing@example.com")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
