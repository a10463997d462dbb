// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b2bmarket/backend/internal/core"
)

var userTestColumns = []string{
	"id", "email", "password", "first_name", "last_name", "role", "is_active", "created_at",
}

func setupRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func userRow(id int64, email string) *sqlmock.Rows {
	return sqlmock.NewRows(userTestColumns).AddRow(
		id, email, "$2a$10$hash", "Jordan", "Lee", RoleUser, true, time.Now(),
	)
}

func TestCreateLowercasesEmail(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("jordan@example.com", "$2a$10$hash", "Jordan", "Lee", RoleUser, true).
		WillReturnRows(userRow(1, "jordan@example.com"))

	created, err := repo.Create(context.Background(), &User{
		Email:     "Jordan@Example.COM",
		Password:  "$2a$10$hash",
		FirstName: "Jordan",
		LastName:  "Lee",
		Role:      RoleUser,
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMapsUniqueViolation(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`))

	_, err := repo.Create(context.Background(), &User{Email: "jordan@example.com"})
	assert.ErrorIs(t, err, core.ErrDuplicateKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmailLowercasesLookup(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("FROM users").
		WithArgs("jordan@example.com").
		WillReturnRows(userRow(1, "jordan@example.com"))

	u, err := repo.GetByEmail(context.Background(), "Jordan@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", u.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("FROM users").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(userTestColumns))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, core.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePasswordByEmail(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec("UPDATE users").
		WithArgs("$2a$10$newhash", "jordan@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePasswordByEmail(context.Background(), "jordan@example.com", "$2a$10$newhash")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePasswordUnknownEmail(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePasswordByEmail(context.Background(), "nobody@example.com", "$2a$10$hash")
	assert.ErrorIs(t, err, core.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
