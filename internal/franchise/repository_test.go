// AngelaMos | 2026
// repository_test.go

package franchise

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b2bmarket/backend/internal/core"
)

var franchiseTestColumns = []string{
	"id", "name", "description", "category", "country", "state",
	"investment_range", "image_url", "contact_email", "investment_min",
	"investment_max", "is_active", "created_at",
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

func franchiseRow(id int64, name string, active bool) *sqlmock.Rows {
	return sqlmock.NewRows(franchiseTestColumns).AddRow(
		id, name, "A franchise", "Food & Beverage", "USA", "Texas",
		"$50K-$200K", nil, "owner@example.com", int64(50_000), int64(200_000),
		active, time.Now(),
	)
}

func TestListActiveFiltersByFlag(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("FROM franchises").
		WillReturnRows(franchiseRow(1, "coffee", true))

	franchises, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, franchises, 1)
	assert.Equal(t, "coffee", franchises[0].Name)
	assert.True(t, franchises[0].IsActive)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("FROM franchises").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(franchiseTestColumns))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, core.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDReturnsRow(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("FROM franchises").
		WithArgs(int64(1)).
		WillReturnRows(franchiseRow(1, "coffee", true))

	f, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.ID)
	require.NotNil(t, f.InvestmentMin)
	assert.Equal(t, int64(50_000), *f.InvestmentMin)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReturnsInsertedRow(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("INSERT INTO franchises").
		WillReturnRows(franchiseRow(5, "new franchise", true))

	created, err := repo.Create(context.Background(), &Franchise{
		Name:         "new franchise",
		Description:  "A franchise",
		Category:     "Food & Beverage",
		Country:      "USA",
		State:        "Texas",
		ContactEmail: "owner@example.com",
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateActiveNotFound(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("UPDATE franchises").
		WithArgs(false, int64(404)).
		WillReturnRows(sqlmock.NewRows(franchiseTestColumns))

	_, err := repo.UpdateActive(context.Background(), 404, false)
	assert.ErrorIs(t, err, core.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateActiveTogglesFlag(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("UPDATE franchises").
		WithArgs(false, int64(1)).
		WillReturnRows(franchiseRow(1, "coffee", false))

	updated, err := repo.UpdateActive(context.Background(), 1, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	assert.NoError(t, mock.ExpectationsWereMet())
}
