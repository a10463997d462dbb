// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/b2bmarket/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) (*User, error) {
	query := `
		INSERT INTO users (email, password, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, password, first_name, last_name, role, is_active, created_at`

	var created User
	err := r.db.GetContext(ctx, &created, query,
		strings.ToLower(u.Email),
		u.Password,
		u.FirstName,
		u.LastName,
		u.Role,
		u.IsActive,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("user email: %w", core.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `
		SELECT id, email, password, first_name, last_name, role, is_active, created_at
		FROM users
		WHERE id = $1`

	var u User
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("getting user by id: %w", err)
	}

	return &u, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password, first_name, last_name, role, is_active, created_at
		FROM users
		WHERE email = $1`

	var u User
	if err := r.db.GetContext(ctx, &u, query, strings.ToLower(email)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", core.ErrNotFound)
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return &u, nil
}

func (r *repository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE users SET password = $1 WHERE email = $2`

	result, err := r.db.ExecContext(ctx, query, passwordHash, strings.ToLower(email))
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user: %w", core.ErrNotFound)
	}

	return nil
}

// isDuplicateKeyError matches the Postgres unique_violation code that
// pgx surfaces in the driver error string.
func isDuplicateKeyError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
