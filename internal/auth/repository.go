// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/b2bmarket/backend/internal/core"
)

type PasswordResetToken struct {
	ID        int64     `db:"id"`
	Email     string    `db:"email"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	Used      bool      `db:"used"`
	CreatedAt time.Time `db:"created_at"`
}

func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

type Repository interface {
	CreateResetToken(ctx context.Context, email, token string, expiresAt time.Time) error
	GetResetToken(ctx context.Context, token string) (*PasswordResetToken, error)
	MarkResetTokenUsed(ctx context.Context, token string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CreateResetToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO password_reset_tokens (email, token, expires_at, used)
		VALUES ($1, $2, $3, FALSE)`

	if _, err := r.db.ExecContext(ctx, query, email, token, expiresAt); err != nil {
		return fmt.Errorf("creating reset token: %w", err)
	}

	return nil
}

func (r *repository) GetResetToken(ctx context.Context, token string) (*PasswordResetToken, error) {
	query := `
		SELECT id, email, token, expires_at, used, created_at
		FROM password_reset_tokens
		WHERE token = $1`

	var t PasswordResetToken
	if err := r.db.GetContext(ctx, &t, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reset token: %w", core.ErrNotFound)
		}
		return nil, fmt.Errorf("getting reset token: %w", err)
	}

	return &t, nil
}

func (r *repository) MarkResetTokenUsed(ctx context.Context, token string) error {
	query := `UPDATE password_reset_tokens SET used = TRUE WHERE token = $1`

	result, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("marking reset token used: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("reset token: %w", core.ErrNotFound)
	}

	return nil
}
