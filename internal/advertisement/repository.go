// AngelaMos | 2026
// repository.go

package advertisement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/b2bmarket/backend/internal/core"
)

const adColumns = `id, user_id, title, description, image_url, target_url,
	package, company, contact_email, contact_phone, budget, status,
	payment_status, is_active, created_at`

type Repository interface {
	ListActive(ctx context.Context) ([]Advertisement, error)
	ListAll(ctx context.Context) ([]Advertisement, error)
	ListByUser(ctx context.Context, userID int64) ([]Advertisement, error)
	GetByID(ctx context.Context, id int64) (*Advertisement, error)
	Create(ctx context.Context, a *Advertisement) (*Advertisement, error)
	UpdateStatus(ctx context.Context, id int64, status string, isActive *bool) (*Advertisement, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListActive(ctx context.Context) ([]Advertisement, error) {
	query := `
		SELECT ` + adColumns + `
		FROM advertisements
		WHERE is_active = TRUE
		ORDER BY created_at DESC`

	ads := []Advertisement{}
	if err := r.db.SelectContext(ctx, &ads, query); err != nil {
		return nil, fmt.Errorf("listing active advertisements: %w", err)
	}

	return ads, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Advertisement, error) {
	query := `
		SELECT ` + adColumns + `
		FROM advertisements
		ORDER BY created_at DESC`

	ads := []Advertisement{}
	if err := r.db.SelectContext(ctx, &ads, query); err != nil {
		return nil, fmt.Errorf("listing advertisements: %w", err)
	}

	return ads, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]Advertisement, error) {
	query := `
		SELECT ` + adColumns + `
		FROM advertisements
		WHERE user_id = $1
		ORDER BY created_at DESC`

	ads := []Advertisement{}
	if err := r.db.SelectContext(ctx, &ads, query, userID); err != nil {
		return nil, fmt.Errorf("listing advertisements for user: %w", err)
	}

	return ads, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Advertisement, error) {
	query := `
		SELECT ` + adColumns + `
		FROM advertisements
		WHERE id = $1`

	var a Advertisement
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("advertisement %d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("getting advertisement: %w", err)
	}

	return &a, nil
}

func (r *repository) Create(ctx context.Context, a *Advertisement) (*Advertisement, error) {
	query := `
		INSERT INTO advertisements (user_id, title, description, image_url,
		                            target_url, package, company, contact_email,
		                            contact_phone, budget, status,
		                            payment_status, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + adColumns

	var created Advertisement
	err := r.db.GetContext(ctx, &created, query,
		a.UserID,
		a.Title,
		a.Description,
		a.ImageURL,
		a.TargetURL,
		a.Package,
		a.Company,
		a.ContactEmail,
		a.ContactPhone,
		a.Budget,
		a.Status,
		a.PaymentStatus,
		a.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("creating advertisement: %w", err)
	}

	return &created, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status string, isActive *bool) (*Advertisement, error) {
	query := `
		UPDATE advertisements
		SET status = $1,
		    is_active = COALESCE($2, is_active)
		WHERE id = $3
		RETURNING ` + adColumns

	var updated Advertisement
	if err := r.db.GetContext(ctx, &updated, query, status, isActive, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("advertisement %d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("updating advertisement status: %w", err)
	}

	return &updated, nil
}
