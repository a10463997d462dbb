// AngelaMos | 2026
// repository.go

package business

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/b2bmarket/backend/internal/core"
)

const businessColumns = `id, user_id, name, description, category, country,
	state, price, image_url, contact_email, package, year_established,
	employees, revenue, reason, assets, status, payment_status, is_active,
	created_at`

type Repository interface {
	ListActive(ctx context.Context) ([]Business, error)
	ListAll(ctx context.Context) ([]Business, error)
	ListByUser(ctx context.Context, userID int64) ([]Business, error)
	GetByID(ctx context.Context, id int64) (*Business, error)
	Create(ctx context.Context, b *Business) (*Business, error)
	UpdateStatus(ctx context.Context, id int64, status string, isActive *bool) (*Business, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListActive(ctx context.Context) ([]Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE is_active = TRUE
		ORDER BY created_at DESC`

	businesses := []Business{}
	if err := r.db.SelectContext(ctx, &businesses, query); err != nil {
		return nil, fmt.Errorf("listing active businesses: %w", err)
	}

	return businesses, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		ORDER BY created_at DESC`

	businesses := []Business{}
	if err := r.db.SelectContext(ctx, &businesses, query); err != nil {
		return nil, fmt.Errorf("listing businesses: %w", err)
	}

	return businesses, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE user_id = $1
		ORDER BY created_at DESC`

	businesses := []Business{}
	if err := r.db.SelectContext(ctx, &businesses, query, userID); err != nil {
		return nil, fmt.Errorf("listing businesses for user: %w", err)
	}

	return businesses, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE id = $1`

	var b Business
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("business %d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("getting business: %w", err)
	}

	return &b, nil
}

func (r *repository) Create(ctx context.Context, b *Business) (*Business, error) {
	query := `
		INSERT INTO businesses (user_id, name, description, category, country,
		                        state, price, image_url, contact_email, package,
		                        year_established, employees, revenue, reason,
		                        assets, status, payment_status, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + businessColumns

	var created Business
	err := r.db.GetContext(ctx, &created, query,
		b.UserID,
		b.Name,
		b.Description,
		b.Category,
		b.Country,
		b.State,
		b.Price,
		b.ImageURL,
		b.ContactEmail,
		b.Package,
		b.YearEstablished,
		b.Employees,
		b.Revenue,
		b.Reason,
		b.Assets,
		b.Status,
		b.PaymentStatus,
		b.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("creating business: %w", err)
	}

	return &created, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status string, isActive *bool) (*Business, error) {
	query := `
		UPDATE businesses
		SET status = $1,
		    is_active = COALESCE($2, is_active)
		WHERE id = $3
		RETURNING ` + businessColumns

	var updated Business
	if err := r.db.GetContext(ctx, &updated, query, status, isActive, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("business %d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("updating business status: %w", err)
	}

	return &updated, nil
}
