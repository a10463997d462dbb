// AngelaMos | 2026
// repository.go

package franchise

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/b2bmarket/backend/internal/core"
)

const franchiseColumns = `id, name, description, category, country, state,
	investment_range, image_url, contact_email, investment_min,
	investment_max, is_active, created_at`

type Repository interface {
	ListActive(ctx context.Context) ([]Franchise, error)
	ListAll(ctx context.Context) ([]Franchise, error)
	GetByID(ctx context.Context, id int64) (*Franchise, error)
	Create(ctx context.Context, f *Franchise) (*Franchise, error)
	UpdateActive(ctx context.Context, id int64, isActive bool) (*Franchise, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListActive(ctx context.Context) ([]Franchise, error) {
	query := `
		SELECT ` + franchiseColumns + `
		FROM franchises
		WHERE is_active = TRUE
		ORDER BY created_at DESC`

	franchises := []Franchise{}
	if err := r.db.SelectContext(ctx, &franchises, query); err != nil {
		return nil, fmt.Errorf("listing active franchises: %w", err)
	}

	return franchises, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Franchise, error) {
	query := `
		SELECT ` + franchiseColumns + `
		FROM franchises
		ORDER BY created_at DESC`

	franchises := []Franchise{}
	if err := r.db.SelectContext(ctx, &franchises, query); err != nil {
		return nil, fmt.Errorf("listing franchises: %w", err)
	}

	return franchises, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Franchise, error) {
	query := `
		SELECT ` + franchiseColumns + `
		FROM franchises
		WHERE id = $1`

	var f Franchise
	if err := r.db.GetContext(ctx, &f, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("franchise %d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("getting franchise: %w", err)
	}

	return &f, nil
}

func (r *repository) Create(ctx context.Context, f *Franchise) (*Franchise, error) {
	query := `
		INSERT INTO franchises (name, description, category, country, state,
		                        investment_range, image_url, contact_email,
		                        investment_min, investment_max, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + franchiseColumns

	var created Franchise
	err := r.db.GetContext(ctx, &created, query,
		f.Name,
		f.Description,
		f.Category,
		f.Country,
		f.State,
		f.InvestmentRange,
		f.ImageURL,
		f.ContactEmail,
		f.InvestmentMin,
		f.InvestmentMax,
		f.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("creating franchise: %w", err)
	}

	return &created, nil
}

func (r *repository) UpdateActive(ctx context.Context, id int64, isActive bool) (*Franchise, error) {
	query := `
		UPDATE franchises
		SET is_active = $1
		WHERE id = $2
		RETURNING ` + franchiseColumns

	var updated Franchise
	if err := r.db.GetContext(ctx, &updated, query, isActive, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("franchise %d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("updating franchise active flag: %w", err)
	}

	return &updated, nil
}
