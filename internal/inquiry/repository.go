// AngelaMos | 2026
// repository.go

package inquiry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/b2bmarket/backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Inquiry, error)
	GetByID(ctx context.Context, id int64) (*Inquiry, error)
	Create(ctx context.Context, i *Inquiry) (*Inquiry, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Inquiry, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Inquiry, error) {
	query := `
		SELECT id, name, email, phone, subject, message,
		       franchise_id, business_id, status, created_at
		FROM inquiries
		ORDER BY created_at DESC`

	inquiries := []Inquiry{}
	if err := r.db.SelectContext(ctx, &inquiries, query); err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}

	return inquiries, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Inquiry, error) {
	query := `
		SELECT id, name, email, phone, subject, message,
		       franchise_id, business_id, status, created_at
		FROM inquiries
		WHERE id = $1`

	var i Inquiry
	if err := r.db.GetContext(ctx, &i, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("inquiry %d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("getting inquiry: %w", err)
	}

	return &i, nil
}

func (r *repository) Create(ctx context.Context, i *Inquiry) (*Inquiry, error) {
	query := `
		INSERT INTO inquiries (name, email, phone, subject, message,
		                       franchise_id, business_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, email, phone, subject, message,
		          franchise_id, business_id, status, created_at`

	var created Inquiry
	err := r.db.GetContext(ctx, &created, query,
		i.Name,
		i.Email,
		i.Phone,
		i.Subject,
		i.Message,
		i.FranchiseID,
		i.BusinessID,
		StatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("creating inquiry: %w", err)
	}

	return &created, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status string) (*Inquiry, error) {
	query := `
		UPDATE inquiries
		SET status = $1
		WHERE id = $2
		RETURNING id, name, email, phone, subject, message,
		          franchise_id, business_id, status, created_at`

	var updated Inquiry
	if err := r.db.GetContext(ctx, &updated, query, status, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("inquiry %d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("updating inquiry status: %w", err)
	}

	return &updated, nil
}
