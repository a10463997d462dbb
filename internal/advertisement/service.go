// AngelaMos | 2026
// service.go

package advertisement

import (
	"context"
	"fmt"

	"github.com/b2bmarket/backend/internal/core"
)

type CreateAdvertisement struct {
	UserID       int64
	Title        string
	Description  string
	ImageURL     *string
	TargetURL    *string
	Package      *string
	Company      *string
	ContactEmail string
	ContactPhone *string
	Budget       *int64
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Advertisement, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]Advertisement, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Advertisement, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id int64) (*Advertisement, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new ad owned by the caller. Moderation fields are
// forced server-side: every ad starts pending, unpaid, and inactive.
func (s *Service) Create(ctx context.Context, in CreateAdvertisement) (*Advertisement, error) {
	return s.repo.Create(ctx, &Advertisement{
		UserID:        &in.UserID,
		Title:         in.Title,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		TargetURL:     in.TargetURL,
		Package:       in.Package,
		Company:       in.Company,
		ContactEmail:  in.ContactEmail,
		ContactPhone:  in.ContactPhone,
		Budget:        in.Budget,
		Status:        StatusPending,
		PaymentStatus: PaymentUnpaid,
		IsActive:      false,
	})
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string, isActive *bool) (*Advertisement, error) {
	if !ValidStatus(status) {
		return nil, core.ValidationAppError(
			fmt.Sprintf("Invalid status %q: must be pending, active, or inactive", status),
		)
	}

	return s.repo.UpdateStatus(ctx, id, status, isActive)
}
