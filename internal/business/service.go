// AngelaMos | 2026
// service.go

package business

import (
	"context"
	"fmt"

	"github.com/b2bmarket/backend/internal/core"
	"github.com/b2bmarket/backend/internal/search"
)

type CreateBusiness struct {
	UserID          int64
	Name            string
	Description     string
	Category        string
	Country         string
	State           string
	Price           *int64
	ImageURL        *string
	ContactEmail    string
	Package         *string
	YearEstablished *int
	Employees       *int
	Revenue         *int64
	Reason          *string
	Assets          *string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Business, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]Business, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Business, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Search filters the active listings in memory using the shared
// criteria semantics from the search package.
func (s *Service) Search(ctx context.Context, criteria search.BusinessCriteria) ([]Business, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("searching businesses: %w", err)
	}

	return search.Businesses(active, criteria), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Business, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new listing owned by the caller. Moderation fields
// are forced server-side: every listing starts pending, unpaid, and
// inactive regardless of what the request carried.
func (s *Service) Create(ctx context.Context, in CreateBusiness) (*Business, error) {
	return s.repo.Create(ctx, &Business{
		UserID:          &in.UserID,
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Country:         in.Country,
		State:           in.State,
		Price:           in.Price,
		ImageURL:        in.ImageURL,
		ContactEmail:    in.ContactEmail,
		Package:         in.Package,
		YearEstablished: in.YearEstablished,
		Employees:       in.Employees,
		Revenue:         in.Revenue,
		Reason:          in.Reason,
		Assets:          in.Assets,
		Status:          StatusPending,
		PaymentStatus:   PaymentUnpaid,
		IsActive:        false,
	})
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string, isActive *bool) (*Business, error) {
	if !ValidStatus(status) {
		return nil, core.ValidationAppError(
			fmt.Sprintf("Invalid status %q: must be pending, active, or inactive", status),
		)
	}

	return s.repo.UpdateStatus(ctx, id, status, isActive)
}
