// AngelaMos | 2026
// service.go

package inquiry

import (
	"context"
	"fmt"

	"github.com/b2bmarket/backend/internal/core"
)

type CreateInquiry struct {
	Name        string
	Email       string
	Phone       *string
	Subject     *string
	Message     string
	FranchiseID *int64
	BusinessID  *int64
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Inquiry, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Inquiry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInquiry) (*Inquiry, error) {
	created, err := s.repo.Create(ctx, &Inquiry{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Subject:     in.Subject,
		Message:     in.Message,
		FranchiseID: in.FranchiseID,
		BusinessID:  in.BusinessID,
	})
	if err != nil {
		return nil, fmt.Errorf("creating inquiry: %w", err)
	}

	return created, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*Inquiry, error) {
	if !ValidStatus(status) {
		return nil, core.ValidationAppError(
			fmt.Sprintf("Invalid status %q: must be pending, replied, or closed", status),
		)
	}

	return s.repo.UpdateStatus(ctx, id, status)
}
