// AngelaMos | 2026
// service.go

package franchise

import (
	"context"
	"fmt"

	"github.com/b2bmarket/backend/internal/search"
)

type CreateFranchise struct {
	Name            string
	Description     string
	Category        string
	Country         string
	State           string
	InvestmentRange string
	ImageURL        *string
	ContactEmail    string
	InvestmentMin   *int64
	InvestmentMax   *int64
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Franchise, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]Franchise, error) {
	return s.repo.ListAll(ctx)
}

// Search filters the active listings in memory. The criteria sentinels
// ("All Business Categories" and friends) and the investment range
// overlap rule live in the search package.
func (s *Service) Search(ctx context.Context, criteria search.FranchiseCriteria) ([]Franchise, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("searching franchises: %w", err)
	}

	return search.Franchises(active, criteria), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Franchise, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateFranchise) (*Franchise, error) {
	min, max := in.InvestmentMin, in.InvestmentMax

	// Derive filterable bounds from the display range when the caller
	// did not supply them explicitly.
	if min == nil && max == nil && in.InvestmentRange != "" {
		if r, ok := search.ParseInvestmentRange(in.InvestmentRange); ok {
			min, max = &r.Min, &r.Max
		}
	}

	return s.repo.Create(ctx, &Franchise{
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Country:         in.Country,
		State:           in.State,
		InvestmentRange: in.InvestmentRange,
		ImageURL:        in.ImageURL,
		ContactEmail:    in.ContactEmail,
		InvestmentMin:   min,
		InvestmentMax:   max,
		IsActive:        true,
	})
}

func (s *Service) SetActive(ctx context.Context, id int64, isActive bool) (*Franchise, error) {
	return s.repo.UpdateActive(ctx, id, isActive)
}
