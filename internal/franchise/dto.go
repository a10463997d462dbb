// AngelaMos | 2026
// dto.go

package franchise

type CreateFranchiseRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=200"`
	Description     string  `json:"description" validate:"required"`
	Category        string  `json:"category" validate:"required,max=100"`
	Country         string  `json:"country" validate:"required,max=100"`
	State           string  `json:"state" validate:"required,max=100"`
	InvestmentRange string  `json:"investmentRange" validate:"omitempty,max=50"`
	ImageURL        *string `json:"imageUrl" validate:"omitempty,url"`
	ContactEmail    string  `json:"contactEmail" validate:"required,email"`
	InvestmentMin   *int64  `json:"investmentMin" validate:"omitempty,gte=0"`
	InvestmentMax   *int64  `json:"investmentMax" validate:"omitempty,gte=0"`
}

type UpdateActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
