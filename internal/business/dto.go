// AngelaMos | 2026
// dto.go

package business

type CreateBusinessRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=200"`
	Description     string  `json:"description" validate:"required"`
	Category        string  `json:"category" validate:"required,max=100"`
	Country         string  `json:"country" validate:"required,max=100"`
	State           string  `json:"state" validate:"required,max=100"`
	Price           *int64  `json:"price" validate:"omitempty,gte=0"`
	ImageURL        *string `json:"imageUrl" validate:"omitempty,url"`
	ContactEmail    string  `json:"contactEmail" validate:"required,email"`
	Package         *string `json:"package" validate:"omitempty,max=100"`
	YearEstablished *int    `json:"yearEstablished" validate:"omitempty,gte=1800"`
	Employees       *int    `json:"employees" validate:"omitempty,gte=0"`
	Revenue         *int64  `json:"revenue" validate:"omitempty,gte=0"`
	Reason          *string `json:"reason"`
	Assets          *string `json:"assets"`
}

type UpdateStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=pending active inactive"`
	IsActive *bool  `json:"isActive"`
}
