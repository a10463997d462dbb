// AngelaMos | 2026
// entity.go

package business

import "time"

const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusInactive = "inactive"

	PaymentUnpaid   = "unpaid"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive:
		return true
	}
	return false
}

// Business is a business-for-sale listing. New listings start pending,
// unpaid, and hidden until an admin moderates them.
type Business struct {
	ID              int64     `db:"id" json:"id"`
	UserID          *int64    `db:"user_id" json:"userId,omitempty"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	Category        string    `db:"category" json:"category"`
	Country         string    `db:"country" json:"country"`
	State           string    `db:"state" json:"state"`
	Price           *int64    `db:"price" json:"price,omitempty"`
	ImageURL        *string   `db:"image_url" json:"imageUrl,omitempty"`
	ContactEmail    string    `db:"contact_email" json:"contactEmail"`
	Package         *string   `db:"package" json:"package,omitempty"`
	YearEstablished *int      `db:"year_established" json:"yearEstablished,omitempty"`
	Employees       *int      `db:"employees" json:"employees,omitempty"`
	Revenue         *int64    `db:"revenue" json:"revenue,omitempty"`
	Reason          *string   `db:"reason" json:"reason,omitempty"`
	Assets          *string   `db:"assets" json:"assets,omitempty"`
	Status          string    `db:"status" json:"status"`
	PaymentStatus   string    `db:"payment_status" json:"paymentStatus"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

func (b Business) FilterCategory() string { return b.Category }
func (b Business) FilterCountry() string  { return b.Country }
func (b Business) FilterState() string    { return b.State }

// FilterPrice reports the asking price. Listings without one are never
// excluded by a max-price criterion.
func (b Business) FilterPrice() (int64, bool) {
	if b.Price == nil {
		return 0, false
	}
	return *b.Price, true
}
