// AngelaMos | 2026
// entity.go

package franchise

import "time"

// Franchise is a franchise opportunity listing. InvestmentRange is the
// display string; InvestmentMin and InvestmentMax carry the parsed
// bounds used by range filtering and may be absent independently of it.
type Franchise struct {
	ID              int64     `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	Category        string    `db:"category" json:"category"`
	Country         string    `db:"country" json:"country"`
	State           string    `db:"state" json:"state"`
	InvestmentRange string    `db:"investment_range" json:"investmentRange"`
	ImageURL        *string   `db:"image_url" json:"imageUrl,omitempty"`
	ContactEmail    string    `db:"contact_email" json:"contactEmail"`
	InvestmentMin   *int64    `db:"investment_min" json:"investmentMin,omitempty"`
	InvestmentMax   *int64    `db:"investment_max" json:"investmentMax,omitempty"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

func (f Franchise) FilterCategory() string { return f.Category }
func (f Franchise) FilterCountry() string  { return f.Country }
func (f Franchise) FilterState() string    { return f.State }

// InvestmentBounds reports the parsed bounds. Listings missing either
// bound are never excluded by a range criterion.
func (f Franchise) InvestmentBounds() (int64, int64, bool) {
	if f.InvestmentMin == nil || f.InvestmentMax == nil {
		return 0, 0, false
	}
	return *f.InvestmentMin, *f.InvestmentMax, true
}
