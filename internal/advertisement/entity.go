// AngelaMos | 2026
// entity.go

package advertisement

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

// Advertisement is a paid promotional placement. Like businesses, new
// ads start pending, unpaid, and hidden.
type Advertisement struct {
	ID            int64     `db:"id" json:"id"`
	UserID        *int64    `db:"user_id" json:"userId,omitempty"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	ImageURL      *string   `db:"image_url" json:"imageUrl,omitempty"`
	TargetURL     *string   `db:"target_url" json:"targetUrl,omitempty"`
	Package       *string   `db:"package" json:"package,omitempty"`
	Company       *string   `db:"company" json:"company,omitempty"`
	ContactEmail  string    `db:"contact_email" json:"contactEmail"`
	ContactPhone  *string   `db:"contact_phone" json:"contactPhone,omitempty"`
	Budget        *int64    `db:"budget" json:"budget,omitempty"`
	Status        string    `db:"status" json:"status"`
	PaymentStatus string    `db:"payment_status" json:"paymentStatus"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
