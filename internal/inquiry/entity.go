// AngelaMos | 2026
// entity.go

package inquiry

import "time"

const (
	StatusPending = "pending"
	StatusReplied = "replied"
	StatusClosed  = "closed"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReplied, StatusClosed:
		return true
	}
	return false
}

// Inquiry is a message from a visitor, either through the general
// contact form or attached to a specific franchise or business listing.
type Inquiry struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	Subject     *string   `db:"subject" json:"subject,omitempty"`
	Message     string    `db:"message" json:"message"`
	FranchiseID *int64    `db:"franchise_id" json:"franchiseId,omitempty"`
	BusinessID  *int64    `db:"business_id" json:"businessId,omitempty"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
