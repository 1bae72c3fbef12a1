package payment

import "time"

type Method string

const (
	MethodCash    Method = "cash"
	MethodEcoCash Method = "ecocash"
	MethodSwipe   Method = "swipe"

	// Payments have no failure path; the gateway is simulated.
	StatusCompleted = "completed"
)

func ValidMethod(m Method) bool {
	switch m {
	case MethodCash, MethodEcoCash, MethodSwipe:
		return true
	}
	return false
}

// Payment rows are immutable once written.
type Payment struct {
	ID            int       `db:"id" json:"id"`
	UserID        int       `db:"user_id" json:"user_id"`
	AmountCents   int64     `db:"amount_cents" json:"amount_cents"`
	Method        Method    `db:"method" json:"method"`
	Reference     string    `db:"reference" json:"reference"`
	Status        string    `db:"status" json:"status"`
	PhoneNumber   *string   `db:"phone_number" json:"phone_number,omitempty"`
	EcocashNumber *string   `db:"ecocash_number" json:"ecocash_number,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
