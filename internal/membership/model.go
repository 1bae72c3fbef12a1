package membership

import "time"

type PlanType string
type Status string

const (
	PlanDaily   PlanType = "daily"
	PlanMonthly PlanType = "monthly"
	PlanTrainer PlanType = "trainer"

	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

type Subscription struct {
	ID               int       `db:"id" json:"id"`
	UserID           int       `db:"user_id" json:"user_id"`
	Plan             PlanType  `db:"plan" json:"plan"`
	Status           Status    `db:"status" json:"status"`
	AmountCents      int64     `db:"amount_cents" json:"amount_cents"`
	PaymentID        int       `db:"payment_id" json:"payment_id"`
	PaymentReference string    `db:"payment_reference" json:"payment_reference"`
	StartDate        time.Time `db:"start_date" json:"start_date"`
	EndDate          time.Time `db:"end_date" json:"end_date"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// AccessState is the derived gym-entry decision. It is computed from the
// subscriptions table on every read; the stored status column can be stale.
type AccessState struct {
	Status    string     `json:"status"`
	Plan      *PlanType  `json:"plan,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

const (
	AccessActive  = "active"
	AccessExpired = "expired"
)

// DeriveAccessState decides entry from the member's most recently created
// subscription. A cancelled subscription never grants access, whatever its
// end date. Otherwise the end date alone is authoritative: a stored status
// of "active" past its end date reads as expired.
func DeriveAccessState(sub *Subscription, now time.Time) AccessState {
	if sub == nil {
		return AccessState{Status: AccessExpired}
	}
	if sub.Status == StatusCancelled {
		return AccessState{Status: AccessExpired}
	}
	if !sub.EndDate.After(now) {
		return AccessState{Status: AccessExpired}
	}
	plan := sub.Plan
	end := sub.EndDate
	return AccessState{Status: AccessActive, Plan: &plan, ExpiresAt: &end}
}
