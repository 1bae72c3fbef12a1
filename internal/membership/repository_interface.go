package membership

import (
	"context"
	"time"

	"github.com/tgzgondoz/family-fitness-gym/internal/payment"
)

// PurchaseRecord carries everything the purchase transaction writes.
type PurchaseRecord struct {
	UserID        int
	Plan          Plan
	Method        payment.Method
	Reference     string
	PhoneNumber   *string
	EcocashNumber *string
	StartDate     time.Time
	EndDate       time.Time

	// StaffID is set when the purchase was processed at the front desk;
	// it additionally produces a sale record for revenue reporting.
	StaffID *int
}

type Repository interface {
	CreatePurchase(ctx context.Context, rec PurchaseRecord) (*Subscription, *payment.Payment, error)
	LatestByUser(ctx context.Context, userID int) (*Subscription, error)
	GetByID(ctx context.Context, id int) (*Subscription, error)
	ListByUser(ctx context.Context, userID int) ([]Subscription, error)
	Cancel(ctx context.Context, id int) error
}
