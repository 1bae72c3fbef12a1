package membership

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tgzgondoz/family-fitness-gym/internal/logger"
	"github.com/tgzgondoz/family-fitness-gym/internal/metrics"
	"github.com/tgzgondoz/family-fitness-gym/internal/payment"
)

var ErrInvalidPayment = errors.New("invalid payment details")

// PaymentDetails is what the member (or staff) submits with a purchase.
// The gateway is simulated: nothing here is verified against a real
// payment network, only checked for presence and shape.
type PaymentDetails struct {
	Method        payment.Method `json:"method"`
	PhoneNumber   string         `json:"phone_number,omitempty"`
	EcocashNumber string         `json:"ecocash_number,omitempty"`
	PIN           string         `json:"pin,omitempty"`
}

// Notifier lets the purchase flow alert the member without the lifecycle
// core knowing anything about delivery transport.
type Notifier interface {
	PaymentReceived(ctx context.Context, userID int, planName, reference string, amountCents int64) error
}

type Service interface {
	Plans() []Plan
	AccessState(ctx context.Context, memberID int) (AccessState, error)
	Purchase(ctx context.Context, memberID int, planType PlanType, details PaymentDetails, staffID *int) (*Subscription, *payment.Payment, error)
	Cancel(ctx context.Context, subscriptionID int) error
	History(ctx context.Context, memberID int) ([]Subscription, error)
}

type service struct {
	repo     Repository
	catalog  *Catalog
	notifier Notifier
}

func NewService(repo Repository, catalog *Catalog, notifier Notifier) Service {
	return &service{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
	}
}

func (s *service) Plans() []Plan {
	return s.catalog.Plans()
}

// AccessState is a pure read-side derivation; it never mutates stored
// state and is safe to call repeatedly and concurrently.
func (s *service) AccessState(ctx context.Context, memberID int) (AccessState, error) {
	sub, err := s.repo.LatestByUser(ctx, memberID)
	if err != nil {
		return AccessState{}, err
	}
	return DeriveAccessState(sub, time.Now()), nil
}

func (s *service) Purchase(ctx context.Context, memberID int, planType PlanType, details PaymentDetails, staffID *int) (*Subscription, *payment.Payment, error) {
	plan, err := s.catalog.Find(planType)
	if err != nil {
		return nil, nil, err
	}

	if err := validatePayment(plan, details); err != nil {
		return nil, nil, err
	}

	start := time.Now()
	rec := PurchaseRecord{
		UserID:    memberID,
		Plan:      plan,
		Method:    details.Method,
		Reference: payment.NewReference(details.Method),
		StartDate: start,
		EndDate:   PeriodEnd(plan.Type, start),
		StaffID:   staffID,
	}
	if details.PhoneNumber != "" {
		rec.PhoneNumber = &details.PhoneNumber
	}
	if details.EcocashNumber != "" {
		rec.EcocashNumber = &details.EcocashNumber
	}

	sub, pay, err := s.repo.CreatePurchase(ctx, rec)
	if err != nil {
		return nil, nil, err
	}

	channel := "self"
	if staffID != nil {
		channel = "staff"
	}
	metrics.RecordSubscription(string(plan.Type), channel)
	metrics.RecordPayment(string(details.Method))

	if s.notifier != nil {
		if err := s.notifier.PaymentReceived(ctx, memberID, plan.Name, pay.Reference, pay.AmountCents); err != nil {
			// The purchase is committed; a lost notification is not worth failing it.
			logger.Errorf("Failed to notify member %d of payment %s: %v", memberID, pay.Reference, err)
		}
	}

	return sub, pay, nil
}

func (s *service) Cancel(ctx context.Context, subscriptionID int) error {
	if err := s.repo.Cancel(ctx, subscriptionID); err != nil {
		return err
	}
	metrics.RecordSubscriptionCancellation()
	return nil
}

func (s *service) History(ctx context.Context, memberID int) ([]Subscription, error) {
	return s.repo.ListByUser(ctx, memberID)
}

func validatePayment(plan Plan, details PaymentDetails) error {
	if !payment.ValidMethod(details.Method) {
		return fmt.Errorf("%w: unsupported method %q", ErrInvalidPayment, details.Method)
	}
	if plan.PriceCents <= 0 {
		return fmt.Errorf("%w: non-positive amount", ErrInvalidPayment)
	}

	if details.Method == payment.MethodEcoCash {
		if details.PhoneNumber == "" || details.EcocashNumber == "" {
			return fmt.Errorf("%w: phone and ecocash numbers are required", ErrInvalidPayment)
		}
		if len(details.PIN) != 4 {
			return fmt.Errorf("%w: PIN must be 4 digits", ErrInvalidPayment)
		}
		for _, c := range details.PIN {
			if c < '0' || c > '9' {
				return fmt.Errorf("%w: PIN must be 4 digits", ErrInvalidPayment)
			}
		}
	}

	return nil
}
