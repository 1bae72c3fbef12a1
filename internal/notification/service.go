package notification

import (
	"context"
	"fmt"
)

// Service writes notification rows and hands delivery to the dispatcher.
// Delivery failures never fail the calling operation.
type Service struct {
	repo       Repository
	dispatcher *Dispatcher
}

func NewService(repo Repository, dispatcher *Dispatcher) *Service {
	return &Service{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

func (s *Service) Notify(ctx context.Context, userID int, title, body, notifType string) (*Notification, error) {
	n, err := s.repo.Create(ctx, userID, title, body, notifType)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Enqueue(ctx, userID, title, body, n.Type)
	}

	return n, nil
}

// PaymentReceived satisfies the membership package's Notifier.
func (s *Service) PaymentReceived(ctx context.Context, userID int, planName, reference string, amountCents int64) error {
	body := fmt.Sprintf("Your payment of $%.2f for %s was received. Reference: %s",
		float64(amountCents)/100, planName, reference)
	_, err := s.Notify(ctx, userID, "Payment Received", body, TypePayment)
	return err
}
