package membership

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tgzgondoz/family-fitness-gym/internal/payment"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreatePurchase(ctx context.Context, rec PurchaseRecord) (*Subscription, *payment.Payment, error) {
	args := m.Called(ctx, rec)
	var sub *Subscription
	var pay *payment.Payment
	if args.Get(0) != nil {
		sub = args.Get(0).(*Subscription)
	}
	if args.Get(1) != nil {
		pay = args.Get(1).(*payment.Payment)
	}
	return sub, pay, args.Error(2)
}

func (m *MockRepository) LatestByUser(ctx context.Context, userID int) (*Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subscription), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subscription), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int) ([]Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Subscription), args.Error(1)
}

func (m *MockRepository) Cancel(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PaymentReceived(ctx context.Context, userID int, planName, reference string, amountCents int64) error {
	args := m.Called(ctx, userID, planName, reference, amountCents)
	return args.Error(0)
}

func newTestService(repo Repository, notifier Notifier) Service {
	return NewService(repo, NewCatalog(250, 3000, 5000), notifier)
}

func TestService_AccessState(t *testing.T) {
	ctx := context.Background()

	t.Run("no subscription", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("LatestByUser", mock.Anything, 7).Return(nil, nil)

		state, err := newTestService(repo, nil).AccessState(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, AccessExpired, state.Status)
		repo.AssertExpectations(t)
	})

	t.Run("active subscription", func(t *testing.T) {
		repo := new(MockRepository)
		sub := &Subscription{
			UserID:  7,
			Plan:    PlanTrainer,
			Status:  StatusActive,
			EndDate: time.Now().Add(48 * time.Hour),
		}
		repo.On("LatestByUser", mock.Anything, 7).Return(sub, nil)

		state, err := newTestService(repo, nil).AccessState(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, AccessActive, state.Status)
		assert.Equal(t, PlanTrainer, *state.Plan)
	})
}

func TestService_Purchase(t *testing.T) {
	ctx := context.Background()

	validEcocash := PaymentDetails{
		Method:        payment.MethodEcoCash,
		PhoneNumber:   "0771234567",
		EcocashNumber: "0771234567",
		PIN:           "1234",
	}

	t.Run("trainer plan via ecocash", func(t *testing.T) {
		repo := new(MockRepository)
		notifier := new(MockNotifier)

		var captured PurchaseRecord
		repo.On("CreatePurchase", mock.Anything, mock.MatchedBy(func(rec PurchaseRecord) bool {
			captured = rec
			return rec.UserID == 7 &&
				rec.Plan.Type == PlanTrainer &&
				rec.Plan.PriceCents == 5000 &&
				rec.Method == payment.MethodEcoCash &&
				rec.Reference != "" &&
				rec.StaffID == nil
		})).Return(
			&Subscription{ID: 1, UserID: 7, Plan: PlanTrainer, Status: StatusActive},
			&payment.Payment{ID: 2, UserID: 7, AmountCents: 5000, Method: payment.MethodEcoCash, Reference: "ECOCASH-1-ref", Status: payment.StatusCompleted},
			nil,
		)
		notifier.On("PaymentReceived", mock.Anything, 7, "Monthly + Trainer", "ECOCASH-1-ref", int64(5000)).Return(nil)

		sub, pay, err := newTestService(repo, notifier).Purchase(ctx, 7, PlanTrainer, validEcocash, nil)
		require.NoError(t, err)
		assert.Equal(t, StatusActive, sub.Status)
		assert.Equal(t, payment.StatusCompleted, pay.Status)

		// Trainer is a monthly plan: the end lands exactly one calendar month out.
		assert.Equal(t, PeriodEnd(PlanTrainer, captured.StartDate), captured.EndDate)

		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("daily plan lasts exactly one day", func(t *testing.T) {
		repo := new(MockRepository)

		var captured PurchaseRecord
		repo.On("CreatePurchase", mock.Anything, mock.MatchedBy(func(rec PurchaseRecord) bool {
			captured = rec
			return true
		})).Return(&Subscription{Plan: PlanDaily}, &payment.Payment{}, nil)

		_, _, err := newTestService(repo, nil).Purchase(ctx, 3, PlanDaily, PaymentDetails{Method: payment.MethodCash}, nil)
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, captured.EndDate.Sub(captured.StartDate))
	})

	t.Run("staff actor is threaded through", func(t *testing.T) {
		repo := new(MockRepository)
		staffID := 42

		repo.On("CreatePurchase", mock.Anything, mock.MatchedBy(func(rec PurchaseRecord) bool {
			return rec.StaffID != nil && *rec.StaffID == staffID
		})).Return(&Subscription{}, &payment.Payment{}, nil)

		_, _, err := newTestService(repo, nil).Purchase(ctx, 3, PlanMonthly, PaymentDetails{Method: payment.MethodCash}, &staffID)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown plan", func(t *testing.T) {
		repo := new(MockRepository)
		_, _, err := newTestService(repo, nil).Purchase(ctx, 3, "weekly", PaymentDetails{Method: payment.MethodCash}, nil)
		assert.ErrorIs(t, err, ErrUnknownPlan)
		repo.AssertNotCalled(t, "CreatePurchase")
	})

	t.Run("unsupported method", func(t *testing.T) {
		repo := new(MockRepository)
		_, _, err := newTestService(repo, nil).Purchase(ctx, 3, PlanDaily, PaymentDetails{Method: "bitcoin"}, nil)
		assert.ErrorIs(t, err, ErrInvalidPayment)
		repo.AssertNotCalled(t, "CreatePurchase")
	})

	t.Run("ecocash requires phone numbers", func(t *testing.T) {
		repo := new(MockRepository)
		_, _, err := newTestService(repo, nil).Purchase(ctx, 3, PlanDaily, PaymentDetails{Method: payment.MethodEcoCash, PIN: "1234"}, nil)
		assert.ErrorIs(t, err, ErrInvalidPayment)
	})

	t.Run("ecocash pin must be 4 digits", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil)

		for _, pin := range []string{"", "123", "12345", "12a4"} {
			details := validEcocash
			details.PIN = pin
			_, _, err := svc.Purchase(ctx, 3, PlanDaily, details, nil)
			assert.ErrorIs(t, err, ErrInvalidPayment, "pin %q", pin)
		}
		repo.AssertNotCalled(t, "CreatePurchase")
	})

	t.Run("notifier failure does not fail the purchase", func(t *testing.T) {
		repo := new(MockRepository)
		notifier := new(MockNotifier)

		repo.On("CreatePurchase", mock.Anything, mock.Anything).Return(
			&Subscription{Plan: PlanDaily},
			&payment.Payment{Reference: "CASH-1-x"},
			nil,
		)
		notifier.On("PaymentReceived", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError)

		_, _, err := newTestService(repo, notifier).Purchase(ctx, 3, PlanDaily, PaymentDetails{Method: payment.MethodCash}, nil)
		assert.NoError(t, err)
	})
}

func TestService_Cancel(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Cancel", mock.Anything, 5).Return(nil)
	repo.On("Cancel", mock.Anything, 6).Return(ErrSubscriptionNotFound)

	svc := newTestService(repo, nil)
	assert.NoError(t, svc.Cancel(context.Background(), 5))
	assert.ErrorIs(t, svc.Cancel(context.Background(), 6), ErrSubscriptionNotFound)
}
