package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int, title, body, notifType string) (*Notification, error) {
	args := m.Called(ctx, userID, title, body, notifType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Notification), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int) ([]Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notification), args.Error(1)
}

func (m *MockRepository) UnreadCount(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) MarkRead(ctx context.Context, id, userID int) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockRepository) MarkAllRead(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id, userID int) error {
	return m.Called(ctx, id, userID).Error(0)
}

func TestService_Notify_WithoutDispatcher(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, 7, "Hi", "Body", TypeGeneral).
		Return(&Notification{ID: 1, UserID: 7, Type: TypeGeneral}, nil)

	n, err := NewService(repo, nil).Notify(context.Background(), 7, "Hi", "Body", TypeGeneral)
	require.NoError(t, err)
	assert.Equal(t, 1, n.ID)
	repo.AssertExpectations(t)
}

func TestService_PaymentReceived(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, 7, "Payment Received",
		"Your payment of $50.00 for Monthly + Trainer was received. Reference: ECOCASH-1-abc",
		TypePayment,
	).Return(&Notification{ID: 2, UserID: 7, Type: TypePayment}, nil)

	err := NewService(repo, nil).PaymentReceived(context.Background(), 7, "Monthly + Trainer", "ECOCASH-1-abc", 5000)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
