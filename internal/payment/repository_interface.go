package payment

import "context"

type Repository interface {
	FindByReference(ctx context.Context, reference string) (*Payment, error)
	ListByUser(ctx context.Context, userID int) ([]Payment, error)
}
