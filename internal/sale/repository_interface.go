package sale

import "context"

type Repository interface {
	Record(ctx context.Context, staffID int, clientID *int, walkInName *string, productName, saleType string, amountCents int64, paymentMethod string) (*Sale, error)
	ListRecent(ctx context.Context, limit int) ([]SaleWithNames, error)
	RevenueTodayCents(ctx context.Context) (int64, error)
	Analytics(ctx context.Context) (*Analytics, error)
}
