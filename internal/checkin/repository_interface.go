package checkin

import "context"

type Repository interface {
	Create(ctx context.Context, userID *int, walkInName *string, staffID int) (*CheckIn, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	ListRecent(ctx context.Context, limit int) ([]CheckInWithNames, error)
}
