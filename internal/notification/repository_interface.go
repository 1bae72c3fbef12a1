package notification

import "context"

type Repository interface {
	Create(ctx context.Context, userID int, title, body, notifType string) (*Notification, error)
	ListByUser(ctx context.Context, userID int) ([]Notification, error)
	UnreadCount(ctx context.Context, userID int) (int, error)
	MarkRead(ctx context.Context, id, userID int) error
	MarkAllRead(ctx context.Context, userID int) error
	Delete(ctx context.Context, id, userID int) error
}
