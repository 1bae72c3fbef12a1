package notification

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotificationNotFound = errors.New("notification not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, title, body, notifType string) (*Notification, error) {
	if !ValidType(notifType) {
		notifType = TypeGeneral
	}

	query := `
		INSERT INTO notifications (user_id, title, body, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, body, type, read, created_at
	`

	var n Notification
	err := r.db.GetContext(ctx, &n, query, userID, title, body, notifType)
	if err != nil {
		return nil, err
	}

	return &n, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Notification, error) {
	var notifications []Notification
	err := r.db.SelectContext(ctx, &notifications, `
		SELECT id, user_id, title, body, type, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	return notifications, err
}

func (r *repository) UnreadCount(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT read
	`, userID)
	return count, err
}

// Owner-scoped mutations: the WHERE clause carries user_id so a member can
// only touch their own rows.
func (r *repository) MarkRead(ctx context.Context, id, userID int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *repository) MarkAllRead(ctx context.Context, userID int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE notifications SET read = TRUE WHERE user_id = $1 AND NOT read
	`, userID)
	return err
}

func (r *repository) Delete(ctx context.Context, id, userID int) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM notifications WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result interface{ RowsAffected() (int64, error) }) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
