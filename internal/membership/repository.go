package membership

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/tgzgondoz/family-fitness-gym/internal/payment"
	"github.com/tgzgondoz/family-fitness-gym/internal/sale"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadyCancelled     = errors.New("subscription already cancelled")
)

const subscriptionColumns = `id, user_id, plan, status, amount_cents, payment_id, payment_reference, start_date, end_date, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreatePurchase performs the whole purchase as one transaction: payment,
// subscription, optional sale record and the denormalized user summary all
// commit together or not at all. A per-member advisory lock serializes
// concurrent purchases from two sessions, and any subscription still stored
// as active is superseded so the member never holds two at once.
func (r *repository) CreatePurchase(ctx context.Context, rec PurchaseRecord) (*Subscription, *payment.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(rec.UserID)); err != nil {
		return nil, nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE subscriptions
		SET status = 'expired', updated_at = NOW()
		WHERE user_id = $1 AND status = 'active'
	`, rec.UserID)
	if err != nil {
		return nil, nil, err
	}

	pay, err := payment.Insert(ctx, tx, rec.UserID, rec.Plan.PriceCents, rec.Method, rec.Reference, rec.PhoneNumber, rec.EcocashNumber)
	if err != nil {
		return nil, nil, err
	}

	var sub Subscription
	err = sqlx.GetContext(ctx, tx, &sub, `
		INSERT INTO subscriptions (user_id, plan, status, amount_cents, payment_id, payment_reference, start_date, end_date)
		VALUES ($1, $2, 'active', $3, $4, $5, $6, $7)
		RETURNING `+subscriptionColumns,
		rec.UserID, rec.Plan.Type, rec.Plan.PriceCents, pay.ID, rec.Reference, rec.StartDate, rec.EndDate)
	if err != nil {
		return nil, nil, err
	}

	if rec.StaffID != nil {
		_, err = sale.Insert(ctx, tx, *rec.StaffID, &rec.UserID, nil, rec.Plan.Name, sale.TypeSubscription, rec.Plan.PriceCents, string(rec.Method))
		if err != nil {
			return nil, nil, err
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users
		SET subscription_type = $1, subscription_end_date = $2
		WHERE id = $3
	`, rec.Plan.Type, rec.EndDate, rec.UserID)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	return &sub, pay, nil
}

func (r *repository) LatestByUser(ctx context.Context, userID int) (*Subscription, error) {
	var sub Subscription
	err := r.db.GetContext(ctx, &sub, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Subscription, error) {
	var sub Subscription
	err := r.db.GetContext(ctx, &sub, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Subscription, error) {
	var subs []Subscription
	err := r.db.SelectContext(ctx, &subs, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	return subs, err
}

func (r *repository) Cancel(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status != 'cancelled'
	`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}
