package payment

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const paymentColumns = `id, user_id, amount_cents, method, reference, status, phone_number, ecocash_number, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByReference(ctx context.Context, reference string) (*Payment, error) {
	var p Payment
	err := r.db.GetContext(ctx, &p, `SELECT `+paymentColumns+` FROM payments WHERE reference = $1`, reference)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Payment, error) {
	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	return payments, err
}

// Insert writes a payment row inside the caller's transaction. Payments are
// only ever created as part of a purchase, never on their own endpoint.
func Insert(ctx context.Context, tx sqlx.ExtContext, userID int, amountCents int64, method Method, reference string, phoneNumber, ecocashNumber *string) (*Payment, error) {
	var p Payment
	err := sqlx.GetContext(ctx, tx, &p, `
		INSERT INTO payments (user_id, amount_cents, method, reference, status, phone_number, ecocash_number)
		VALUES ($1, $2, $3, $4, 'completed', $5, $6)
		RETURNING `+paymentColumns,
		userID, amountCents, method, reference, phoneNumber, ecocashNumber)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
