package sale

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const saleColumns = `id, staff_id, client_id, walk_in_name, product_name, sale_type, amount_cents, payment_method, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Insert writes a sale row inside the caller's transaction. Used by the
// purchase flow so the sale commits together with payment and subscription.
func Insert(ctx context.Context, tx sqlx.ExtContext, staffID int, clientID *int, walkInName *string, productName, saleType string, amountCents int64, paymentMethod string) (*Sale, error) {
	var s Sale
	err := sqlx.GetContext(ctx, tx, &s, `
		INSERT INTO sales (staff_id, client_id, walk_in_name, product_name, sale_type, amount_cents, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+saleColumns,
		staffID, clientID, walkInName, productName, saleType, amountCents, paymentMethod)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Record(ctx context.Context, staffID int, clientID *int, walkInName *string, productName, saleType string, amountCents int64, paymentMethod string) (*Sale, error) {
	return Insert(ctx, r.db, staffID, clientID, walkInName, productName, saleType, amountCents, paymentMethod)
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]SaleWithNames, error) {
	if limit <= 0 {
		limit = 50
	}

	var sales []SaleWithNames
	err := r.db.SelectContext(ctx, &sales, `
		SELECT
			s.id,
			s.staff_id,
			s.client_id,
			s.walk_in_name,
			s.product_name,
			s.sale_type,
			s.amount_cents,
			s.payment_method,
			s.created_at,
			st.full_name AS staff_name,
			c.full_name AS client_name
		FROM sales s
		JOIN users st ON s.staff_id = st.id
		LEFT JOIN users c ON s.client_id = c.id
		ORDER BY s.created_at DESC
		LIMIT $1
	`, limit)
	return sales, err
}

func (r *repository) RevenueTodayCents(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM sales
		WHERE created_at >= date_trunc('day', NOW())
	`)
	return total, err
}

func (r *repository) Analytics(ctx context.Context) (*Analytics, error) {
	var a Analytics
	err := r.db.GetContext(ctx, &a, `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_members,
			(SELECT COUNT(*) FROM users WHERE role = 'client' AND active) AS active_clients,
			(SELECT COUNT(*) FROM check_ins WHERE checked_in_at >= date_trunc('day', NOW())) AS check_ins_today,
			(SELECT COUNT(*) FROM sales WHERE created_at >= date_trunc('day', NOW())) AS sales_today,
			(SELECT COALESCE(SUM(amount_cents), 0) FROM sales WHERE created_at >= date_trunc('day', NOW())) AS revenue_today_cents,
			(SELECT COALESCE(SUM(amount_cents), 0) FROM sales WHERE created_at >= date_trunc('month', NOW())) AS revenue_month_cents
	`)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
