package checkin

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID *int, walkInName *string, staffID int) (*CheckIn, error) {
	query := `
		INSERT INTO check_ins (user_id, walk_in_name, staff_id)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, walk_in_name, staff_id, checked_in_at
	`

	var ci CheckIn
	err := r.db.GetContext(ctx, &ci, query, userID, walkInName, staffID)
	if err != nil {
		return nil, err
	}

	return &ci, nil
}

func (r *repository) CountByUser(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM check_ins WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]CheckInWithNames, error) {
	if limit <= 0 {
		limit = 50
	}

	var checkIns []CheckInWithNames
	err := r.db.SelectContext(ctx, &checkIns, `
		SELECT
			ci.id,
			ci.user_id,
			ci.walk_in_name,
			ci.staff_id,
			ci.checked_in_at,
			u.full_name AS member_name,
			st.full_name AS staff_name
		FROM check_ins ci
		LEFT JOIN users u ON ci.user_id = u.id
		JOIN users st ON ci.staff_id = st.id
		ORDER BY ci.checked_in_at DESC
		LIMIT $1
	`, limit)
	return checkIns, err
}
