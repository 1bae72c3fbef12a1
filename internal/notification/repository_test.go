package notification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotificationMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func notificationRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "title", "body", "type", "read", "created_at"}).
		AddRow(1, 7, "Payment Received", "Thanks", TypePayment, false, now)
}

func TestRepository_Create(t *testing.T) {
	repo, mock, close := setupNotificationMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs(7, "Payment Received", "Thanks", TypePayment).
		WillReturnRows(notificationRows(time.Now()))

	n, err := repo.Create(context.Background(), 7, "Payment Received", "Thanks", TypePayment)
	require.NoError(t, err)
	assert.Equal(t, TypePayment, n.Type)
	assert.False(t, n.Read)
}

func TestRepository_Create_UnknownTypeFallsBackToGeneral(t *testing.T) {
	repo, mock, close := setupNotificationMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs(7, "Hi", "Body", TypeGeneral).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "body", "type", "read", "created_at"}).
			AddRow(2, 7, "Hi", "Body", TypeGeneral, false, time.Now()))

	n, err := repo.Create(context.Background(), 7, "Hi", "Body", "spam")
	require.NoError(t, err)
	assert.Equal(t, TypeGeneral, n.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UnreadCount(t *testing.T) {
	repo, mock, close := setupNotificationMock(t)
	defer close()

	mock.ExpectQuery("SELECT COUNT(.+) FROM notifications").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.UnreadCount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestRepository_MarkRead_OwnerScoped(t *testing.T) {
	repo, mock, close := setupNotificationMock(t)
	defer close()

	// Someone else's notification id affects zero rows.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2")).
		WithArgs(55, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRead(context.Background(), 55, 7)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, close := setupNotificationMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notifications WHERE id = $1 AND user_id = $2")).
		WithArgs(3, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3, 7))
}
