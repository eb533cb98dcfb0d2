package postgres

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubFinance/internal/lifecycle"
	"clubFinance/internal/models"
	"clubFinance/internal/storage"
)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return &Storage{DB: db}, mock
}

func eventRow(id int, status models.EventStatus, totalCost int64, deadline time.Time, count int) *sqlmock.Rows {
	now := time.Now()

	return sqlmock.NewRows([]string{
		"id", "title", "date", "total_cost", "duration_minutes", "deadline", "status",
		"participant_count", "original_count", "team_fund", "total_collected",
		"vendor_paid", "vendor_paid_at", "created_at", "closed_at", "locked_at", "last_edited_at",
	}).AddRow(
		id, "Friday training", now.Add(48*time.Hour), totalCost, 90, deadline, string(status),
		count, count, int64(0), int64(0), false, nil, now, nil, nil, nil,
	)
}

func expectEventLock(mock sqlmock.Sqlmock, id int, rows *sqlmock.Rows) {
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(rows)
}

func TestCloseEvent_CreatesOnePaymentPerJoinedParticipant(t *testing.T) {
	s, mock := newMockStorage(t)

	deadline := time.Now().Add(24 * time.Hour)

	mock.ExpectBegin()
	expectEventLock(mock, 42, eventRow(42, models.EventOpen, 2000, deadline, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM participations")).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'closed', participant_count = $2, original_count = $2")).
		WithArgs(42, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// 2000 over 3 heads rounds up to 670 per participant.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments (event_id, participant_id, participant_name, original_due, current_due)")).
		WithArgs(42, int64(670)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, s.CloseEvent(42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseEvent_NoParticipantsSkipsPayments(t *testing.T) {
	s, mock := newMockStorage(t)

	deadline := time.Now().Add(24 * time.Hour)

	mock.ExpectBegin()
	expectEventLock(mock, 42, eventRow(42, models.EventOpen, 2000, deadline, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM participations")).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'closed', participant_count = $2, original_count = $2")).
		WithArgs(42, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.CloseEvent(42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseEvent_AlreadyClosed(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	expectEventLock(mock, 42, eventRow(42, models.EventClosed, 2000, time.Now().Add(24*time.Hour), 3))
	mock.ExpectRollback()

	err := s.CloseEvent(42)
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReopenEvent_DiscardsPaymentsAndResetsMoney(t *testing.T) {
	s, mock := newMockStorage(t)

	deadline := time.Now().Add(24 * time.Hour)

	mock.ExpectBegin()
	expectEventLock(mock, 7, eventRow(7, models.EventClosed, 2000, deadline, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payments WHERE event_id = $1")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("(?s)" +
		regexp.QuoteMeta("SET status = 'open',") + ".*" +
		regexp.QuoteMeta("SELECT COUNT(*) FROM participations") + ".*" +
		regexp.QuoteMeta("team_fund = 0, total_collected = 0, vendor_paid = FALSE,")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.ReopenEvent(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReopenEvent_AfterDeadline(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	expectEventLock(mock, 7, eventRow(7, models.EventClosed, 2000, time.Now().Add(-time.Hour), 3))
	mock.ExpectRollback()

	err := s.ReopenEvent(7)
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaidThenUnpaid_RestoresPristinePending(t *testing.T) {
	s, mock := newMockStorage(t)

	deadline := time.Now().Add(24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT event_id FROM payments WHERE id = $1")).
		WithArgs(15).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(42))
	expectEventLock(mock, 42, eventRow(42, models.EventClosed, 2000, deadline, 3))
	mock.ExpectExec(regexp.QuoteMeta("SET total_paid = current_due, status = 'paid', paid_at = NOW(),")).
		WithArgs(15, "treasurer").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SELECT COALESCE(SUM(total_paid), 0) FROM payments WHERE event_id = $1")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.MarkPaid(15, "treasurer"))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT event_id FROM payments WHERE id = $1")).
		WithArgs(15).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(42))
	expectEventLock(mock, 42, eventRow(42, models.EventClosed, 2000, deadline, 3))
	mock.ExpectExec("(?s)" +
		regexp.QuoteMeta("SET total_paid = 0, status = 'pending', paid_at = NULL,") + ".*" +
		regexp.QuoteMeta("marked_paid_by = ''")).
		WithArgs(15).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SELECT COALESCE(SUM(total_paid), 0) FROM payments WHERE event_id = $1")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.MarkUnpaid(15))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkUnpaid_PaymentNotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT event_id FROM payments WHERE id = $1")).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := s.MarkUnpaid(99)
	require.ErrorIs(t, err, storage.ErrPaymentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveEvent_DeletesParticipationRow(t *testing.T) {
	s, mock := newMockStorage(t)

	deadline := time.Now().Add(24 * time.Hour)

	mock.ExpectBegin()
	expectEventLock(mock, 5, eventRow(5, models.EventOpen, 2000, deadline, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM participations")).
		WithArgs(5, "user-17").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE events SET participant_count = (")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.LeaveEvent(5, "user-17"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveEvent_NotJoined(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	expectEventLock(mock, 5, eventRow(5, models.EventOpen, 2000, time.Now().Add(24*time.Hour), 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM participations")).
		WithArgs(5, "user-404").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.LeaveEvent(5, "user-404")
	require.ErrorIs(t, err, storage.ErrParticipationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummary(t *testing.T) {
	cases := []struct {
		name         string
		eventIncome  int64
		directIncome int64
		expenses     int64
		wantBalance  int64
	}{
		{
			name:         "surplus",
			eventIncome:  5000,
			directIncome: 1500,
			expenses:     4000,
			wantBalance:  2500,
		},
		{
			name:         "overspent clamps to zero",
			eventIncome:  1000,
			directIncome: 0,
			expenses:     9000,
			wantBalance:  0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newMockStorage(t)

			mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(total_collected), 0) FROM events")).
				WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(tc.eventIncome))
			mock.ExpectQuery(regexp.QuoteMeta("FROM income")).
				WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(tc.directIncome))
			mock.ExpectQuery(regexp.QuoteMeta("FROM expenses")).
				WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(tc.expenses))

			sum, err := s.Summary()
			require.NoError(t, err)

			assert.Equal(t, tc.eventIncome+tc.directIncome, sum.TotalIncome)
			assert.Equal(t, tc.expenses, sum.TotalExpenses)
			assert.Equal(t, tc.wantBalance, sum.AvailableBalance)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
