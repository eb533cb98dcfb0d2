package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"clubFinance/internal/finance"
	"clubFinance/internal/models"
	"clubFinance/internal/storage"
)

// createPaymentsTx materializes one pending payment per joined
// participant at the given per-participant rate. Runs inside the close
// transaction; lifecycle gating keeps it from running twice for the same
// close.
func createPaymentsTx(tx *sql.Tx, eventID int, due int64) error {
	query := `
		INSERT INTO payments (event_id, participant_id, participant_name, original_due, current_due)
		SELECT event_id, participant_id, name, $2, $2
		FROM participations
		WHERE event_id = $1 AND status = 'joined'`

	if _, err := tx.Exec(query, eventID, due); err != nil {
		return fmt.Errorf("failed to create payments: %w", err)
	}

	return nil
}

// MarkPaid settles a payment in full at its current due.
func (s *Storage) MarkPaid(paymentID int, actor string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	eventID, err := lockPaymentEvent(tx, paymentID)
	if err != nil {
		return err
	}

	updateQuery := `
		UPDATE payments
		SET total_paid = current_due, status = 'paid', paid_at = NOW(),
			marked_paid_by = $2, updated_at = NOW()
		WHERE id = $1`

	if _, err = tx.Exec(updateQuery, paymentID, actor); err != nil {
		return fmt.Errorf("failed to mark payment paid: %w", err)
	}

	if err = refreshCollectedTx(tx, eventID); err != nil {
		return err
	}

	return tx.Commit()
}

// MarkUnpaid returns a payment to untouched pending state.
func (s *Storage) MarkUnpaid(paymentID int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	eventID, err := lockPaymentEvent(tx, paymentID)
	if err != nil {
		return err
	}

	updateQuery := `
		UPDATE payments
		SET total_paid = 0, status = 'pending', paid_at = NULL,
			marked_paid_by = '', updated_at = NOW()
		WHERE id = $1`

	if _, err = tx.Exec(updateQuery, paymentID); err != nil {
		return fmt.Errorf("failed to mark payment unpaid: %w", err)
	}

	if err = refreshCollectedTx(tx, eventID); err != nil {
		return err
	}

	return tx.Commit()
}

// lockPaymentEvent resolves a payment to its owning event and takes the
// event row lock, keeping payment writes serialized with lifecycle
// operations on the same event.
func lockPaymentEvent(tx *sql.Tx, paymentID int) (int, error) {
	var eventID int
	err := tx.QueryRow(`SELECT event_id FROM payments WHERE id = $1`, paymentID).Scan(&eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrPaymentNotFound
		}
		return 0, fmt.Errorf("failed to get payment: %w", err)
	}

	if _, err = getEventForUpdate(tx, eventID); err != nil {
		return 0, err
	}

	return eventID, nil
}

// refreshCollectedTx rewrites the event's total collected from the payment
// rows. Summing on every write instead of keeping a running counter means
// a missed update cannot make the aggregate drift.
func refreshCollectedTx(tx *sql.Tx, eventID int) error {
	query := `
		UPDATE events SET total_collected = (
			SELECT COALESCE(SUM(total_paid), 0) FROM payments WHERE event_id = $1
		) WHERE id = $1`

	if _, err := tx.Exec(query, eventID); err != nil {
		return fmt.Errorf("failed to update total collected: %w", err)
	}

	return nil
}

// recalculateTx reprices every payment of the event and replaces the team
// fund with the freshly summed surplus. Safe to call repeatedly; a second
// run with the same cost and headcount changes nothing.
func recalculateTx(tx *sql.Tx, eventID int, totalCost int64, participantCount int) error {
	payments, err := getPaymentsTx(tx, eventID)
	if err != nil {
		return err
	}

	newDue := finance.PerParticipantAmount(totalCost, participantCount)
	surplus := finance.Recalculate(payments, newDue)

	updateQuery := `
		UPDATE payments
		SET current_due = $2, status = $3, updated_at = NOW()
		WHERE id = $1`

	for _, p := range payments {
		if _, err = tx.Exec(updateQuery, p.ID, p.CurrentDue, p.Status); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}
	}

	eventQuery := `
		UPDATE events SET team_fund = $2, last_edited_at = NOW()
		WHERE id = $1`

	if _, err = tx.Exec(eventQuery, eventID, surplus); err != nil {
		return fmt.Errorf("failed to update team fund: %w", err)
	}

	return refreshCollectedTx(tx, eventID)
}

const paymentColumns = `
	id, event_id, participant_id, participant_name, original_due,
	current_due, total_paid, status, paid_at, marked_paid_by,
	added_after_close, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (*models.Payment, error) {
	var p models.Payment
	var paidAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.EventID,
		&p.ParticipantID,
		&p.ParticipantName,
		&p.OriginalDue,
		&p.CurrentDue,
		&p.TotalPaid,
		&p.Status,
		&paidAt,
		&p.MarkedPaidBy,
		&p.AddedAfterClose,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paidAt.Valid {
		p.PaidAt = &paidAt.Time
	}

	return &p, nil
}

func (s *Storage) GetPayment(id int) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return payment, nil
}

func (s *Storage) getPayments(eventID int) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE event_id = $1 ORDER BY id ASC`

	return queryPayments(s.DB.Query(query, eventID))
}

func getPaymentsTx(tx *sql.Tx, eventID int) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE event_id = $1 ORDER BY id ASC`

	return queryPayments(tx.Query(query, eventID))
}

func queryPayments(rows *sql.Rows, err error) ([]models.Payment, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, *payment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}
