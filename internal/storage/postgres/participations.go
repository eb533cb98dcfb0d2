package postgres

import (
	"errors"
	"fmt"
	"time"

	"clubFinance/internal/finance"
	"clubFinance/internal/lifecycle"
	"clubFinance/internal/models"
	"clubFinance/internal/storage"

	"github.com/lib/pq"
)

// JoinEvent registers a participant for an open event before its deadline.
// The partial unique index on (event_id, participant_id) backs up the
// duplicate check under concurrency.
func (s *Storage) JoinEvent(eventID int, participantID, name, email string) (int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := getEventForUpdate(tx, eventID)
	if err != nil {
		return 0, err
	}

	if err = lifecycle.CanJoin(event.Status, event.Deadline, time.Now()); err != nil {
		return 0, err
	}

	var exists bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM participations
			WHERE event_id = $1 AND participant_id = $2 AND status = 'joined'
		)`

	if err = tx.QueryRow(checkQuery, eventID, participantID).Scan(&exists); err != nil {
		return 0, fmt.Errorf("failed to check existing participation: %w", err)
	}

	if exists {
		return 0, storage.ErrAlreadyJoined
	}

	insertQuery := `
		INSERT INTO participations (event_id, participant_id, name, email, status)
		VALUES ($1, $2, $3, $4, 'joined')
		RETURNING id`

	var id int
	if err = tx.QueryRow(insertQuery, eventID, participantID, name, email).Scan(&id); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, storage.ErrAlreadyJoined
		}
		return 0, fmt.Errorf("failed to create participation: %w", err)
	}

	countQuery := `
		UPDATE events SET participant_count = (
			SELECT COUNT(*) FROM participations
			WHERE event_id = $1 AND status = 'joined'
		) WHERE id = $1`

	if _, err = tx.Exec(countQuery, eventID); err != nil {
		return 0, fmt.Errorf("failed to update participant count: %w", err)
	}

	return id, tx.Commit()
}

// LeaveEvent removes the participation record entirely while the event is
// still open. Left participants never owe anything.
func (s *Storage) LeaveEvent(eventID int, participantID string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := getEventForUpdate(tx, eventID)
	if err != nil {
		return err
	}

	if err = lifecycle.CanLeave(event.Status); err != nil {
		return err
	}

	deleteQuery := `
		DELETE FROM participations
		WHERE event_id = $1 AND participant_id = $2 AND status = 'joined'`

	result, err := tx.Exec(deleteQuery, eventID, participantID)
	if err != nil {
		return fmt.Errorf("failed to delete participation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrParticipationNotFound
	}

	countQuery := `
		UPDATE events SET participant_count = (
			SELECT COUNT(*) FROM participations
			WHERE event_id = $1 AND status = 'joined'
		) WHERE id = $1`

	if _, err = tx.Exec(countQuery, eventID); err != nil {
		return fmt.Errorf("failed to update participant count: %w", err)
	}

	return tx.Commit()
}

// AddParticipantAfterClose adds a late participant to a closed event: the
// participation and a payment at the new per-participant rate are created,
// the headcount grows by one, and every existing payment is repriced in
// the same transaction.
func (s *Storage) AddParticipantAfterClose(eventID int, participantID, name, email, actor, role string) (int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := getEventForUpdate(tx, eventID)
	if err != nil {
		return 0, err
	}

	if err = lifecycle.CanAddParticipant(event.Status); err != nil {
		return 0, err
	}

	var exists bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM participations
			WHERE event_id = $1 AND participant_id = $2 AND status = 'joined'
		)`

	if err = tx.QueryRow(checkQuery, eventID, participantID).Scan(&exists); err != nil {
		return 0, fmt.Errorf("failed to check existing participation: %w", err)
	}

	if exists {
		return 0, storage.ErrAlreadyJoined
	}

	insertQuery := `
		INSERT INTO participations (event_id, participant_id, name, email, status, added_after_close, added_by, added_by_role)
		VALUES ($1, $2, $3, $4, 'joined', TRUE, $5, $6)
		RETURNING id`

	var id int
	if err = tx.QueryRow(insertQuery, eventID, participantID, name, email, actor, role).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create participation: %w", err)
	}

	newCount := event.ParticipantCount + 1
	newDue := finance.PerParticipantAmount(event.TotalCost, newCount)

	paymentQuery := `
		INSERT INTO payments (event_id, participant_id, participant_name, original_due, current_due, added_after_close)
		VALUES ($1, $2, $3, $4, $4, TRUE)`

	if _, err = tx.Exec(paymentQuery, eventID, participantID, name, newDue); err != nil {
		return 0, fmt.Errorf("failed to create payment: %w", err)
	}

	if _, err = tx.Exec(`UPDATE events SET participant_count = $2 WHERE id = $1`, eventID, newCount); err != nil {
		return 0, fmt.Errorf("failed to update participant count: %w", err)
	}

	if err = recalculateTx(tx, eventID, event.TotalCost, newCount); err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

func (s *Storage) getParticipations(eventID int) ([]models.Participation, error) {
	query := `
		SELECT id, event_id, participant_id, name, email, joined_at, status,
			added_after_close, added_by, added_by_role
		FROM participations
		WHERE event_id = $1
		ORDER BY joined_at ASC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participations: %w", err)
	}
	defer rows.Close()

	var participations []models.Participation
	for rows.Next() {
		var p models.Participation
		err = rows.Scan(
			&p.ID,
			&p.EventID,
			&p.ParticipantID,
			&p.Name,
			&p.Email,
			&p.JoinedAt,
			&p.Status,
			&p.AddedAfterClose,
			&p.AddedBy,
			&p.AddedByRole,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		participations = append(participations, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participations: %w", err)
	}

	return participations, nil
}
