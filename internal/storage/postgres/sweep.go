package postgres

import (
	"fmt"
	"time"

	"clubFinance/internal/lifecycle"
)

// SweepEvents force-advances events past their deadlines: overdue open
// events are closed, past closed events are locked. Each transition runs
// in its own transaction and re-checks the guard under the event row
// lock, so the sweep is idempotent and safe to run concurrently with
// manual transitions and with itself.
func (s *Storage) SweepEvents(now time.Time) error {
	query := `
		SELECT id FROM events
		WHERE (status = 'open' AND deadline <= $1)
			OR (status = 'closed' AND date <= $1)`

	rows, err := s.DB.Query(query, now)
	if err != nil {
		return fmt.Errorf("failed to query sweep candidates: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err = rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan event id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating sweep candidates: %w", err)
	}

	for _, id := range ids {
		if err = s.sweepOne(id, now); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) sweepOne(id int, now time.Time) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := getEventForUpdate(tx, id)
	if err != nil {
		return err
	}

	// status may have moved since the candidate query ran
	switch lifecycle.SweepAction(event.Status, event.Deadline, event.Date, now) {
	case lifecycle.SweepClose:
		if err = lifecycle.CanClose(event.Status); err != nil {
			return err
		}
		if err = closeEventTx(tx, event); err != nil {
			return err
		}
	case lifecycle.SweepLock:
		if err = lifecycle.CanLock(event.Status); err != nil {
			return err
		}
		lockQuery := `UPDATE events SET status = 'locked', locked_at = NOW() WHERE id = $1`
		if _, err = tx.Exec(lockQuery, id); err != nil {
			return fmt.Errorf("failed to lock event: %w", err)
		}
	case lifecycle.SweepNone:
		return nil
	}

	return tx.Commit()
}
