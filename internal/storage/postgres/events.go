package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"clubFinance/internal/finance"
	"clubFinance/internal/lifecycle"
	"clubFinance/internal/models"
	"clubFinance/internal/storage"
)

func (s *Storage) CreateEvent(title string, date time.Time, totalCost int64, durationMinutes int, deadline time.Time) (int, error) {
	query := `
		INSERT INTO events (title, date, total_cost, duration_minutes, deadline, status)
		VALUES ($1, $2, $3, $4, $5, 'open')
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query, title, date, totalCost, durationMinutes, deadline).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

const eventColumns = `
	id, title, date, total_cost, duration_minutes, deadline, status,
	participant_count, original_count, team_fund, total_collected,
	vendor_paid, vendor_paid_at, created_at, closed_at, locked_at, last_edited_at`

func scanEvent(row interface{ Scan(...any) error }) (*models.Event, error) {
	var event models.Event
	var vendorPaidAt, closedAt, lockedAt, lastEditedAt sql.NullTime

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Date,
		&event.TotalCost,
		&event.DurationMinutes,
		&event.Deadline,
		&event.Status,
		&event.ParticipantCount,
		&event.OriginalCount,
		&event.TeamFund,
		&event.TotalCollected,
		&event.VendorPaid,
		&vendorPaidAt,
		&event.CreatedAt,
		&closedAt,
		&lockedAt,
		&lastEditedAt,
	)
	if err != nil {
		return nil, err
	}

	if vendorPaidAt.Valid {
		event.VendorPaidAt = &vendorPaidAt.Time
	}
	if closedAt.Valid {
		event.ClosedAt = &closedAt.Time
	}
	if lockedAt.Valid {
		event.LockedAt = &lockedAt.Time
	}
	if lastEditedAt.Valid {
		event.LastEditedAt = &lastEditedAt.Time
	}

	return &event, nil
}

func (s *Storage) GetEvent(id int) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// getEventForUpdate locks the event row for the rest of the transaction.
// Every multi-document mutation goes through this lock, which serializes
// concurrent close/reopen/edit/recalculate on the same event.
func getEventForUpdate(tx *sql.Tx, id int) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`

	event, err := scanEvent(tx.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) GetEventDetails(id int) (*models.EventDetails, error) {
	event, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}

	participations, err := s.getParticipations(id)
	if err != nil {
		return nil, err
	}

	payments, err := s.getPayments(id)
	if err != nil {
		return nil, err
	}

	edits, err := s.getEditHistory(id)
	if err != nil {
		return nil, err
	}

	return &models.EventDetails{
		Event:          *event,
		Participations: participations,
		Payments:       payments,
		Edits:          edits,
	}, nil
}

func (s *Storage) getEditHistory(eventID int) ([]models.EditEntry, error) {
	query := `
		SELECT id, event_id, field, old_value, new_value, actor, changed_at, recalculated
		FROM event_edits
		WHERE event_id = $1
		ORDER BY changed_at ASC, id ASC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get edit history: %w", err)
	}
	defer rows.Close()

	var edits []models.EditEntry
	for rows.Next() {
		var e models.EditEntry
		err = rows.Scan(&e.ID, &e.EventID, &e.Field, &e.OldValue, &e.NewValue, &e.Actor, &e.ChangedAt, &e.Recalculated)
		if err != nil {
			return nil, fmt.Errorf("failed to scan edit entry: %w", err)
		}
		edits = append(edits, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating edit history: %w", err)
	}

	return edits, nil
}

// CloseEvent snapshots the joined participant count, computes the
// per-participant charge and materializes one pending payment per joined
// participant, all in one transaction.
func (s *Storage) CloseEvent(id int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := getEventForUpdate(tx, id)
	if err != nil {
		return err
	}

	if err = lifecycle.CanClose(event.Status); err != nil {
		return err
	}

	if err = closeEventTx(tx, event); err != nil {
		return err
	}

	return tx.Commit()
}

// closeEventTx performs the close against an already locked event row.
// Shared by the manual close and the maintenance sweep.
func closeEventTx(tx *sql.Tx, event *models.Event) error {
	var count int
	countQuery := `
		SELECT COUNT(*) FROM participations
		WHERE event_id = $1 AND status = 'joined'`

	if err := tx.QueryRow(countQuery, event.ID).Scan(&count); err != nil {
		return fmt.Errorf("failed to count participants: %w", err)
	}

	due := finance.PerParticipantAmount(event.TotalCost, count)

	updateQuery := `
		UPDATE events
		SET status = 'closed', participant_count = $2, original_count = $2,
			total_collected = 0, team_fund = 0, vendor_paid = FALSE,
			closed_at = NOW()
		WHERE id = $1`

	if _, err := tx.Exec(updateQuery, event.ID, count); err != nil {
		return fmt.Errorf("failed to close event: %w", err)
	}

	if count == 0 {
		return nil
	}

	return createPaymentsTx(tx, event.ID, due)
}

// ReopenEvent returns a closed event to open: all its payments are
// discarded and the money fields reset, so a later close starts clean.
// participant_count is re-counted from the surviving joined rows so it
// stays truthful while the event is open again.
func (s *Storage) ReopenEvent(id int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := getEventForUpdate(tx, id)
	if err != nil {
		return err
	}

	if err = lifecycle.CanReopen(event.Status, event.Deadline, time.Now()); err != nil {
		return err
	}

	if _, err = tx.Exec(`DELETE FROM payments WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete payments: %w", err)
	}

	updateQuery := `
		UPDATE events
		SET status = 'open',
			participant_count = (
				SELECT COUNT(*) FROM participations
				WHERE event_id = $1 AND status = 'joined'
			),
			original_count = 0,
			team_fund = 0, total_collected = 0, vendor_paid = FALSE,
			vendor_paid_at = NULL, closed_at = NULL
		WHERE id = $1`

	if _, err = tx.Exec(updateQuery, id); err != nil {
		return fmt.Errorf("failed to reopen event: %w", err)
	}

	return tx.Commit()
}

// EditEvent applies field edits, appends one edit-history entry per
// changed field, and triggers a full recalculation in the same
// transaction when the total cost changes on a closed event.
func (s *Storage) EditEvent(id int, upd models.EventUpdate, actor string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := getEventForUpdate(tx, id)
	if err != nil {
		return err
	}

	if err = lifecycle.CanEdit(event.Status); err != nil {
		return err
	}

	recalc := upd.TotalCost != nil && *upd.TotalCost != event.TotalCost &&
		event.Status == models.EventClosed

	editQuery := `
		INSERT INTO event_edits (event_id, field, old_value, new_value, actor, recalculated)
		VALUES ($1, $2, $3, $4, $5, $6)`

	changed := false

	if upd.Title != nil && *upd.Title != event.Title {
		if _, err = tx.Exec(editQuery, id, "title", event.Title, *upd.Title, actor, false); err != nil {
			return fmt.Errorf("failed to record edit: %w", err)
		}
		if _, err = tx.Exec(`UPDATE events SET title = $2 WHERE id = $1`, id, *upd.Title); err != nil {
			return fmt.Errorf("failed to update title: %w", err)
		}
		changed = true
	}

	if upd.TotalCost != nil && *upd.TotalCost != event.TotalCost {
		oldCost := strconv.FormatInt(event.TotalCost, 10)
		newCost := strconv.FormatInt(*upd.TotalCost, 10)
		if _, err = tx.Exec(editQuery, id, "total_cost", oldCost, newCost, actor, recalc); err != nil {
			return fmt.Errorf("failed to record edit: %w", err)
		}
		if _, err = tx.Exec(`UPDATE events SET total_cost = $2 WHERE id = $1`, id, *upd.TotalCost); err != nil {
			return fmt.Errorf("failed to update total cost: %w", err)
		}
		changed = true
	}

	if upd.DurationMinutes != nil && *upd.DurationMinutes != event.DurationMinutes {
		oldDur := strconv.Itoa(event.DurationMinutes)
		newDur := strconv.Itoa(*upd.DurationMinutes)
		if _, err = tx.Exec(editQuery, id, "duration_minutes", oldDur, newDur, actor, false); err != nil {
			return fmt.Errorf("failed to record edit: %w", err)
		}
		if _, err = tx.Exec(`UPDATE events SET duration_minutes = $2 WHERE id = $1`, id, *upd.DurationMinutes); err != nil {
			return fmt.Errorf("failed to update duration: %w", err)
		}
		changed = true
	}

	if !changed {
		return tx.Commit()
	}

	if recalc {
		if err = recalculateTx(tx, id, *upd.TotalCost, event.ParticipantCount); err != nil {
			return err
		}
	} else {
		if _, err = tx.Exec(`UPDATE events SET last_edited_at = NOW() WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to update last edited time: %w", err)
		}
	}

	return tx.Commit()
}
