package postgres

import (
	"fmt"
	"time"

	"clubFinance/internal/models"
)

// CreateExpense records an expense. An event_payment expense discharges
// the referenced event's vendor bill and flips its vendor-paid flag in the
// same transaction.
func (s *Storage) CreateExpense(amount int64, date time.Time, category, description string, eventID *int, createdBy string) (int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if category == models.ExpenseEventPayment && eventID != nil {
		if _, err = getEventForUpdate(tx, *eventID); err != nil {
			return 0, err
		}
	}

	insertQuery := `
		INSERT INTO expenses (amount, date, category, description, event_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int
	if err = tx.QueryRow(insertQuery, amount, date, category, description, eventID, createdBy).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create expense: %w", err)
	}

	if category == models.ExpenseEventPayment && eventID != nil {
		vendorQuery := `
			UPDATE events SET vendor_paid = TRUE, vendor_paid_at = NOW()
			WHERE id = $1`

		if _, err = tx.Exec(vendorQuery, *eventID); err != nil {
			return 0, fmt.Errorf("failed to mark vendor paid: %w", err)
		}
	}

	return id, tx.Commit()
}

func (s *Storage) CreateIncome(amount int64, date time.Time, source, description, createdBy string) (int, error) {
	query := `
		INSERT INTO income (amount, date, source, description, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query, amount, date, source, description, createdBy).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create income: %w", err)
	}

	return id, nil
}

// Summary rolls event collections, direct income and expenses into the
// club-wide balance. Read only, recomputed on every call. The available
// balance is clamped at zero; callers who care about over-spending can
// compare the raw totals themselves.
func (s *Storage) Summary() (*models.Summary, error) {
	var sum models.Summary

	eventIncomeQuery := `
		SELECT COALESCE(SUM(total_collected), 0) FROM events
		WHERE status IN ('closed', 'locked')`

	if err := s.DB.QueryRow(eventIncomeQuery).Scan(&sum.EventIncome); err != nil {
		return nil, fmt.Errorf("failed to sum event income: %w", err)
	}

	if err := s.DB.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM income`).Scan(&sum.DirectIncome); err != nil {
		return nil, fmt.Errorf("failed to sum direct income: %w", err)
	}

	if err := s.DB.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&sum.TotalExpenses); err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	sum.TotalIncome = sum.EventIncome + sum.DirectIncome

	sum.AvailableBalance = sum.TotalIncome - sum.TotalExpenses
	if sum.AvailableBalance < 0 {
		sum.AvailableBalance = 0
	}

	return &sum, nil
}
