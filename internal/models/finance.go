package models

import "time"

// ExpenseEventPayment marks an expense that discharges an event's vendor
// bill; such expenses carry the event id they pay off.
const ExpenseEventPayment = "event_payment"

type Expense struct {
	ID          int       `json:"id"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	EventID     *int      `json:"event_id,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type Income struct {
	ID          int       `json:"id"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	Source      string    `json:"source"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary is a derived view, recomputed on demand.
type Summary struct {
	EventIncome      int64 `json:"event_income"`
	DirectIncome     int64 `json:"direct_income"`
	TotalIncome      int64 `json:"total_income"`
	TotalExpenses    int64 `json:"total_expenses"`
	AvailableBalance int64 `json:"available_balance"`
}
