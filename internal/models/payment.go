package models

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

type Payment struct {
	ID              int    `json:"id"`
	EventID         int    `json:"event_id"`
	ParticipantID   string `json:"participant_id"`
	ParticipantName string `json:"participant_name"`
	// OriginalDue is the charge at creation time; CurrentDue moves with
	// every recalculation.
	OriginalDue     int64         `json:"original_amount_due"`
	CurrentDue      int64         `json:"current_amount_due"`
	TotalPaid       int64         `json:"total_paid"`
	Status          PaymentStatus `json:"status"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	MarkedPaidBy    string        `json:"marked_paid_by,omitempty"`
	AddedAfterClose bool          `json:"added_after_close"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
