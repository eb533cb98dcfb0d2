package models

import "time"

type EventStatus string

const (
	EventOpen   EventStatus = "open"
	EventClosed EventStatus = "closed"
	EventLocked EventStatus = "locked"
)

type Event struct {
	ID               int         `json:"id"`
	Title            string      `json:"title"`
	Date             time.Time   `json:"date"`
	TotalCost        int64       `json:"total_cost"`
	DurationMinutes  int         `json:"duration_minutes"`
	Deadline         time.Time   `json:"deadline"`
	Status           EventStatus `json:"status"`
	ParticipantCount int         `json:"participant_count"`
	// snapshot taken at close time, kept across later additions
	OriginalCount  int        `json:"original_participant_count"`
	TeamFund       int64      `json:"team_fund"`
	TotalCollected int64      `json:"total_collected"`
	VendorPaid     bool       `json:"vendor_paid"`
	VendorPaidAt   *time.Time `json:"vendor_paid_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	LockedAt       *time.Time `json:"locked_at,omitempty"`
	LastEditedAt   *time.Time `json:"last_edited_at,omitempty"`
}

// EventUpdate carries the editable event fields; nil means unchanged.
type EventUpdate struct {
	Title           *string
	TotalCost       *int64
	DurationMinutes *int
}

// EventDetails is the full picture of one event as served back to
// clients: the event plus its participations, payments, and edit history.
type EventDetails struct {
	Event          Event           `json:"event"`
	Participations []Participation `json:"participations"`
	Payments       []Payment       `json:"payments"`
	Edits          []EditEntry     `json:"edit_history"`
}

// EditEntry is one line of an event's edit history. Recalculated is true
// when the change forced a payment recalculation (cost edits on a closed
// event).
type EditEntry struct {
	ID           int       `json:"id"`
	EventID      int       `json:"event_id"`
	Field        string    `json:"field"`
	OldValue     string    `json:"old_value"`
	NewValue     string    `json:"new_value"`
	Actor        string    `json:"actor"`
	ChangedAt    time.Time `json:"changed_at"`
	Recalculated bool      `json:"recalculated"`
}
