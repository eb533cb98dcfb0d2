package models

import "time"

type ParticipationStatus string

// Leaving deletes the participation row, so "joined" is the only status
// ever stored. The column stays because the per-event uniqueness index
// predicates on it.
const ParticipationJoined ParticipationStatus = "joined"

type Participation struct {
	ID              int                 `json:"id"`
	EventID         int                 `json:"event_id"`
	ParticipantID   string              `json:"participant_id"`
	Name            string              `json:"name"`
	Email           string              `json:"email,omitempty"`
	JoinedAt        time.Time           `json:"joined_at"`
	Status          ParticipationStatus `json:"status"`
	AddedAfterClose bool                `json:"added_after_close"`
	AddedBy         string              `json:"added_by,omitempty"`
	AddedByRole     string              `json:"added_by_role,omitempty"`
}
