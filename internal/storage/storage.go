package storage

import "errors"

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrParticipationNotFound = errors.New("participation not found")
	ErrAlreadyJoined         = errors.New("participant already joined this event")
)
