package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"clubFinance/internal/models"
)

// ErrGuardViolation is the base error for every disallowed status
// transition. Specific guards wrap it with the reason so callers can both
// match with errors.Is and report why.
var ErrGuardViolation = errors.New("transition not permitted")

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrGuardViolation, fmt.Sprintf(format, args...))
}

// CanClose permits close only from open, whether triggered manually or by
// the sweep.
func CanClose(status models.EventStatus) error {
	if status != models.EventOpen {
		return violation("cannot close event in status %q", status)
	}
	return nil
}

// CanReopen permits reopen only from closed and only while the
// registration deadline has not passed.
func CanReopen(status models.EventStatus, deadline, now time.Time) error {
	if status != models.EventClosed {
		return violation("cannot reopen event in status %q", status)
	}
	if !now.Before(deadline) {
		return violation("cannot reopen event after its deadline")
	}
	return nil
}

// CanLock permits lock only from closed. Locked is terminal.
func CanLock(status models.EventStatus) error {
	if status != models.EventClosed {
		return violation("cannot lock event in status %q", status)
	}
	return nil
}

// CanEdit permits title/cost/duration edits while open or closed.
func CanEdit(status models.EventStatus) error {
	if status == models.EventLocked {
		return violation("cannot edit a locked event")
	}
	return nil
}

// CanJoin permits joining while the event is open and the deadline has not
// passed.
func CanJoin(status models.EventStatus, deadline, now time.Time) error {
	if status != models.EventOpen {
		return violation("cannot join event in status %q", status)
	}
	if !now.Before(deadline) {
		return violation("registration deadline has passed")
	}
	return nil
}

// CanLeave permits leaving only while the event is open.
func CanLeave(status models.EventStatus) error {
	if status != models.EventOpen {
		return violation("cannot leave event in status %q", status)
	}
	return nil
}

// CanAddParticipant permits late additions only while the event is closed.
// A locked event is frozen; only payment-status marking remains allowed.
func CanAddParticipant(status models.EventStatus) error {
	if status != models.EventClosed {
		return violation("cannot add participant to event in status %q", status)
	}
	return nil
}

type SweepDecision int

const (
	SweepNone SweepDecision = iota
	SweepClose
	SweepLock
)

// SweepAction decides what the maintenance sweep should do with an event:
// close an open event whose deadline has passed, lock a closed event whose
// scheduled date has passed, otherwise nothing. Locked events always get
// SweepNone, which makes the sweep idempotent.
func SweepAction(status models.EventStatus, deadline, date, now time.Time) SweepDecision {
	switch status {
	case models.EventOpen:
		if !now.Before(deadline) {
			return SweepClose
		}
	case models.EventClosed:
		if !now.Before(date) {
			return SweepLock
		}
	}
	return SweepNone
}
