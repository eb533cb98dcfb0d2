package finance

import "clubFinance/internal/models"

const (
	// MinCharge is the smallest per-participant charge ever billed.
	MinCharge = 100
	// RoundStep is the grid the charge is rounded up to.
	RoundStep = 10
)

// PerParticipantAmount converts an event's total cost into the amount each
// participant owes. Zero participants means no charge yet, not an error.
// The raw share is floored at MinCharge and rounded up to the next
// multiple of RoundStep, so the result is always >= 100 and divisible by
// 10, and the club never under-collects against the total cost.
func PerParticipantAmount(totalCost int64, participantCount int) int64 {
	if participantCount <= 0 {
		return 0
	}

	raw := totalCost / int64(participantCount)
	if totalCost%int64(participantCount) != 0 {
		raw++
	}

	if raw < MinCharge {
		return MinCharge
	}

	if rem := raw % RoundStep; rem != 0 {
		raw += RoundStep - rem
	}

	return raw
}

// StatusFor derives a payment's status from what was paid against what is
// currently due. It is the single source of truth for payment status.
func StatusFor(totalPaid, currentDue int64) models.PaymentStatus {
	switch {
	case totalPaid <= 0:
		return models.PaymentPending
	case totalPaid >= currentDue:
		return models.PaymentPaid
	default:
		return models.PaymentPartial
	}
}
