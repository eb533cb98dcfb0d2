package finance

import "clubFinance/internal/models"

// Recalculate reprices every payment of an event after a cost or headcount
// change. Each payment's current due is replaced with newDue and its
// status re-derived from what was already paid. The returned surplus is
// the sum of overpayments (paid beyond the new due) and becomes the
// event's team fund as a full replacement, never an increment, so calling
// this any number of times with the same inputs yields the same state.
func Recalculate(payments []models.Payment, newDue int64) (surplus int64) {
	for i := range payments {
		p := &payments[i]
		p.CurrentDue = newDue
		p.Status = StatusFor(p.TotalPaid, newDue)

		if over := p.TotalPaid - newDue; over > 0 {
			surplus += over
		}
	}

	return surplus
}
