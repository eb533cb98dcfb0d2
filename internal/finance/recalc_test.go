package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubFinance/internal/models"
)

func TestRecalculate(t *testing.T) {
	t.Parallel()

	t.Run("Cost raise reverts paid participant", func(t *testing.T) {
		t.Parallel()

		// 2000 across 3 participants is 670 each; one already paid
		payments := []models.Payment{
			{ID: 1, TotalPaid: 670, CurrentDue: 670, Status: models.PaymentPaid},
			{ID: 2, TotalPaid: 0, CurrentDue: 670, Status: models.PaymentPending},
			{ID: 3, TotalPaid: 0, CurrentDue: 670, Status: models.PaymentPending},
		}

		// cost edited to 2100: everyone now owes 700
		newDue := PerParticipantAmount(2100, 3)
		require.Equal(t, int64(700), newDue)

		surplus := Recalculate(payments, newDue)

		assert.Zero(t, surplus)
		assert.Equal(t, models.PaymentPartial, payments[0].Status)
		assert.Equal(t, int64(700), payments[0].CurrentDue)
		assert.Equal(t, int64(670), payments[0].TotalPaid)
		assert.Equal(t, models.PaymentPending, payments[1].Status)
		assert.Equal(t, models.PaymentPending, payments[2].Status)
	})

	t.Run("Cost drop produces surplus", func(t *testing.T) {
		t.Parallel()

		payments := []models.Payment{
			{ID: 1, TotalPaid: 700, CurrentDue: 700, Status: models.PaymentPaid},
			{ID: 2, TotalPaid: 700, CurrentDue: 700, Status: models.PaymentPaid},
			{ID: 3, TotalPaid: 0, CurrentDue: 700, Status: models.PaymentPending},
		}

		surplus := Recalculate(payments, 600)

		assert.Equal(t, int64(200), surplus)
		assert.Equal(t, models.PaymentPaid, payments[0].Status)
		assert.Equal(t, models.PaymentPaid, payments[1].Status)
		assert.Equal(t, models.PaymentPending, payments[2].Status)
		for _, p := range payments {
			assert.Equal(t, int64(600), p.CurrentDue)
		}
	})

	t.Run("Idempotent for a stable due", func(t *testing.T) {
		t.Parallel()

		payments := []models.Payment{
			{ID: 1, TotalPaid: 700, CurrentDue: 670, Status: models.PaymentPaid},
			{ID: 2, TotalPaid: 300, CurrentDue: 670, Status: models.PaymentPartial},
			{ID: 3, TotalPaid: 0, CurrentDue: 670, Status: models.PaymentPending},
		}

		first := Recalculate(payments, 650)

		snapshot := make([]models.Payment, len(payments))
		copy(snapshot, payments)

		second := Recalculate(payments, 650)

		assert.Equal(t, first, second)
		assert.Equal(t, snapshot, payments)
	})

	t.Run("Empty payment list", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, Recalculate(nil, 500))
	})
}
