package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubFinance/internal/models"
)

func TestPerParticipantAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		totalCost int64
		count     int
		expected  int64
	}{
		{
			name:      "Even split on the grid",
			totalCost: 1500,
			count:     10,
			expected:  150,
		},
		{
			name:      "Uneven split rounds up",
			totalCost: 1000,
			count:     9,
			expected:  120,
		},
		{
			name:      "Small share floored to minimum",
			totalCost: 200,
			count:     10,
			expected:  100,
		},
		{
			name:      "Three way split",
			totalCost: 2000,
			count:     3,
			expected:  670,
		},
		{
			name:      "Cost edit repriced",
			totalCost: 2100,
			count:     3,
			expected:  700,
		},
		{
			name:      "Zero participants means no charge",
			totalCost: 5000,
			count:     0,
			expected:  0,
		},
		{
			name:      "Zero cost still bills the minimum",
			totalCost: 0,
			count:     4,
			expected:  100,
		},
		{
			name:      "Exact grid value unchanged",
			totalCost: 660,
			count:     6,
			expected:  110,
		},
		{
			name:      "One above grid rounds to next step",
			totalCost: 666,
			count:     6,
			expected:  120,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, PerParticipantAmount(tc.totalCost, tc.count))
		})
	}
}

func TestPerParticipantAmountProperties(t *testing.T) {
	t.Parallel()

	for totalCost := int64(0); totalCost <= 5000; totalCost += 37 {
		for count := 1; count <= 25; count++ {
			got := PerParticipantAmount(totalCost, count)

			assert.GreaterOrEqual(t, got, int64(MinCharge),
				"charge below minimum for cost=%d count=%d", totalCost, count)
			assert.Zero(t, got%RoundStep,
				"charge off the rounding grid for cost=%d count=%d", totalCost, count)
			assert.GreaterOrEqual(t, got*int64(count), totalCost,
				"under-collection for cost=%d count=%d", totalCost, count)
		}
	}
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		paid     int64
		due      int64
		expected models.PaymentStatus
	}{
		{"Nothing paid", 0, 150, models.PaymentPending},
		{"Partially paid", 50, 150, models.PaymentPartial},
		{"Paid exactly", 150, 150, models.PaymentPaid},
		{"Overpaid", 200, 150, models.PaymentPaid},
		{"Paid then due raised", 150, 200, models.PaymentPartial},
		{"Nothing paid and nothing due", 0, 0, models.PaymentPending},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, StatusFor(tc.paid, tc.due))
		})
	}
}
