package bnpl

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapos/payment-engine/internal/model"
)

func TestCalculate(t *testing.T) {
	provider := &model.BNPLProvider{
		ID:                     "p1",
		Name:                   "Lipa Polepole",
		DownPaymentPercentage:  20,
		InterestRatePercentage: 10,
	}

	t.Run("happy: provider derives down payment and interest", func(t *testing.T) {
		plan, err := Calculate(1000, provider, 999, 10, IntervalWeekly)
		require.NoError(t, err)
		assert.Equal(t, 1100.0, plan.FinancedTotal)
		assert.Equal(t, 200.0, plan.DownPayment, "entered value must be ignored when a provider is attached")
		assert.True(t, plan.DownPaymentDerived)
		assert.Equal(t, 900.0, plan.Remaining)
		assert.Equal(t, 90.0, plan.PerInstallment)
	})

	t.Run("happy: no provider uses entered down payment", func(t *testing.T) {
		plan, err := Calculate(1000, nil, 250, 10, IntervalDaily)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, plan.FinancedTotal)
		assert.Equal(t, 250.0, plan.DownPayment)
		assert.False(t, plan.DownPaymentDerived)
		assert.Equal(t, 75.0, plan.PerInstallment)
	})

	t.Run("bad: negative down payment", func(t *testing.T) {
		_, err := Calculate(1000, nil, -1, 10, IntervalWeekly)
		assert.Error(t, err)
	})

	t.Run("bad: down payment above financed total", func(t *testing.T) {
		_, err := Calculate(1000, nil, 1000.01, 10, IntervalWeekly)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "financed total")
	})

	t.Run("bad: unsupported installment count", func(t *testing.T) {
		_, err := Calculate(1000, provider, 0, 12, IntervalWeekly)
		assert.Error(t, err)
	})

	t.Run("bad: unsupported interval", func(t *testing.T) {
		_, err := Calculate(1000, provider, 0, 10, 30)
		assert.Error(t, err)
	})

	t.Run("property: legs plus down payment reconstruct financed total", func(t *testing.T) {
		for _, rate := range []float64{0, 5, 15} {
			for _, count := range InstallmentCounts {
				p := &model.BNPLProvider{DownPaymentPercentage: 20, InterestRatePercentage: rate}
				plan, err := Calculate(1000, p, 0, count, IntervalWeekly)
				require.NoError(t, err)
				sum := plan.PerInstallment*float64(count) + plan.DownPayment
				assert.InDelta(t, plan.FinancedTotal, sum, 1e-6,
					"rate %.0f%% count %d", rate, count)
			}
		}
	})
}

func TestSchedule(t *testing.T) {
	plan, err := Calculate(1000, nil, 100, 10, IntervalWeekly)
	require.NoError(t, err)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sched := Schedule(plan, start)

	require.Len(t, sched, 10)
	assert.Equal(t, 1, sched[0].Seq)
	assert.Equal(t, start.AddDate(0, 0, 7), sched[0].DueDate)
	assert.Equal(t, start.AddDate(0, 0, 70), sched[9].DueDate)
	for _, leg := range sched {
		assert.Equal(t, 90.0, leg.AmountExpected)
		assert.Equal(t, "Pending", leg.Status)
	}

	total := plan.DownPayment
	for _, leg := range sched {
		total += leg.AmountExpected
	}
	assert.True(t, math.Abs(total-plan.FinancedTotal) < 0.01*float64(len(sched)),
		"schedule drift must stay within a cent per leg")
}
