// Package bnpl computes Buy-Now-Pay-Later financing: interest-adjusted
// totals, provider-derived down payments and the installment schedule.
package bnpl

import (
	"fmt"
	"time"

	"github.com/dukapos/payment-engine/internal/model"
	"github.com/dukapos/payment-engine/internal/money"
)

// Supported installment counts and payment intervals.
var InstallmentCounts = []int{10, 20, 30, 40, 50, 60}

const (
	IntervalDaily  = 1
	IntervalWeekly = 7
)

// Plan is the reactive breakdown of a BNPL purchase. Recomputed whenever
// the provider, total or installment parameters change; never mutates
// its inputs.
type Plan struct {
	FinancedTotal      float64 `json:"financed_total"`
	DownPayment        float64 `json:"down_payment"`
	DownPaymentDerived bool    `json:"down_payment_derived"`
	Remaining          float64 `json:"remaining"`
	Installments       int     `json:"installments"`
	IntervalDays       int     `json:"interval_days"`
	PerInstallment     float64 `json:"per_installment"`
}

// ValidInstallmentCount reports whether n is one of the supported counts.
func ValidInstallmentCount(n int) bool {
	for _, c := range InstallmentCounts {
		if n == c {
			return true
		}
	}
	return false
}

// ValidInterval reports whether days is a supported payment interval.
func ValidInterval(days int) bool {
	return days == IntervalDaily || days == IntervalWeekly
}

// Calculate builds the plan for orderTotal under provider terms. With a
// provider attached the down payment is derived from its percentage and
// the operator-entered value is ignored; without one, enteredDown is used
// as-is. The down payment must stay within [0, financed total].
func Calculate(orderTotal float64, provider *model.BNPLProvider, enteredDown float64, installments, intervalDays int) (Plan, error) {
	if !ValidInstallmentCount(installments) {
		return Plan{}, fmt.Errorf("unsupported installment count %d", installments)
	}
	if !ValidInterval(intervalDays) {
		return Plan{}, fmt.Errorf("unsupported payment interval %d days", intervalDays)
	}

	financed := orderTotal
	down := enteredDown
	derived := false
	if provider != nil {
		financed = orderTotal * (1 + provider.InterestRatePercentage/100)
		down = money.RoundToCents(orderTotal * provider.DownPaymentPercentage / 100)
		derived = true
	}

	if down < 0 {
		return Plan{}, fmt.Errorf("down payment cannot be negative")
	}
	if down > financed {
		return Plan{}, fmt.Errorf("down payment cannot exceed financed total of %.2f", financed)
	}

	remaining := financed - down
	return Plan{
		FinancedTotal:      financed,
		DownPayment:        down,
		DownPaymentDerived: derived,
		Remaining:          remaining,
		Installments:       installments,
		IntervalDays:       intervalDays,
		PerInstallment:     remaining / float64(installments),
	}, nil
}

// Schedule lays out the plan's installments starting one interval after
// start, each leg expecting the cent-rounded per-installment amount.
func Schedule(plan Plan, start time.Time) []model.Installment {
	out := make([]model.Installment, plan.Installments)
	for i := range out {
		out[i] = model.Installment{
			Seq:            i + 1,
			AmountExpected: money.RoundToCents(plan.PerInstallment),
			DueDate:        start.AddDate(0, 0, plan.IntervalDays*(i+1)),
			Status:         "Pending",
		}
	}
	return out
}
