// Package loyalty holds the point redemption math shared by every
// payment method that accepts points.
package loyalty

import (
	"fmt"
	"math"

	"github.com/dukapos/payment-engine/internal/money"
)

// DefaultRate is the engine-wide conversion: 1 point = 1 unit of
// currency. Kept as a constant here; a deployment that needs per-business
// rates overrides it through configuration at wiring time.
const DefaultRate = 1.0

// EarnDivisor: customers earn one point per this much spent on a
// completed sale.
const EarnDivisor = 100.0

// Redemption is the outcome of applying redeemed points to a total.
type Redemption struct {
	Points            int     `json:"points"`
	BalanceSnapshot   int     `json:"balance_snapshot"`
	Rate              float64 `json:"rate"`
	Value             float64 `json:"value"`
	AmountAfterPoints float64 `json:"amount_after_points"`
}

// MaxRedeemable is the ceiling on points that may be redeemed against
// total: never more than the balance, never more than the points needed
// to cover the whole total.
func MaxRedeemable(total float64, balance int, rate float64) int {
	needed := int(math.Ceil(total / rate))
	if balance < needed {
		return balance
	}
	return needed
}

// Clamp bounds an entered point count to [0, MaxRedeemable].
func Clamp(points int, total float64, balance int, rate float64) int {
	if points < 0 {
		return 0
	}
	if max := MaxRedeemable(total, balance, rate); points > max {
		return max
	}
	return points
}

// Apply validates a redemption of points against total and computes the
// resulting amounts. A zero-point redemption is always valid and leaves
// the total untouched.
func Apply(points int, total float64, balance int, rate float64) (Redemption, error) {
	if points < 0 {
		return Redemption{}, fmt.Errorf("points cannot be negative")
	}
	if points > balance {
		return Redemption{}, fmt.Errorf("insufficient points. Available: %d points", balance)
	}

	value := float64(points) * rate
	if value > total {
		return Redemption{}, fmt.Errorf("points value (%.2f) cannot exceed purchase total", value)
	}

	return Redemption{
		Points:            points,
		BalanceSnapshot:   balance,
		Rate:              rate,
		Value:             money.RoundToCents(value),
		AmountAfterPoints: money.RoundToCents(math.Max(0, total-value)),
	}, nil
}

// PointsEarned is the number of points a completed sale of amount earns.
func PointsEarned(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Floor(amount / EarnDivisor))
}
