// Package money holds the single copy of the rounding rules every other
// component builds on: cent-precision rounding for accounting amounts and
// whole-unit ceilings for payable totals.
package money

import (
	"github.com/shopspring/decimal"
)

// RoundToCents rounds x to 2 decimal places, half up at cent granularity.
// Used for subtotals, tax, change, split legs and store-credit amounts.
func RoundToCents(x float64) float64 {
	v, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return v
}

// RoundUpToWholeUnit returns the smallest whole currency unit >= x. The
// register never collects a fractional total.
func RoundUpToWholeUnit(x float64) float64 {
	v, _ := decimal.NewFromFloat(x).Ceil().Float64()
	return v
}

// OrderTotal is the externally supplied breakdown of a payable amount.
// Subtotal and tax are cent-precise; Total is a whole unit.
type OrderTotal struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// NewOrderTotal computes the canonical breakdown for a raw subtotal and
// tax: both rounded to cents, the payable total rounded up to a whole
// unit. Total >= Subtotal+Tax and the gap is always under one unit.
func NewOrderTotal(subtotal, tax float64) OrderTotal {
	s := RoundToCents(subtotal)
	t := RoundToCents(tax)
	return OrderTotal{
		Subtotal: s,
		Tax:      t,
		Total:    RoundUpToWholeUnit(s + t),
	}
}

// Quote derives tax from a subtotal at the given rate and returns the
// rounded breakdown.
func Quote(subtotal, taxRate float64) OrderTotal {
	s := RoundToCents(subtotal)
	return NewOrderTotal(s, s*taxRate)
}
