package payment

import (
	"fmt"
	"math"

	"github.com/dukapos/payment-engine/internal/bnpl"
	"github.com/dukapos/payment-engine/internal/loyalty"
	"github.com/dukapos/payment-engine/internal/phone"
)

// splitTolerance absorbs float rounding when reconciling the two legs
// of a split payment against the payable amount.
const splitTolerance = 0.01

// validate runs the active method's rules against the current total and
// points state. It never mutates the session; building happens
// separately so validation and projection cannot diverge.
func (s *Session) validate() error {
	if s.fields == nil {
		return validationErr("Please select a payment method")
	}

	if err := s.validatePoints(); err != nil {
		return err
	}

	after := s.AmountAfterPoints()

	switch f := s.fields.(type) {
	case *CashFields:
		if f.AmountReceived < after {
			return validationErr(fmt.Sprintf("Insufficient amount received. Required: %.2f", after))
		}

	case *MobileFields:
		if res := phone.Validate(f.Number); !res.Valid {
			return validationErr(res.Err)
		}

	case *SplitFields:
		sum := f.CashAmount + f.MobileAmount
		if math.Abs(sum-after) > splitTolerance {
			return validationErr(fmt.Sprintf(
				"Payment amounts don't match total. Cash: %.2f + Mobile: %.2f = %.2f, but payable amount is %.2f",
				f.CashAmount, f.MobileAmount, sum, after))
		}
		if res := phone.Validate(f.Number); !res.Valid {
			return validationErr(res.Err)
		}

	case *BNPLFields:
		if f.Customer == nil {
			return validationErr("Please search and select a customer")
		}
		if f.Provider == nil {
			return validationErr("Please select a BNPL provider")
		}
		if _, err := bnpl.Calculate(s.Total.Total, f.Provider, f.DownPayment, f.Installments, f.IntervalDays); err != nil {
			return validationErr(err.Error())
		}

	case *StoreCreditFields:
		if f.Customer == nil {
			return validationErr("Please search and select a customer")
		}
		if f.CreditUsed <= 0 {
			return validationErr("Please enter a valid credit amount")
		}
		if f.CreditUsed > s.Total.Total {
			return validationErr("Credit amount cannot exceed purchase total")
		}
		if f.CreditUsed > f.Customer.StoreCredit {
			return validationErr(fmt.Sprintf("Insufficient store credit. Available: %.2f", f.Customer.StoreCredit))
		}

	case *CardFields:
		if f.TransactionReference == "" {
			return validationErr("Please enter the card transaction reference")
		}

	default:
		return validationErr("Please select a payment method")
	}

	return nil
}

// validatePoints re-runs the redemption bounds when the active method
// supports points and a customer is attached, defending against a total
// that changed after the points were entered.
func (s *Session) validatePoints() error {
	ps := pointsState(s.fields)
	if ps == nil || ps.Customer == nil || ps.Redeemed == 0 {
		return nil
	}
	if _, err := loyalty.Apply(ps.Redeemed, s.Total.Total, ps.BalanceSnapshot, s.PointsRate); err != nil {
		return validationErr(err.Error())
	}
	return nil
}
