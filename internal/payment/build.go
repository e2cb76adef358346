package payment

import (
	"github.com/dukapos/payment-engine/internal/bnpl"
	"github.com/dukapos/payment-engine/internal/model"
	"github.com/dukapos/payment-engine/internal/money"
	"github.com/dukapos/payment-engine/internal/phone"
)

// MobileNetwork on the record; the engine only handles one carrier.
const MobileNetwork = "Safaricom"

// build projects a validated session into the canonical record. It
// performs no validation itself, only projection and rounding, and is
// called exclusively after validate succeeds.
func (s *Session) build() *model.PaymentRecord {
	red := s.Redemption()
	after := money.RoundToCents(red.AmountAfterPoints)

	rec := &model.PaymentRecord{
		CheckoutID:        s.ID,
		Method:            s.fields.Method(),
		AmountAfterPoints: after,
		AmountReceived:    after,
		Change:            0,
		Status:            model.StatusPaid,
	}

	if red.Points > 0 {
		rec.Points = &model.PointsPayload{
			Used:    red.Points,
			Balance: red.BalanceSnapshot,
			Rate:    red.Rate,
			Value:   red.Value,
		}
	}

	switch f := s.fields.(type) {
	case *CashFields:
		rec.AmountReceived = money.RoundToCents(f.AmountReceived)
		rec.Change = money.RoundToCents(f.AmountReceived - after)

	case *MobileFields:
		rec.Mobile = &model.MobilePayload{
			Number:  phone.Validate(f.Number).Cleaned,
			Network: MobileNetwork,
		}

	case *SplitFields:
		rec.Split = &model.SplitPayload{
			CashAmount:   money.RoundToCents(f.CashAmount),
			MobileAmount: money.RoundToCents(f.MobileAmount),
			MobileNumber: phone.Validate(f.Number).Cleaned,
			Network:      MobileNetwork,
		}

	case *BNPLFields:
		// Validation already proved the plan computes.
		plan, _ := bnpl.Calculate(s.Total.Total, f.Provider, f.DownPayment, f.Installments, f.IntervalDays)
		rec.Status = model.StatusPending
		rec.BNPL = &model.BNPLPayload{
			ProviderID:     f.Provider.ID,
			CustomerID:     f.Customer.ID,
			DownPayment:    money.RoundToCents(plan.DownPayment),
			Installments:   plan.Installments,
			IntervalDays:   plan.IntervalDays,
			PerInstallment: money.RoundToCents(plan.PerInstallment),
			FinancedTotal:  money.RoundToCents(plan.FinancedTotal),
		}

	case *StoreCreditFields:
		rec.StoreCredit = &model.StoreCreditPayload{
			CustomerID: f.Customer.ID,
			Used:       money.RoundToCents(f.CreditUsed),
			Balance:    money.RoundToCents(f.Customer.StoreCredit),
		}

	case *CardFields:
		rec.Card = &model.CardPayload{TransactionReference: f.TransactionReference}
	}

	return rec
}
