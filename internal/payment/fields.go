package payment

import (
	"github.com/dukapos/payment-engine/internal/loyalty"
	"github.com/dukapos/payment-engine/internal/model"
)

// Fields is the tagged union of per-method inputs. A session holds the
// variant for its active method and nothing else, so stale sibling
// fields cannot leak across method switches.
type Fields interface {
	Method() model.Method
}

// PointsState is the redemption sub-state carried by the methods that
// accept loyalty points. Attaching a customer snapshots their balance
// and clears any previously entered redemption.
type PointsState struct {
	Customer        *model.Customer
	Redeemed        int
	BalanceSnapshot int
}

// Attach binds a customer, snapshotting the balance and resetting the
// redeemed count.
func (p *PointsState) Attach(c *model.Customer) {
	p.Customer = c
	p.Redeemed = 0
	p.BalanceSnapshot = 0
	if c != nil {
		p.BalanceSnapshot = c.PointsBalance
	}
}

// Redeem clamps points to the redeemable ceiling for total and records
// the result. Without a customer attached nothing is redeemed.
func (p *PointsState) Redeem(points int, total, rate float64) {
	if p.Customer == nil {
		p.Redeemed = 0
		return
	}
	p.Redeemed = loyalty.Clamp(points, total, p.BalanceSnapshot, rate)
}

type CashFields struct {
	AmountReceived float64
	Points         PointsState
}

func (CashFields) Method() model.Method { return model.MethodCash }

type MobileFields struct {
	Number string
	Points PointsState
}

func (MobileFields) Method() model.Method { return model.MethodMobile }

type SplitFields struct {
	CashAmount   float64
	MobileAmount float64
	// MobileSet marks an operator-entered mobile leg; without it the
	// leg is re-derived from the payable amount whenever the cash leg
	// or the points change.
	MobileSet bool
	Number    string
	Points    PointsState
}

func (SplitFields) Method() model.Method { return model.MethodSplit }

type BNPLFields struct {
	Customer     *model.Customer
	Provider     *model.BNPLProvider
	DownPayment  float64
	Installments int
	IntervalDays int
}

func (BNPLFields) Method() model.Method { return model.MethodBNPL }

type StoreCreditFields struct {
	Customer   *model.Customer
	CreditUsed float64
}

func (StoreCreditFields) Method() model.Method { return model.MethodStoreCredit }

type CardFields struct {
	TransactionReference string
	Points               PointsState
}

func (CardFields) Method() model.Method { return model.MethodCard }

// PointsOf returns the points sub-state of a field variant, or nil for
// methods without point support.
func PointsOf(f Fields) *PointsState {
	return pointsState(f)
}

func pointsState(f Fields) *PointsState {
	switch v := f.(type) {
	case *CashFields:
		return &v.Points
	case *MobileFields:
		return &v.Points
	case *SplitFields:
		return &v.Points
	case *CardFields:
		return &v.Points
	}
	return nil
}
