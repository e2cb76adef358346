// Package payment is the transaction engine: a per-checkout session
// holding the active method's fields, the validators that gate
// submission, and the builder that projects a validated session into
// the canonical payment record.
package payment

import (
	"github.com/dukapos/payment-engine/internal/loyalty"
	"github.com/dukapos/payment-engine/internal/model"
	"github.com/dukapos/payment-engine/internal/money"
)

// Phase of a checkout session. The lifecycle is
// Closed -> MethodSelected -> (submit ok) -> Closed, with rejection
// leaving the session in MethodSelected for correction.
type Phase string

const (
	PhaseClosed         Phase = "closed"
	PhaseMethodSelected Phase = "method_selected"
)

// Session is the mutable state of one in-progress payment. Sessions are
// independent per checkout attempt and never shared; callers own any
// synchronization if they multiplex one across goroutines.
type Session struct {
	ID         string
	Total      money.OrderTotal
	PointsRate float64

	phase  Phase
	fields Fields
}

// NewSession creates a closed session for a payable total.
func NewSession(id string, total money.OrderTotal, pointsRate float64) *Session {
	if pointsRate <= 0 {
		pointsRate = loyalty.DefaultRate
	}
	return &Session{ID: id, Total: total, PointsRate: pointsRate, phase: PhaseClosed}
}

func (s *Session) Phase() Phase   { return s.phase }
func (s *Session) Fields() Fields { return s.fields }

// Method returns the active method, or "" when none is selected.
func (s *Session) Method() model.Method {
	if s.fields == nil {
		return ""
	}
	return s.fields.Method()
}

// Open transitions Closed -> MethodSelected with no method chosen.
// Opening an already-open session is a no-op.
func (s *Session) Open() {
	s.phase = PhaseMethodSelected
}

// SelectMethod replaces the session's fields with the given variant.
// Only the incoming method's fields exist afterwards; whatever was
// entered for a previous method is discarded. The split method's mobile
// leg and any entered points are normalized on the way in.
func (s *Session) SelectMethod(f Fields) error {
	if s.phase != PhaseMethodSelected {
		return &Error{Kind: ErrState, Message: "checkout is not open"}
	}
	if f == nil || !f.Method().Valid() {
		return &Error{Kind: ErrValidation, Message: "Please select a payment method"}
	}

	s.fields = f
	s.normalize()
	return nil
}

// RedeemPoints applies an entered point count to the active method,
// clamped to the redeemable ceiling. Methods without point support
// reject the call.
func (s *Session) RedeemPoints(points int) error {
	if s.phase != PhaseMethodSelected || s.fields == nil {
		return &Error{Kind: ErrState, Message: "checkout is not open"}
	}
	ps := pointsState(s.fields)
	if ps == nil {
		return &Error{Kind: ErrValidation, Message: "loyalty points are not available for this payment method"}
	}
	if ps.Customer == nil && points > 0 {
		return &Error{Kind: ErrValidation, Message: "Please search and select a customer with a loyalty card"}
	}
	ps.Redeem(points, s.Total.Total, s.PointsRate)
	s.normalize()
	return nil
}

// Redemption resolves the active points sub-state against the total.
// Methods without points, or with no customer attached, redeem nothing.
func (s *Session) Redemption() loyalty.Redemption {
	base := loyalty.Redemption{Rate: s.PointsRate, AmountAfterPoints: s.Total.Total}
	ps := pointsState(s.fields)
	if ps == nil || ps.Customer == nil || ps.Redeemed == 0 {
		return base
	}
	red, err := loyalty.Apply(ps.Redeemed, s.Total.Total, ps.BalanceSnapshot, s.PointsRate)
	if err != nil {
		// Redeemed counts are clamped on entry; re-validation happens at
		// submit. Fall back to no redemption rather than guessing.
		return base
	}
	return red
}

// AmountAfterPoints is the payable amount once redeemed points are
// deducted.
func (s *Session) AmountAfterPoints() float64 {
	return s.Redemption().AmountAfterPoints
}

// normalize re-derives dependent fields after any mutation: the split
// mobile leg always tracks amountAfterPoints minus the cash leg.
func (s *Session) normalize() {
	if f, ok := s.fields.(*SplitFields); ok && !f.MobileSet {
		remaining := s.AmountAfterPoints() - f.CashAmount
		if remaining < 0 {
			remaining = 0
		}
		f.MobileAmount = money.RoundToCents(remaining)
	}
}

// Record validates the active method against the current total and
// builds the canonical record, leaving the session open. Callers that
// hand the record to an external store close the session with Cancel
// only after the handoff succeeds, so a failed handoff keeps the
// entered data for retry.
func (s *Session) Record() (*model.PaymentRecord, error) {
	if s.phase != PhaseMethodSelected {
		return nil, &Error{Kind: ErrState, Message: "checkout is not open"}
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s.build(), nil
}

// Submit validates, builds and closes the session with a full reset.
// On failure the session stays open for correction.
func (s *Session) Submit() (*model.PaymentRecord, error) {
	record, err := s.Record()
	if err != nil {
		return nil, err
	}
	s.reset()
	return record, nil
}

// Cancel discards all entered data and closes the session. Cancelling a
// closed session is harmless.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.phase = PhaseClosed
	s.fields = nil
}
