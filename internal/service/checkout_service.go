package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dukapos/payment-engine/internal/bnpl"
	"github.com/dukapos/payment-engine/internal/customer"
	"github.com/dukapos/payment-engine/internal/dto"
	"github.com/dukapos/payment-engine/internal/loyalty"
	"github.com/dukapos/payment-engine/internal/model"
	"github.com/dukapos/payment-engine/internal/money"
	"github.com/dukapos/payment-engine/internal/payment"
)

// ErrCheckoutNotFound is returned when a checkout ID does not match an
// open session. Cancelled and submitted checkouts are gone for good.
var ErrCheckoutNotFound = errors.New("checkout not found")

// CustomerSource supplies the read-only customer registry snapshot.
type CustomerSource interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
}

// ProviderSource supplies BNPL provider reference data.
type ProviderSource interface {
	ListProviders(ctx context.Context) ([]model.BNPLProvider, error)
}

// RecordSink receives the built payment record and serves back persisted
// schedules; transport failures and retries are its responsibility, not
// the engine's.
type RecordSink interface {
	SavePayment(ctx context.Context, rec *model.PaymentRecord, schedule []model.Installment) error
	ListInstallments(ctx context.Context, paymentID string) ([]model.Installment, error)
}

// Abandoned sessions (opened, never submitted or cancelled) are swept
// lazily: once the registry grows past sessionSweepAt, OpenCheckout
// drops sessions older than sessionTTL. Package vars so tests can
// tighten them.
var (
	sessionTTL     = 2 * time.Hour
	sessionSweepAt = 1024
)

// sessionEntry pairs a session with its own mutex. The registry lock
// only guards the map; request goroutines aliasing one checkout ID
// serialize on the entry.
type sessionEntry struct {
	mu       sync.Mutex
	sess     *payment.Session
	openedAt time.Time
}

// CheckoutService owns the in-flight checkout sessions and the
// reference-data snapshot the engine reads.
type CheckoutService struct {
	customers CustomerSource
	providers ProviderSource
	sink      RecordSink

	pointsRate float64
	taxRate    float64

	mu           sync.RWMutex
	sessions     map[string]*sessionEntry
	customerSnap []model.Customer
	providerSnap []model.BNPLProvider
	refLoaded    bool
}

func NewCheckoutService(customers CustomerSource, providers ProviderSource, sink RecordSink, pointsRate, taxRate float64) *CheckoutService {
	if pointsRate <= 0 {
		pointsRate = loyalty.DefaultRate
	}
	return &CheckoutService{
		customers:  customers,
		providers:  providers,
		sink:       sink,
		pointsRate: pointsRate,
		taxRate:    taxRate,
		sessions:   make(map[string]*sessionEntry),
	}
}

// LoadReferenceData fetches customers and BNPL providers concurrently
// and swaps in the snapshot. Until it succeeds, BNPL checkouts are
// blocked as a precondition rather than an error.
func (s *CheckoutService) LoadReferenceData(ctx context.Context) error {
	var (
		customers []model.Customer
		providers []model.BNPLProvider
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = s.customers.ListCustomers(gctx)
		if err != nil {
			return fmt.Errorf("list customers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		providers, err = s.providers.ListProviders(gctx)
		if err != nil {
			return fmt.Errorf("list providers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.customerSnap = customers
	s.providerSnap = providers
	s.refLoaded = true
	s.mu.Unlock()
	return nil
}

// Quote computes the canonical total breakdown for a subtotal, deriving
// tax from the configured rate when the caller did not supply one.
func (s *CheckoutService) Quote(subtotal float64, tax *float64) money.OrderTotal {
	if tax != nil {
		return money.NewOrderTotal(subtotal, *tax)
	}
	return money.Quote(subtotal, s.taxRate)
}

// SearchCustomer runs the exact-match lookup over the registry snapshot.
func (s *CheckoutService) SearchCustomer(term string) *model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return customer.Lookup(term, s.customerSnap)
}

// Providers returns the provider snapshot and whether reference data
// has finished loading.
func (s *CheckoutService) Providers() ([]model.BNPLProvider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.providerSnap, s.refLoaded
}

// OpenCheckout creates and opens a session for a subtotal/tax pair.
func (s *CheckoutService) OpenCheckout(subtotal, tax float64) *dto.CheckoutResponse {
	total := money.NewOrderTotal(subtotal, tax)
	sess := payment.NewSession("chk_"+uuid.NewString(), total, s.pointsRate)
	sess.Open()
	resp := s.view(sess)

	s.mu.Lock()
	if len(s.sessions) >= sessionSweepAt {
		s.sweepLocked()
	}
	s.sessions[sess.ID] = &sessionEntry{sess: sess, openedAt: time.Now()}
	s.mu.Unlock()

	return resp
}

// sweepLocked drops sessions abandoned longer than sessionTTL. Caller
// holds s.mu.
func (s *CheckoutService) sweepLocked() {
	cutoff := time.Now().Add(-sessionTTL)
	for id, entry := range s.sessions {
		if entry.openedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// SelectMethod resolves the request's references (customer, provider)
// against the snapshot, installs the method's fields on the session and
// applies any requested point redemption.
func (s *CheckoutService) SelectMethod(id string, req *dto.SelectMethodRequest) (*dto.CheckoutResponse, error) {
	entry, err := s.session(id)
	if err != nil {
		return nil, err
	}

	fields, err := s.buildFields(req)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := entry.sess.SelectMethod(fields); err != nil {
		return nil, err
	}
	if req.PointsRedeemed != nil {
		if err := entry.sess.RedeemPoints(*req.PointsRedeemed); err != nil {
			return nil, err
		}
	}
	return s.view(entry.sess), nil
}

// GetCheckout returns the current session view.
func (s *CheckoutService) GetCheckout(id string) (*dto.CheckoutResponse, error) {
	entry, err := s.session(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return s.view(entry.sess), nil
}

// Submit validates the session, persists the canonical record (plus the
// installment schedule for BNPL) and discards the session. Validation
// and persistence failures both leave the session open so the operator
// can correct or retry; the session closes only once the record is
// durably saved.
func (s *CheckoutService) Submit(ctx context.Context, id string) (*dto.SubmitResponse, error) {
	entry, err := s.session(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	rec, err := entry.sess.Record()
	if err != nil {
		return nil, err
	}
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	var schedule []model.Installment
	if rec.BNPL != nil {
		plan := bnpl.Plan{
			PerInstallment: rec.BNPL.PerInstallment,
			Installments:   rec.BNPL.Installments,
			IntervalDays:   rec.BNPL.IntervalDays,
		}
		schedule = bnpl.Schedule(plan, rec.CreatedAt)
		for i := range schedule {
			schedule[i].PaymentID = rec.ID
		}
	}

	if err := s.sink.SavePayment(ctx, rec, schedule); err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}

	entry.sess.Cancel()
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	earned := 0
	if rec.Status == model.StatusPaid {
		earned = loyalty.PointsEarned(rec.AmountAfterPoints)
	}
	return &dto.SubmitResponse{Record: rec, PointsEarned: earned}, nil
}

// Installments returns the persisted repayment schedule for a BNPL
// payment. Non-BNPL payments simply have none.
func (s *CheckoutService) Installments(ctx context.Context, paymentID string) ([]model.Installment, error) {
	return s.sink.ListInstallments(ctx, paymentID)
}

// Cancel discards the session. Cancelling an unknown or already-closed
// checkout succeeds; there is nothing to undo.
func (s *CheckoutService) Cancel(id string) {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if ok {
		entry.mu.Lock()
		entry.sess.Cancel()
		entry.mu.Unlock()
	}
}

func (s *CheckoutService) session(id string) (*sessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrCheckoutNotFound
	}
	return entry, nil
}

func (s *CheckoutService) buildFields(req *dto.SelectMethodRequest) (payment.Fields, error) {
	method := model.Method(req.Method)
	if !method.Valid() {
		return nil, &payment.Error{Kind: payment.ErrValidation, Message: "Please select a payment method"}
	}

	var attached *model.Customer
	if req.CustomerQuery != "" {
		attached = s.SearchCustomer(req.CustomerQuery)
		if attached == nil {
			return nil, &payment.Error{Kind: payment.ErrValidation, Message: "No customer found. Please check the search term"}
		}
	}

	switch method {
	case model.MethodCash:
		f := &payment.CashFields{AmountReceived: deref(req.AmountReceived)}
		f.Points.Attach(attached)
		return f, nil

	case model.MethodMobile:
		f := &payment.MobileFields{Number: req.MobileNumber}
		f.Points.Attach(attached)
		return f, nil

	case model.MethodSplit:
		f := &payment.SplitFields{
			CashAmount: deref(req.CashAmount),
			Number:     req.MobileNumber,
		}
		if req.MobileAmount != nil {
			f.MobileAmount = *req.MobileAmount
			f.MobileSet = true
		}
		f.Points.Attach(attached)
		return f, nil

	case model.MethodBNPL:
		provider, err := s.resolveProvider(req.ProviderID)
		if err != nil {
			return nil, err
		}
		return &payment.BNPLFields{
			Customer:     attached,
			Provider:     provider,
			DownPayment:  deref(req.DownPayment),
			Installments: req.Installments,
			IntervalDays: req.IntervalDays,
		}, nil

	case model.MethodStoreCredit:
		return &payment.StoreCreditFields{
			Customer:   attached,
			CreditUsed: deref(req.CreditUsed),
		}, nil

	case model.MethodCard:
		f := &payment.CardFields{TransactionReference: req.CardReference}
		f.Points.Attach(attached)
		return f, nil
	}
	return nil, &payment.Error{Kind: payment.ErrValidation, Message: "Please select a payment method"}
}

func (s *CheckoutService) resolveProvider(id string) (*model.BNPLProvider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.refLoaded {
		return nil, &payment.Error{Kind: payment.ErrPrecondition, Message: "BNPL providers are still loading. Try again shortly"}
	}
	if id == "" {
		// Validator reports the missing provider with the rest of the
		// BNPL requirements.
		return nil, nil
	}
	for i := range s.providerSnap {
		if s.providerSnap[i].ID == id {
			return &s.providerSnap[i], nil
		}
	}
	return nil, &payment.Error{Kind: payment.ErrValidation, Message: "Unknown BNPL provider"}
}

func (s *CheckoutService) view(sess *payment.Session) *dto.CheckoutResponse {
	resp := &dto.CheckoutResponse{
		ID:                sess.ID,
		Phase:             string(sess.Phase()),
		Method:            string(sess.Method()),
		Total:             sess.Total,
		AmountAfterPoints: money.RoundToCents(sess.AmountAfterPoints()),
	}

	switch f := sess.Fields().(type) {
	case *payment.SplitFields:
		resp.Split = &dto.SplitView{
			CashAmount:   money.RoundToCents(f.CashAmount),
			MobileAmount: f.MobileAmount,
		}
	case *payment.BNPLFields:
		if plan, err := bnpl.Calculate(sess.Total.Total, f.Provider, f.DownPayment, f.Installments, f.IntervalDays); err == nil {
			resp.BNPL = &dto.BNPLView{
				FinancedTotal:      money.RoundToCents(plan.FinancedTotal),
				DownPayment:        plan.DownPayment,
				DownPaymentDerived: plan.DownPaymentDerived,
				Remaining:          money.RoundToCents(plan.Remaining),
				PerInstallment:     money.RoundToCents(plan.PerInstallment),
				Installments:       plan.Installments,
				IntervalDays:       plan.IntervalDays,
			}
		}
	}

	if ps := payment.PointsOf(sess.Fields()); ps != nil && ps.Customer != nil {
		red := sess.Redemption()
		resp.Points = &dto.PointsView{
			CustomerID:      ps.Customer.ID,
			Redeemed:        ps.Redeemed,
			BalanceSnapshot: ps.BalanceSnapshot,
			MaxRedeemable:   loyalty.MaxRedeemable(sess.Total.Total, ps.BalanceSnapshot, sess.PointsRate),
			Value:           red.Value,
		}
	}
	return resp
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
