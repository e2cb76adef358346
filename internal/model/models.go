package model

import (
	"time"
)

// Method is the closed set of payment methods the engine accepts.
type Method string

const (
	MethodCash        Method = "cash"
	MethodMobile      Method = "mobile"
	MethodSplit       Method = "cash_mobile_split"
	MethodBNPL        Method = "bnpl"
	MethodStoreCredit Method = "store_credit"
	MethodCard        Method = "card"
)

// Valid reports whether m is one of the known payment methods.
func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodMobile, MethodSplit, MethodBNPL, MethodStoreCredit, MethodCard:
		return true
	}
	return false
}

// SupportsPoints reports whether loyalty point redemption applies to m.
// BNPL and store credit carry their own balance mechanics.
func (m Method) SupportsPoints() bool {
	switch m {
	case MethodCash, MethodMobile, MethodSplit, MethodCard:
		return true
	}
	return false
}

// Customer is read-only reference data from the customer registry. The
// engine never mutates it; balance changes belong to the backend once a
// payment record is submitted.
type Customer struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	LoyaltyCardNumber string    `json:"loyalty_card_number"`
	PointsBalance     int       `json:"points_balance"`
	StoreCredit       float64   `json:"store_credit"`
	CreatedAt         time.Time `json:"created_at"`
}

// BNPLProvider is external reference data for deferred payment plans.
type BNPLProvider struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	DownPaymentPercentage  float64   `json:"down_payment_percentage"`
	InterestRatePercentage float64   `json:"interest_rate_percentage"`
	CreatedAt              time.Time `json:"created_at"`
}

// Payment record statuses. BNPL is the only deferred instrument.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

// PaymentRecord is the canonical, method-tagged output of a completed
// checkout. Exactly one method-specific payload pointer is non-nil; cash
// carries no payload beyond the common fields.
type PaymentRecord struct {
	ID                string  `json:"id"`
	CheckoutID        string  `json:"checkout_id"`
	Method            Method  `json:"payment_method"`
	AmountAfterPoints float64 `json:"amount_after_points"`
	AmountReceived    float64 `json:"amount_received"`
	Change            float64 `json:"change"`
	Status            string  `json:"status"`

	Mobile      *MobilePayload      `json:"mobile,omitempty"`
	Split       *SplitPayload       `json:"split,omitempty"`
	BNPL        *BNPLPayload        `json:"bnpl,omitempty"`
	StoreCredit *StoreCreditPayload `json:"store_credit,omitempty"`
	Card        *CardPayload        `json:"card,omitempty"`

	// Points is present only when points were actually redeemed.
	Points *PointsPayload `json:"points,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type MobilePayload struct {
	Number  string `json:"number"`
	Network string `json:"network"`
}

type SplitPayload struct {
	CashAmount   float64 `json:"cash_amount"`
	MobileAmount float64 `json:"mobile_amount"`
	MobileNumber string  `json:"mobile_number"`
	Network      string  `json:"network"`
}

type BNPLPayload struct {
	ProviderID     string  `json:"provider_id"`
	CustomerID     string  `json:"customer_id"`
	DownPayment    float64 `json:"down_payment"`
	Installments   int     `json:"installments"`
	IntervalDays   int     `json:"interval_days"`
	PerInstallment float64 `json:"per_installment"`
	FinancedTotal  float64 `json:"financed_total"`
}

type StoreCreditPayload struct {
	CustomerID string  `json:"customer_id"`
	Used       float64 `json:"used"`
	Balance    float64 `json:"balance"`
}

type CardPayload struct {
	TransactionReference string `json:"transaction_reference"`
}

// PointsPayload records a loyalty redemption: the points used, the
// pre-redemption balance snapshot, the conversion rate and the currency
// value redeemed.
type PointsPayload struct {
	Used    int     `json:"used"`
	Balance int     `json:"balance"`
	Rate    float64 `json:"rate"`
	Value   float64 `json:"value"`
}

// Installment is one leg of a persisted BNPL repayment schedule.
type Installment struct {
	ID             string    `json:"id"`
	PaymentID      string    `json:"payment_id"`
	Seq            int       `json:"seq"`
	AmountExpected float64   `json:"amount_expected"`
	DueDate        time.Time `json:"due_date"`
	Status         string    `json:"status"`
}
