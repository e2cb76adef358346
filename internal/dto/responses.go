package dto

import (
	"github.com/dukapos/payment-engine/internal/model"
	"github.com/dukapos/payment-engine/internal/money"
)

type QuoteResponse struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

type CustomerResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	LoyaltyCardNumber string  `json:"loyalty_card_number"`
	PointsBalance     int     `json:"points_balance"`
	StoreCredit       float64 `json:"store_credit"`
}

type ProviderResponse struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	DownPaymentPercentage  float64 `json:"down_payment_percentage"`
	InterestRatePercentage float64 `json:"interest_rate_percentage"`
}

type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// CheckoutResponse is the session view the UI renders after every
// mutation: phase, active method, payable amounts and any derived
// breakdowns.
type CheckoutResponse struct {
	ID                string           `json:"id"`
	Phase             string           `json:"phase"`
	Method            string           `json:"method,omitempty"`
	Total             money.OrderTotal `json:"total"`
	AmountAfterPoints float64          `json:"amount_after_points"`

	Points *PointsView `json:"points,omitempty"`
	Split  *SplitView  `json:"split,omitempty"`
	BNPL   *BNPLView   `json:"bnpl,omitempty"`
}

type PointsView struct {
	CustomerID      string  `json:"customer_id"`
	Redeemed        int     `json:"redeemed"`
	BalanceSnapshot int     `json:"balance_snapshot"`
	MaxRedeemable   int     `json:"max_redeemable"`
	Value           float64 `json:"value"`
}

type SplitView struct {
	CashAmount   float64 `json:"cash_amount"`
	MobileAmount float64 `json:"mobile_amount"`
}

type BNPLView struct {
	FinancedTotal      float64 `json:"financed_total"`
	DownPayment        float64 `json:"down_payment"`
	DownPaymentDerived bool    `json:"down_payment_derived"`
	Remaining          float64 `json:"remaining"`
	PerInstallment     float64 `json:"per_installment"`
	Installments       int     `json:"installments"`
	IntervalDays       int     `json:"interval_days"`
}

type SubmitResponse struct {
	Record       *model.PaymentRecord `json:"record"`
	PointsEarned int                  `json:"points_earned"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
