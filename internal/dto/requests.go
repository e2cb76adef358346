package dto

type QuoteRequest struct {
	Subtotal float64  `json:"subtotal" binding:"required,gt=0"`
	Tax      *float64 `json:"tax"` // omitted: derived from the configured tax rate
}

type OpenCheckoutRequest struct {
	Subtotal float64 `json:"subtotal" binding:"required,gt=0"`
	Tax      float64 `json:"tax" binding:"gte=0"`
}

// SelectMethodRequest carries the method tag and that method's fields.
// Only the fields for the named method are read; the session keeps
// nothing else.
type SelectMethodRequest struct {
	Method string `json:"method" binding:"required"`

	// cash
	AmountReceived *float64 `json:"amount_received"`

	// mobile + split
	MobileNumber string   `json:"mobile_number"`
	CashAmount   *float64 `json:"cash_amount"`
	// Omitted mobile_amount is derived from the payable amount.
	MobileAmount *float64 `json:"mobile_amount"`

	// bnpl
	ProviderID   string   `json:"provider_id"`
	Installments int      `json:"installments"`
	IntervalDays int      `json:"interval_days"`
	DownPayment  *float64 `json:"down_payment"`

	// store credit
	CreditUsed *float64 `json:"credit_used"`

	// card
	CardReference string `json:"card_reference"`

	// customer attachment + loyalty points (methods that support them)
	CustomerQuery  string `json:"customer_query"`
	PointsRedeemed *int   `json:"points_redeemed"`
}
