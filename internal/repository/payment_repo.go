package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukapos/payment-engine/internal/model"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// SavePayment inserts the canonical record and, for BNPL, its
// installment schedule in one transaction. The record's method-specific
// payload lands in nullable columns; everything absent stays NULL.
func (r *PaymentRepository) SavePayment(ctx context.Context, rec *model.PaymentRecord, schedule []model.Installment) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		mobileNumber, mobileNetwork, cardRef *string
		splitCash, splitMobile               *float64
		providerID, bnplCustomerID           *string
		bnplDown, bnplPer, bnplFinanced      *float64
		bnplCount, bnplInterval              *int
		creditCustomerID                     *string
		creditUsed, creditBalance            *float64
		pointsUsed, pointsBalance            *int
		pointsRate, pointsValue              *float64
	)

	switch {
	case rec.Mobile != nil:
		mobileNumber, mobileNetwork = &rec.Mobile.Number, &rec.Mobile.Network
	case rec.Split != nil:
		mobileNumber, mobileNetwork = &rec.Split.MobileNumber, &rec.Split.Network
		splitCash, splitMobile = &rec.Split.CashAmount, &rec.Split.MobileAmount
	case rec.BNPL != nil:
		providerID, bnplCustomerID = &rec.BNPL.ProviderID, &rec.BNPL.CustomerID
		bnplDown, bnplPer, bnplFinanced = &rec.BNPL.DownPayment, &rec.BNPL.PerInstallment, &rec.BNPL.FinancedTotal
		bnplCount, bnplInterval = &rec.BNPL.Installments, &rec.BNPL.IntervalDays
	case rec.StoreCredit != nil:
		creditCustomerID = &rec.StoreCredit.CustomerID
		creditUsed, creditBalance = &rec.StoreCredit.Used, &rec.StoreCredit.Balance
	case rec.Card != nil:
		cardRef = &rec.Card.TransactionReference
	}

	if rec.Points != nil {
		pointsUsed, pointsBalance = &rec.Points.Used, &rec.Points.Balance
		pointsRate, pointsValue = &rec.Points.Rate, &rec.Points.Value
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO payments (
			id, checkout_id, payment_method, amount_after_points, amount_received,
			change, status,
			mobile_number, mobile_network,
			split_cash_amount, split_mobile_amount,
			bnpl_provider_id, bnpl_customer_id, bnpl_down_payment, bnpl_installments,
			bnpl_interval_days, bnpl_per_installment, bnpl_financed_total,
			store_credit_customer_id, store_credit_used, store_credit_balance,
			card_reference,
			loyalty_points_used, loyalty_points_balance, loyalty_points_rate, loyalty_points_value,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27)`,
		rec.ID, rec.CheckoutID, rec.Method, rec.AmountAfterPoints, rec.AmountReceived,
		rec.Change, rec.Status,
		mobileNumber, mobileNetwork,
		splitCash, splitMobile,
		providerID, bnplCustomerID, bnplDown, bnplCount,
		bnplInterval, bnplPer, bnplFinanced,
		creditCustomerID, creditUsed, creditBalance,
		cardRef,
		pointsUsed, pointsBalance, pointsRate, pointsValue,
		rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	for _, leg := range schedule {
		_, err = tx.Exec(ctx,
			`INSERT INTO bnpl_installments (id, payment_id, seq, amount_expected, due_date, status)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			uuid.NewString(), leg.PaymentID, leg.Seq, leg.AmountExpected, leg.DueDate, leg.Status)
		if err != nil {
			return fmt.Errorf("insert installment %d: %w", leg.Seq, err)
		}
	}

	return tx.Commit(ctx)
}

// ListInstallments returns the persisted schedule for a BNPL payment.
func (r *PaymentRepository) ListInstallments(ctx context.Context, paymentID string) ([]model.Installment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, payment_id, seq, amount_expected, due_date, status
		FROM bnpl_installments WHERE payment_id = $1 ORDER BY seq`, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var legs []model.Installment
	for rows.Next() {
		var leg model.Installment
		if err := rows.Scan(&leg.ID, &leg.PaymentID, &leg.Seq,
			&leg.AmountExpected, &leg.DueDate, &leg.Status); err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}
	return legs, rows.Err()
}
