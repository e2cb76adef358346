package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukapos/payment-engine/internal/model"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// ListCustomers returns the full registry for the in-memory snapshot
// the lookup runs against. The registry is small (a shop's loyalty
// base); pagination belongs to the admin surface, not the till.
func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, phone, loyalty_card_number, points_balance, store_credit, created_at
		FROM customers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.LoyaltyCardNumber,
			&c.PointsBalance, &c.StoreCredit, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
