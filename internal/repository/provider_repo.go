package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukapos/payment-engine/internal/model"
)

type ProviderRepository struct {
	pool *pgxpool.Pool
}

func NewProviderRepository(pool *pgxpool.Pool) *ProviderRepository {
	return &ProviderRepository{pool: pool}
}

func (r *ProviderRepository) ListProviders(ctx context.Context) ([]model.BNPLProvider, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, down_payment_percentage, interest_rate_percentage, created_at
		FROM bnpl_providers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []model.BNPLProvider
	for rows.Next() {
		var p model.BNPLProvider
		if err := rows.Scan(&p.ID, &p.Name, &p.DownPaymentPercentage,
			&p.InterestRatePercentage, &p.CreatedAt); err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}
