package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

var seedCustomers = []struct {
	ID            string
	Name          string
	Phone         string
	LoyaltyCard   string
	PointsBalance int
	StoreCredit   float64
}{
	{"cust_0001", "Wanjiku Kamau", "0712345678", "LC-1001", 450, 2500.00},
	{"cust_0002", "Otieno Odhiambo", "254722000111", "LC-1002", 120, 0},
	{"cust_0003", "Amina Hassan", "0733556677", "LC-1003", 0, 800.00},
	{"cust_0004", "Kipchoge Rotich", "0791234567", "LC-1004", 1500, 10000.00},
	{"cust_0005", "Njeri Mwangi", "254110223344", "LC-1005", 75, 150.50},
	{"cust_0006", "Baraka Mutua", "0101987654", "LC-1006", 30, 0},
}

var seedProviders = []struct {
	ID             string
	Name           string
	DownPaymentPct float64
	InterestPct    float64
}{
	{"bnpl_lipa", "Lipa Polepole", 20, 10},
	{"bnpl_aspira", "Aspira Credit", 10, 5},
	{"bnpl_flexpay", "FlexPay", 0, 15},
}

// SeedData loads the demo customer registry and BNPL provider catalog.
// It is idempotent: a non-empty customers table means a previous run
// already seeded.
func SeedData(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&count)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Msg("seed data already exists, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, c := range seedCustomers {
		_, err := tx.Exec(ctx,
			`INSERT INTO customers (id, name, phone, loyalty_card_number, points_balance, store_credit)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			c.ID, c.Name, c.Phone, c.LoyaltyCard, c.PointsBalance, c.StoreCredit)
		if err != nil {
			return fmt.Errorf("insert customer %s: %w", c.ID, err)
		}
	}
	log.Info().Int("count", len(seedCustomers)).Msg("inserted customers")

	for _, p := range seedProviders {
		_, err := tx.Exec(ctx,
			`INSERT INTO bnpl_providers (id, name, down_payment_percentage, interest_rate_percentage)
			VALUES ($1, $2, $3, $4)`,
			p.ID, p.Name, p.DownPaymentPct, p.InterestPct)
		if err != nil {
			return fmt.Errorf("insert provider %s: %w", p.ID, err)
		}
	}
	log.Info().Int("count", len(seedProviders)).Msg("inserted bnpl providers")

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed data: %w", err)
	}

	log.Info().Msg("seed data loaded")
	return nil
}
