package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedData(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	// Tests run from package dir; point to project-root migrations
	MigrationsDir = "file://../../migrations"
	t.Cleanup(func() { MigrationsDir = "file://migrations" })

	dbURL := getTestDBURL()
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Skip("no database available")
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		t.Skip("no database available")
	}

	// Clean and migrate
	_ = RollbackMigrations(dbURL)
	require.NoError(t, RunMigrations(dbURL))

	ctx := context.Background()

	t.Run("seed produces correct counts", func(t *testing.T) {
		err := SeedData(ctx, pool)
		require.NoError(t, err)

		var customerCount int
		err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&customerCount)
		require.NoError(t, err)
		assert.Equal(t, len(seedCustomers), customerCount)

		var providerCount int
		err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM bnpl_providers").Scan(&providerCount)
		require.NoError(t, err)
		assert.Equal(t, len(seedProviders), providerCount)

		var zeroDown int
		err = pool.QueryRow(ctx,
			"SELECT COUNT(*) FROM bnpl_providers WHERE down_payment_percentage = 0").Scan(&zeroDown)
		require.NoError(t, err)
		assert.Equal(t, 1, zeroDown, "one provider finances the full amount")
	})

	t.Run("idempotency - running twice does not duplicate", func(t *testing.T) {
		err := SeedData(ctx, pool)
		require.NoError(t, err)

		var customerCount int
		pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&customerCount)
		assert.Equal(t, len(seedCustomers), customerCount, "second seed should not add data")
	})

	// Clean up
	_ = RollbackMigrations(dbURL)
}
