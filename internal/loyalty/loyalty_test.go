package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxRedeemable(t *testing.T) {
	t.Run("happy: balance below points needed", func(t *testing.T) {
		assert.Equal(t, 200, MaxRedeemable(1000, 200, 1))
	})

	t.Run("happy: balance above points needed", func(t *testing.T) {
		assert.Equal(t, 1000, MaxRedeemable(1000, 5000, 1))
	})

	t.Run("edge: fractional total rounds points needed up", func(t *testing.T) {
		assert.Equal(t, 101, MaxRedeemable(100.5, 5000, 1))
	})

	t.Run("edge: zero balance", func(t *testing.T) {
		assert.Equal(t, 0, MaxRedeemable(1000, 0, 1))
	})

	t.Run("property: redeeming the ceiling never overshoots below zero", func(t *testing.T) {
		cases := []struct {
			total   float64
			balance int
		}{
			{1000, 200}, {1000, 5000}, {99.99, 40}, {0.5, 10}, {1, 1},
		}
		for _, c := range cases {
			max := MaxRedeemable(c.total, c.balance, 1)
			if max > c.balance {
				t.Fatalf("ceiling %d exceeds balance %d", max, c.balance)
			}
			if red, err := Apply(min(max, c.balance), c.total, c.balance, 1); err == nil {
				assert.GreaterOrEqual(t, red.AmountAfterPoints, 0.0)
			}
		}
	})
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 1000, 200, 1))
	assert.Equal(t, 200, Clamp(500, 1000, 200, 1))
	assert.Equal(t, 150, Clamp(150, 1000, 200, 1))
	assert.Equal(t, 1000, Clamp(4000, 1000, 5000, 1))
}

func TestApply(t *testing.T) {
	t.Run("happy: partial redemption", func(t *testing.T) {
		red, err := Apply(150, 1000, 200, 1)
		require.NoError(t, err)
		assert.Equal(t, 150.0, red.Value)
		assert.Equal(t, 850.0, red.AmountAfterPoints)
		assert.Equal(t, 200, red.BalanceSnapshot)
	})

	t.Run("happy: zero points is a no-op", func(t *testing.T) {
		red, err := Apply(0, 1000, 200, 1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, red.Value)
		assert.Equal(t, 1000.0, red.AmountAfterPoints)
	})

	t.Run("bad: more points than balance", func(t *testing.T) {
		_, err := Apply(300, 1000, 200, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient points")
	})

	t.Run("bad: points value exceeds total", func(t *testing.T) {
		_, err := Apply(1200, 1000, 5000, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed purchase total")
	})

	t.Run("bad: negative points", func(t *testing.T) {
		_, err := Apply(-1, 1000, 200, 1)
		assert.Error(t, err)
	})
}

func TestPointsEarned(t *testing.T) {
	assert.Equal(t, 38, PointsEarned(3863))
	assert.Equal(t, 0, PointsEarned(99.99))
	assert.Equal(t, 1, PointsEarned(100))
	assert.Equal(t, 0, PointsEarned(0))
	assert.Equal(t, 0, PointsEarned(-50))
}
