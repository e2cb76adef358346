package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapos/payment-engine/internal/model"
)

func registry() []model.Customer {
	return []model.Customer{
		{ID: "c1", Name: "Wanjiku Kamau", Phone: "0712345678", LoyaltyCardNumber: "LC-1001", PointsBalance: 200},
		{ID: "c2", Name: "Otieno Odhiambo", Phone: "254722000111", LoyaltyCardNumber: "LC-1002", PointsBalance: 50},
		{ID: "c3", Name: "Amina Hassan", Phone: "0110 222 333", LoyaltyCardNumber: "LC-1003", PointsBalance: 0},
	}
}

func TestLookup(t *testing.T) {
	customers := registry()

	t.Run("happy: loyalty card exact match any case", func(t *testing.T) {
		for _, term := range []string{"LC-1001", "lc-1001", "Lc-1001"} {
			found := Lookup(term, customers)
			require.NotNil(t, found, "term %q", term)
			assert.Equal(t, "c1", found.ID)
		}
	})

	t.Run("happy: phone exact match with formatting", func(t *testing.T) {
		found := Lookup("0712-345-678", customers)
		require.NotNil(t, found)
		assert.Equal(t, "c1", found.ID)
	})

	t.Run("happy: shared international prefix", func(t *testing.T) {
		found := Lookup("+254722000111", customers)
		require.NotNil(t, found)
		assert.Equal(t, "c2", found.ID)
	})

	t.Run("happy: bare 9-digit core against phone tail", func(t *testing.T) {
		found := Lookup("722000111", customers)
		require.NotNil(t, found)
		assert.Equal(t, "c2", found.ID)

		found = Lookup("110222333", customers)
		require.NotNil(t, found)
		assert.Equal(t, "c3", found.ID)
	})

	t.Run("edge: card match beats an earlier phone match", func(t *testing.T) {
		// c1's phone equals the term, but c3 holds it as a card number;
		// the card pass covers the whole registry first.
		overlapping := []model.Customer{
			{ID: "c1", Name: "Wanjiku Kamau", Phone: "0712345678", LoyaltyCardNumber: "LC-1001"},
			{ID: "c2", Name: "Otieno Odhiambo", Phone: "254722000111", LoyaltyCardNumber: "LC-1002"},
			{ID: "c3", Name: "Amina Hassan", Phone: "0110222333", LoyaltyCardNumber: "0712345678"},
		}
		found := Lookup("0712345678", overlapping)
		require.NotNil(t, found)
		assert.Equal(t, "c3", found.ID)
	})

	t.Run("edge: blank term yields no customer", func(t *testing.T) {
		assert.Nil(t, Lookup("", customers))
		assert.Nil(t, Lookup("   ", customers))
	})

	t.Run("bad: partial names never match", func(t *testing.T) {
		assert.Nil(t, Lookup("Wanjiku", customers))
		assert.Nil(t, Lookup("Kamau", customers))
	})

	t.Run("bad: partial card number never matches", func(t *testing.T) {
		assert.Nil(t, Lookup("LC-100", customers))
	})

	t.Run("bad: unknown phone", func(t *testing.T) {
		assert.Nil(t, Lookup("0799999999", customers))
	})

	t.Run("edge: empty registry", func(t *testing.T) {
		assert.Nil(t, Lookup("LC-1001", nil))
	})
}
