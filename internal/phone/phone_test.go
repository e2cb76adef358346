package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("happy: international form with plus", func(t *testing.T) {
		res := Validate("+254712345678")
		require.True(t, res.Valid, res.Err)
		assert.Equal(t, "0712345678", res.Cleaned)
	})

	t.Run("happy: international form without plus", func(t *testing.T) {
		res := Validate("254112345678")
		require.True(t, res.Valid, res.Err)
		assert.Equal(t, "0112345678", res.Cleaned)
	})

	t.Run("happy: local form", func(t *testing.T) {
		res := Validate("0712345678")
		require.True(t, res.Valid, res.Err)
		assert.Equal(t, "0712345678", res.Cleaned)
	})

	t.Run("happy: bare 9-digit core", func(t *testing.T) {
		res := Validate("712345678")
		require.True(t, res.Valid, res.Err)
		assert.Equal(t, "0712345678", res.Cleaned)
	})

	t.Run("happy: formatting characters stripped", func(t *testing.T) {
		res := Validate("+254 (712) 345-678")
		require.True(t, res.Valid, res.Err)
		assert.Equal(t, "0712345678", res.Cleaned)
	})

	t.Run("bad: empty input", func(t *testing.T) {
		res := Validate("")
		assert.False(t, res.Valid)
		assert.Equal(t, "Phone number is required", res.Err)
	})

	t.Run("bad: letters present", func(t *testing.T) {
		res := Validate("07123A5678")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Err, "only digits")
	})

	t.Run("bad: wrong international length", func(t *testing.T) {
		res := Validate("25471234567")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Err, "international format")
	})

	t.Run("bad: wrong local length", func(t *testing.T) {
		res := Validate("071234567")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Err, "local format")
	})

	t.Run("bad: too short", func(t *testing.T) {
		res := Validate("71234567")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Err, "too short")
	})

	t.Run("bad: too long", func(t *testing.T) {
		res := Validate("7123456789012")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Err, "too long")
	})

	t.Run("bad: invalid prefix 8", func(t *testing.T) {
		res := Validate("0812345678")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Err, "start with 1 or 7")
	})

	t.Run("property: idempotent on cleaned output", func(t *testing.T) {
		inputs := []string{"+254712345678", "0712345678", "712345678", "254112345678", "0112 345 678"}
		for _, in := range inputs {
			first := Validate(in)
			require.True(t, first.Valid, "input %q: %s", in, first.Err)
			second := Validate(first.Cleaned)
			require.True(t, second.Valid)
			assert.Equal(t, first.Cleaned, second.Cleaned, "input %q", in)
		}
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "254712345678", Normalize("+254 712-345-678"))
	assert.Equal(t, "0712345678", Normalize("(071) 234 5678"))
}
