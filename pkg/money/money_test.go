package money_test

import (
	"testing"

	"github.com/amitdube/netbank/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid amount", func(t *testing.T) {
		m, err := money.Parse("2000.00", money.INR)
		require.NoError(t, err)
		assert.Equal(t, int64(200000), m.Amount())
		assert.Equal(t, money.INR, m.Currency())
	})

	t.Run("no fractional part", func(t *testing.T) {
		m, err := money.Parse("500", money.INR)
		require.NoError(t, err)
		assert.Equal(t, int64(50000), m.Amount())
	})

	t.Run("defaults to INR", func(t *testing.T) {
		m, err := money.Parse("1.50", "")
		require.NoError(t, err)
		assert.Equal(t, money.INR, m.Currency())
	})

	t.Run("non-numeric", func(t *testing.T) {
		_, err := money.Parse("two thousand", money.INR)
		assert.ErrorIs(t, err, money.ErrMalformedAmount)
	})

	t.Run("too many decimal places", func(t *testing.T) {
		_, err := money.Parse("10.005", money.INR)
		assert.ErrorIs(t, err, money.ErrMalformedAmount)
	})

	t.Run("unsupported currency", func(t *testing.T) {
		_, err := money.Parse("10.00", "XTS")
		assert.ErrorIs(t, err, money.ErrUnsupportedCurrency)
	})

	t.Run("invalid currency format", func(t *testing.T) {
		_, err := money.Parse("10.00", "rupees")
		assert.ErrorIs(t, err, money.ErrInvalidCurrencyCode)
	})
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	a, err := money.Parse("100.25", money.INR)
	require.NoError(t, err)
	b, err := money.Parse("0.75", money.INR)
	require.NoError(t, err)

	t.Run("add", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, int64(10100), sum.Amount())
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, int64(9950), diff.Amount())
	})

	t.Run("subtract below zero is representable", func(t *testing.T) {
		diff, err := b.Subtract(a)
		require.NoError(t, err)
		assert.True(t, diff.IsNegative())
	})

	t.Run("mismatched currencies", func(t *testing.T) {
		usd, err := money.Parse("1.00", money.USD)
		require.NoError(t, err)
		_, err = a.Add(usd)
		assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
		_, err = a.GreaterThan(usd)
		assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
	})
}

func TestComparisons(t *testing.T) {
	t.Parallel()
	big, _ := money.Parse("10.00", money.INR)
	small, _ := money.Parse("2.50", money.INR)

	gt, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	lt, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, lt)

	assert.True(t, big.Equals(big))
	assert.False(t, big.Equals(small))
	assert.True(t, money.Zero(money.INR).IsZero())
	assert.True(t, big.IsPositive())
}

func TestDecimalRoundTrip(t *testing.T) {
	t.Parallel()
	m, err := money.New(decimal.RequireFromString("1234.56"), money.INR)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", m.Decimal().StringFixed(2))
	assert.Equal(t, "1234.56 INR", m.String())

	hydrated, err := money.FromSmallestUnit(m.Amount(), m.Currency())
	require.NoError(t, err)
	assert.True(t, m.Equals(hydrated))
}
