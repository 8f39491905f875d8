// Package money provides a fixed-point Money value object for the ledger core.
// Amounts are stored as int64 in the smallest currency unit (e.g. paise for
// INR); external decimal strings are parsed with shopspring/decimal so binary
// floating-point arithmetic never touches a balance.
package money

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var codeFormat = regexp.MustCompile(`^[A-Z]{3}$`)

// Money represents a monetary value in a specific currency.
//
// Invariants:
//   - The amount is always stored in the smallest currency unit.
//   - The currency code is always a registered ISO 4217 code.
//   - All arithmetic requires matching currencies.
type Money struct {
	amount   int64
	currency Code
}

// Parse builds a Money from a decimal string such as "2000.00".
// Invariants enforced:
//   - The string must be a valid decimal number.
//   - It must not carry more fractional digits than the currency allows.
//
// Returns Money or an error if any invariant is violated.
func Parse(raw string, code Code) (Money, error) {
	meta, err := Get(orDefault(code))
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}
	return fromDecimal(d, meta)
}

// New builds a Money from an exact decimal value.
func New(d decimal.Decimal, code Code) (Money, error) {
	meta, err := Get(orDefault(code))
	if err != nil {
		return Money{}, err
	}
	return fromDecimal(d, meta)
}

// FromSmallestUnit hydrates a Money from a stored smallest-unit amount.
// Used by repositories and test fixtures; the store already holds smallest
// units, so only the currency code is validated.
func FromSmallestUnit(amount int64, code Code) (Money, error) {
	if _, err := Get(orDefault(code)); err != nil {
		return Money{}, err
	}
	return Money{amount: amount, currency: orDefault(code)}, nil
}

// Zero returns a zero-valued Money in the given currency.
func Zero(code Code) Money {
	return Money{amount: 0, currency: orDefault(code)}
}

func fromDecimal(d decimal.Decimal, meta Currency) (Money, error) {
	scaled := d.Shift(int32(meta.Decimals))
	if !scaled.IsInteger() {
		return Money{}, fmt.Errorf("%w: more than %d decimal places", ErrMalformedAmount, meta.Decimals)
	}
	if !scaled.BigInt().IsInt64() {
		return Money{}, fmt.Errorf("%w: amount out of range", ErrMalformedAmount)
	}
	return Money{amount: scaled.IntPart(), currency: meta.Code}, nil
}

func orDefault(code Code) Code {
	if code == "" {
		return DefaultCode
	}
	return code
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() Code {
	return m.currency
}

// Decimal returns the amount in main units as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	meta, err := Get(m.currency)
	if err != nil {
		return decimal.New(m.amount, 0)
	}
	return decimal.New(m.amount, 0).Shift(int32(-meta.Decimals))
}

// Add returns the sum of two Money values.
// Invariants enforced:
//   - Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrMismatchedCurrencies
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns the difference of two Money values.
// Invariants enforced:
//   - Currencies must match.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrMismatchedCurrencies
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Equals reports whether both currency and amount match.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount == other.amount
}

// GreaterThan reports whether m exceeds other.
// Returns an error if currencies do not match.
func (m Money) GreaterThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrMismatchedCurrencies
	}
	return m.amount > other.amount, nil
}

// LessThan reports whether m is below other.
// Returns an error if currencies do not match.
func (m Money) LessThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrMismatchedCurrencies
	}
	return m.amount < other.amount, nil
}

// IsSameCurrency reports whether both values share a currency.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency == other.currency
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// AmountString renders just the amount in main units, e.g. "2000.00".
func (m Money) AmountString() string {
	meta, err := Get(m.currency)
	if err != nil {
		return fmt.Sprintf("%d", m.amount)
	}
	return m.Decimal().StringFixed(int32(meta.Decimals))
}

// String renders the value in main units with the currency code, e.g. "2000.00 INR".
func (m Money) String() string {
	meta, err := Get(m.currency)
	if err != nil {
		return fmt.Sprintf("%d %s", m.amount, m.currency)
	}
	return fmt.Sprintf("%s %s", m.Decimal().StringFixed(int32(meta.Decimals)), m.currency)
}
