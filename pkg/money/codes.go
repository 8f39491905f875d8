package money

// Code represents an ISO 4217 currency code (e.g., "INR", "USD").
type Code string

// Common currency codes
const (
	INR Code = "INR" // Indian Rupee
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
)

// DefaultCode is the fallback currency for accounts that do not specify one.
const DefaultCode = INR

// Currency describes the metadata the ledger needs about a currency.
type Currency struct {
	Code     Code
	Decimals int
}

var registry = map[Code]Currency{
	INR: {Code: INR, Decimals: 2},
	USD: {Code: USD, Decimals: 2},
	EUR: {Code: EUR, Decimals: 2},
}

// Get returns the metadata for a currency code.
func Get(code Code) (Currency, error) {
	if !codeFormat.MatchString(string(code)) {
		return Currency{}, ErrInvalidCurrencyCode
	}
	meta, ok := registry[code]
	if !ok {
		return Currency{}, ErrUnsupportedCurrency
	}
	return meta, nil
}

// IsSupported reports whether the code resolves to a registered currency.
func IsSupported(code Code) bool {
	_, err := Get(code)
	return err == nil
}
