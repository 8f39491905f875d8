package money

import "errors"

// Common money package errors
var (
	// ErrInvalidCurrencyCode is returned when a currency code is not three uppercase letters.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")

	// ErrUnsupportedCurrency is returned when a well-formed code is not in the registry.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrMismatchedCurrencies is returned when performing operations on money with
	// different currencies
	ErrMismatchedCurrencies = errors.New("mismatched currencies")

	// ErrMalformedAmount is returned when an amount string is not a valid decimal
	// or carries more fractional digits than the currency allows.
	ErrMalformedAmount = errors.New("malformed amount")
)
