package account

import "errors"

// Error taxonomy for ledger operations. Every failure surfaced by the core
// wraps one of these sentinels so callers can branch with errors.Is.
var (
	// ErrInvalidAmount is returned when an operation amount is non-positive or
	// not a valid decimal. Rejected before any lock is taken.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAccountNotFound is returned when an account number does not resolve to
	// an existing account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNotActive is returned when a balance-affecting operation touches
	// a frozen or deactivated account.
	ErrAccountNotActive = errors.New("account not active")

	// ErrInsufficientFunds is returned when the source balance cannot cover a
	// debit. Checked under lock.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDailyCountExceeded is returned when the account has already reached its
	// per-day transaction count limit.
	ErrDailyCountExceeded = errors.New("daily transaction count exceeded")

	// ErrDailyAmountExceeded is returned when the proposed amount would push the
	// day's cumulative total over the account's per-day ceiling.
	ErrDailyAmountExceeded = errors.New("daily transaction amount exceeded")

	// ErrCurrencyMismatch is returned when the parties to an operation do not
	// share a currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrSameAccountTransfer is returned when a transfer names the same account
	// on both sides.
	ErrSameAccountTransfer = errors.New("cannot transfer to same account")

	// ErrStorageUnavailable is returned when the underlying store is
	// unreachable. The operation aborts with no partial writes.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
