// Package account holds the ledger core's domain model: the Account aggregate,
// the immutable Transaction journal record, and the operation error taxonomy.
package account

import (
	"errors"
	"time"

	"github.com/amitdube/netbank/pkg/money"
	"github.com/google/uuid"
)

// Kind distinguishes the product type of an account.
type Kind string

// Account kinds.
const (
	KindSavings Kind = "savings"
	KindCurrent Kind = "current"
)

// Status is the lifecycle state of an account. Accounts are never deleted;
// they transition between statuses instead.
type Status string

// Account lifecycle statuses.
const (
	StatusActive      Status = "active"
	StatusFrozen      Status = "frozen"
	StatusDeactivated Status = "deactivated"
)

// Account represents a customer's bank account, encapsulating its balance,
// lifecycle status and daily transaction limits.
//
// Invariants:
//   - The account number is unique and immutable once issued.
//   - The balance is a Money value object and can never go negative through a
//     core operation.
//   - Balance mutations happen only inside the orchestrator, under a row lock.
type Account struct {
	ID                   uuid.UUID
	Number               string
	CustomerID           uuid.UUID
	Kind                 Kind
	Balance              money.Money
	Status               Status
	MaxDailyTransactions int
	DailyAmountLimit     money.Money
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Builder provides a fluent API for constructing Account instances, ensuring
// only valid accounts are built.
type Builder struct {
	id         uuid.UUID
	number     string
	customerID uuid.UUID
	kind       Kind
	currency   money.Code
	balance    int64
	status     Status
	maxDaily   int
	dailyLimit int64
	createdAt  time.Time
	updatedAt  time.Time
}

// Standard retail limits applied when provisioning does not override them.
const (
	DefaultMaxDailyTransactions = 10
	DefaultDailyAmountLimit     = 10_000_00 // smallest currency unit
)

// New creates a Builder with sensible defaults: fresh UUID, savings kind,
// active status, default currency and the standard retail limits.
func New() *Builder {
	return &Builder{
		id:         uuid.New(),
		kind:       KindSavings,
		currency:   money.DefaultCode,
		status:     StatusActive,
		maxDaily:   DefaultMaxDailyTransactions,
		dailyLimit: DefaultDailyAmountLimit,
		createdAt:  time.Now(),
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithNumber sets the account number. Mandatory; numbers are issued by the
// account-management collaborator at approval time.
func (b *Builder) WithNumber(number string) *Builder {
	b.number = number
	return b
}

// WithCustomerID sets the owning customer. Mandatory.
func (b *Builder) WithCustomerID(customerID uuid.UUID) *Builder {
	b.customerID = customerID
	return b
}

// WithKind sets the account kind.
func (b *Builder) WithKind(kind Kind) *Builder {
	b.kind = kind
	return b
}

// WithCurrency sets the currency for the balance and daily limit.
func (b *Builder) WithCurrency(code money.Code) *Builder {
	b.currency = code
	return b
}

// WithBalance sets the initial balance in the smallest currency unit. Use for
// hydration from a data store or for test setup.
func (b *Builder) WithBalance(balance int64) *Builder {
	b.balance = balance
	return b
}

// WithStatus sets the lifecycle status.
func (b *Builder) WithStatus(status Status) *Builder {
	b.status = status
	return b
}

// WithLimits sets the per-day transaction count limit and cumulative amount
// ceiling (smallest currency unit).
func (b *Builder) WithLimits(maxDaily int, dailyLimit int64) *Builder {
	b.maxDaily = maxDaily
	b.dailyLimit = dailyLimit
	return b
}

// WithCreatedAt sets the creation timestamp, primarily for hydration.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the last-updated timestamp, primarily for hydration.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates all invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.number == "" {
		return nil, errors.New("account number is required")
	}
	if b.customerID == uuid.Nil {
		return nil, errors.New("customerID is required")
	}
	if b.kind != KindSavings && b.kind != KindCurrent {
		return nil, errors.New("unknown account kind")
	}
	if !money.IsSupported(b.currency) {
		return nil, money.ErrUnsupportedCurrency
	}
	bal, err := money.FromSmallestUnit(b.balance, b.currency)
	if err != nil {
		return nil, err
	}
	if bal.IsNegative() {
		return nil, errors.New("initial balance cannot be negative")
	}
	limit, err := money.FromSmallestUnit(b.dailyLimit, b.currency)
	if err != nil {
		return nil, err
	}
	return &Account{
		ID:                   b.id,
		Number:               b.number,
		CustomerID:           b.customerID,
		Kind:                 b.kind,
		Balance:              bal,
		Status:               b.status,
		MaxDailyTransactions: b.maxDaily,
		DailyAmountLimit:     limit,
		CreatedAt:            b.createdAt,
		UpdatedAt:            b.updatedAt,
	}, nil
}

// Currency returns the account's currency code.
func (a *Account) Currency() money.Code {
	return a.Balance.Currency()
}

// IsActive reports whether the account may originate debits.
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

func (a *Account) validateAmount(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !a.Balance.IsSameCurrency(amount) {
		return ErrCurrencyMismatch
	}
	return nil
}

// ValidateDebit checks all invariants for removing funds from the account.
// Invariants enforced:
//   - The account must be active; frozen and deactivated accounts block debits.
//   - The amount must be positive and in the account currency.
//   - The balance must cover the amount; the balance never goes negative.
func (a *Account) ValidateDebit(amount money.Money) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}
	if err := a.validateAmount(amount); err != nil {
		return err
	}
	enough, err := a.Balance.GreaterThan(amount)
	if err != nil {
		return err
	}
	if !enough && !a.Balance.Equals(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidateCredit checks all invariants for adding funds to the account.
// Frozen accounts still accept credits; deactivated accounts accept nothing.
func (a *Account) ValidateCredit(amount money.Money) error {
	if a.Status == StatusDeactivated {
		return ErrAccountNotActive
	}
	return a.validateAmount(amount)
}

// Debit removes funds after re-validating under the caller's lock.
func (a *Account) Debit(amount money.Money) error {
	if err := a.ValidateDebit(amount); err != nil {
		return err
	}
	newBalance, err := a.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.Balance = newBalance
	return nil
}

// Credit adds funds after re-validating under the caller's lock.
func (a *Account) Credit(amount money.Money) error {
	if err := a.ValidateCredit(amount); err != nil {
		return err
	}
	newBalance, err := a.Balance.Add(amount)
	if err != nil {
		return err
	}
	a.Balance = newBalance
	return nil
}
