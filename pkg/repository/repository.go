// Package repository defines the persistence contracts of the ledger core.
// Implementations live in infra/repository; services depend only on these
// interfaces so the atomic unit can be satisfied by any store with row-level
// locking.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/dto"
	"github.com/google/uuid"
)

// ErrLockNotAvailable reports that a row lock could not be acquired in time.
// The orchestrator may retry this with bounded backoff; every other failure is
// terminal for the request.
var ErrLockNotAvailable = errors.New("row lock not available")

// AccountRepository provides durable account state.
type AccountRepository interface {
	// Create persists a newly provisioned account.
	Create(ctx context.Context, a *account.Account) error

	// GetByNumber resolves an account without locking it.
	// Returns account.ErrAccountNotFound if the number is unknown.
	GetByNumber(ctx context.Context, number string) (*account.Account, error)

	// GetForUpdate resolves an account and acquires an exclusive row lock held
	// until the enclosing unit of work commits or rolls back. Callers locking
	// two accounts must do so in ascending account-number order.
	GetForUpdate(ctx context.Context, number string) (*account.Account, error)

	// UpdateBalance writes the account's balance. Only the orchestrator calls
	// this, and only while holding the row lock.
	UpdateBalance(ctx context.Context, id uuid.UUID, a *account.Account) error

	// UpdateStatus transitions the account lifecycle status.
	UpdateStatus(ctx context.Context, number string, status account.Status) error

	// ListByCustomer returns all accounts owned by a customer.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*account.Account, error)
}

// DailyUsage is the aggregate the limit policy reads: how many journal rows an
// account accumulated today and their summed amount in smallest units.
type DailyUsage struct {
	Count int64
	Total int64
}

// TransactionRepository provides the append-only journal. There is
// deliberately no update or delete.
type TransactionRepository interface {
	// Create appends one journal row.
	Create(ctx context.Context, tx *account.Transaction) error

	// ListByCustomer returns the customer's journal rows matching the filter,
	// ordered by creation time descending.
	ListByCustomer(ctx context.Context, customerID uuid.UUID, filter dto.HistoryFilter) ([]*account.Transaction, error)

	// DailyUsage aggregates the account's journal rows for the UTC calendar day
	// containing the given instant.
	DailyUsage(ctx context.Context, accountID uuid.UUID, at time.Time) (DailyUsage, error)
}
