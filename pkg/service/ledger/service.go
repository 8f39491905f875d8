// Package ledger implements the funds-movement core: deposits, withdrawals
// and internal transfers executed as atomic units over locked account rows,
// plus the limit policy, provisioning and history queries around them.
//
// Every balance-affecting operation walks the same state machine:
// Validating -> Locked -> Mutating -> Committed, with any failure after
// Validating rolling the unit of work back so no partial write survives.
package ledger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/amitdube/netbank/config"
	"github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/money"
	repo "github.com/amitdube/netbank/pkg/repository"
)

// Service orchestrates ledger operations over a unit of work.
type Service struct {
	uow       repo.UnitOfWork
	validate  *validator.Validate
	logger    *slog.Logger
	lockRetry config.LockRetryConfig
	now       func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the service's notion of "now". The limit policy uses it
// to place operations in their UTC calendar day.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a ledger Service.
func New(uow repo.UnitOfWork, lockRetry config.LockRetryConfig, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		uow:       uow,
		validate:  validator.New(),
		logger:    logger,
		lockRetry: lockRetry,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// parseAmount validates a decimal-string amount during the Validating phase,
// before any lock is taken. The returned decimal is converted to Money once
// the account's currency is known.
func parseAmount(raw string) (decimal.Decimal, error) {
	probe, err := money.Parse(raw, money.DefaultCode)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", account.ErrInvalidAmount, err)
	}
	if !probe.IsPositive() {
		return decimal.Decimal{}, account.ErrInvalidAmount
	}
	return probe.Decimal(), nil
}

// repos resolves both repositories bound to the current unit of work.
func repos(uow repo.UnitOfWork) (repo.AccountRepository, repo.TransactionRepository, error) {
	accounts, err := uow.AccountRepository()
	if err != nil {
		return nil, nil, err
	}
	txs, err := uow.TransactionRepository()
	if err != nil {
		return nil, nil, err
	}
	return accounts, txs, nil
}
