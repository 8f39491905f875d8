package ledger

import (
	"context"

	"github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/money"
	repo "github.com/amitdube/netbank/pkg/repository"
)

// evaluateLimit applies the account's daily limits to its usage so far.
// The count limit is checked first: an account at its count ceiling is
// rejected even when the amount would still fit.
func evaluateLimit(acc *account.Account, usage repo.DailyUsage, amount money.Money) error {
	if usage.Count >= int64(acc.MaxDailyTransactions) {
		return account.ErrDailyCountExceeded
	}
	// Compare without computing usage.Total+amount, which can wrap around.
	ceiling := acc.DailyAmountLimit.Amount()
	if amount.Amount() > ceiling || usage.Total > ceiling-amount.Amount() {
		return account.ErrDailyAmountExceeded
	}
	return nil
}

// enforceLimit is the authoritative limit check. It runs while the account's
// row lock is held and inside the mutation's own transaction, so the usage it
// reads cannot change before the mutation commits.
func (s *Service) enforceLimit(ctx context.Context, txs repo.TransactionRepository, acc *account.Account, amount money.Money) error {
	usage, err := txs.DailyUsage(ctx, acc.ID, s.now())
	if err != nil {
		return err
	}
	return evaluateLimit(acc, usage, amount)
}

// CheckLimit reports whether a debit of the given amount would currently pass
// the account's daily limits. It takes no lock, so a concurrent commit can
// invalidate the answer; the orchestrator re-runs the check under lock before
// mutating. Use this for pre-flight feedback only.
func (s *Service) CheckLimit(ctx context.Context, accountNumber, rawAmount string) (err error) {
	logger := s.logger.With(
		"operation", "CheckLimit",
		"account", accountNumber,
		"amount", rawAmount,
	)
	defer func() {
		if err != nil {
			logger.Info("limit pre-check rejected", "error", err)
		}
	}()

	amount, err := parseAmount(rawAmount)
	if err != nil {
		return err
	}
	return s.uow.Do(ctx, func(uow repo.UnitOfWork) error {
		accounts, txs, err := repos(uow)
		if err != nil {
			return err
		}
		acc, err := accounts.GetByNumber(ctx, accountNumber)
		if err != nil {
			return err
		}
		funds, err := money.New(amount, acc.Currency())
		if err != nil {
			return err
		}
		usage, err := txs.DailyUsage(ctx, acc.ID, s.now())
		if err != nil {
			return err
		}
		return evaluateLimit(acc, usage, funds)
	})
}
