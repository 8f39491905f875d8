package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/dto"
	"github.com/amitdube/netbank/pkg/money"
	repo "github.com/amitdube/netbank/pkg/repository"
)

// Deposit credits a single account and appends one journal row. Deposits are
// externally funded, so the limit policy does not apply; a frozen account
// still accepts them, a deactivated one does not.
func (s *Service) Deposit(ctx context.Context, cmd dto.DepositCommand) (result *dto.OperationResult, err error) {
	logger := s.logger.With(
		"operation", "Deposit",
		"account", cmd.AccountNumber,
		"amount", cmd.Amount,
	)
	defer func() {
		if err != nil {
			logger.Error("deposit failed", "error", err)
			return
		}
		logger.Info("deposit committed", "operation_id", result.OperationID)
	}()

	if err = s.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid deposit command: %w", err)
	}
	amount, err := parseAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	err = s.withLockRetry(ctx, logger, func() error {
		return s.uow.Do(ctx, func(uow repo.UnitOfWork) error {
			accounts, txs, err := repos(uow)
			if err != nil {
				return err
			}
			acc, err := accounts.GetForUpdate(ctx, cmd.AccountNumber)
			if err != nil {
				return err
			}
			funds, err := money.New(amount, acc.Currency())
			if err != nil {
				return fmt.Errorf("%w: %s", account.ErrInvalidAmount, err)
			}
			if err := acc.Credit(funds); err != nil {
				return err
			}
			if err := accounts.UpdateBalance(ctx, acc.ID, acc); err != nil {
				return err
			}

			operationID := uuid.New()
			entry := account.NewEntry(operationID, acc.CustomerID, acc.ID, nil, funds, account.TxCredit, account.Channel(cmd.Channel))
			if err := txs.Create(ctx, entry); err != nil {
				return err
			}

			result = &dto.OperationResult{
				OperationID: operationID,
				NewBalance:  acc.Balance,
				Entries:     []*dto.TransactionRead{mapTransactionToRead(entry)},
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Withdraw debits a single account through the limit policy and appends one
// journal row. The funds, status and limit checks all run while the row lock
// is held, so the decision is made against current state.
func (s *Service) Withdraw(ctx context.Context, cmd dto.WithdrawCommand) (result *dto.OperationResult, err error) {
	logger := s.logger.With(
		"operation", "Withdraw",
		"account", cmd.AccountNumber,
		"amount", cmd.Amount,
	)
	defer func() {
		if err != nil {
			logger.Error("withdrawal failed", "error", err)
			return
		}
		logger.Info("withdrawal committed", "operation_id", result.OperationID, "new_balance", result.NewBalance.String())
	}()

	if err = s.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid withdraw command: %w", err)
	}
	amount, err := parseAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	err = s.withLockRetry(ctx, logger, func() error {
		return s.uow.Do(ctx, func(uow repo.UnitOfWork) error {
			accounts, txs, err := repos(uow)
			if err != nil {
				return err
			}
			acc, err := accounts.GetForUpdate(ctx, cmd.AccountNumber)
			if err != nil {
				return err
			}
			funds, err := money.New(amount, acc.Currency())
			if err != nil {
				return fmt.Errorf("%w: %s", account.ErrInvalidAmount, err)
			}
			if err := acc.ValidateDebit(funds); err != nil {
				return err
			}
			if err := s.enforceLimit(ctx, txs, acc, funds); err != nil {
				return err
			}
			if err := acc.Debit(funds); err != nil {
				return err
			}
			if err := accounts.UpdateBalance(ctx, acc.ID, acc); err != nil {
				return err
			}

			operationID := uuid.New()
			entry := account.NewEntry(operationID, acc.CustomerID, acc.ID, nil, funds, account.TxDebit, account.Channel(cmd.Channel))
			if err := txs.Create(ctx, entry); err != nil {
				return err
			}

			result = &dto.OperationResult{
				OperationID: operationID,
				NewBalance:  acc.Balance,
				Entries:     []*dto.TransactionRead{mapTransactionToRead(entry)},
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Transfer atomically moves funds between two internal accounts: one debit
// and one credit row sharing an OperationID, committed together with both
// balance writes or not at all.
//
// Both rows are locked before any check, always in ascending account-number
// order regardless of transfer direction, so two opposing transfers request
// the same locks in the same order and cannot deadlock.
func (s *Service) Transfer(ctx context.Context, cmd dto.TransferCommand) (result *dto.OperationResult, err error) {
	logger := s.logger.With(
		"operation", "Transfer",
		"from", cmd.FromAccountNumber,
		"to", cmd.ToAccountNumber,
		"amount", cmd.Amount,
	)
	defer func() {
		if err != nil {
			logger.Error("transfer failed", "error", err)
			return
		}
		logger.Info("transfer committed", "operation_id", result.OperationID)
	}()

	if cmd.FromAccountNumber == cmd.ToAccountNumber {
		return nil, account.ErrSameAccountTransfer
	}
	if err = s.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid transfer command: %w", err)
	}
	amount, err := parseAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	err = s.withLockRetry(ctx, logger, func() error {
		return s.uow.Do(ctx, func(uow repo.UnitOfWork) error {
			accounts, txs, err := repos(uow)
			if err != nil {
				return err
			}

			first, second := cmd.FromAccountNumber, cmd.ToAccountNumber
			if second < first {
				first, second = second, first
			}
			locked := make(map[string]*account.Account, 2)
			for _, number := range []string{first, second} {
				acc, err := accounts.GetForUpdate(ctx, number)
				if err != nil {
					return err
				}
				locked[number] = acc
			}
			src := locked[cmd.FromAccountNumber]
			dst := locked[cmd.ToAccountNumber]

			if src.Currency() != dst.Currency() {
				return account.ErrCurrencyMismatch
			}
			funds, err := money.New(amount, src.Currency())
			if err != nil {
				return fmt.Errorf("%w: %s", account.ErrInvalidAmount, err)
			}
			if err := src.ValidateDebit(funds); err != nil {
				return err
			}
			// Both parties must be active for an internal transfer. A frozen
			// destination still accepts pure deposits, but not transfer credits.
			if !dst.IsActive() {
				return account.ErrAccountNotActive
			}
			if err := dst.ValidateCredit(funds); err != nil {
				return err
			}
			if err := s.enforceLimit(ctx, txs, src, funds); err != nil {
				return err
			}

			if err := src.Debit(funds); err != nil {
				return err
			}
			if err := dst.Credit(funds); err != nil {
				return err
			}
			if err := accounts.UpdateBalance(ctx, src.ID, src); err != nil {
				return err
			}
			if err := accounts.UpdateBalance(ctx, dst.ID, dst); err != nil {
				return err
			}

			operationID := uuid.New()
			debit := account.NewEntry(operationID, src.CustomerID, src.ID, &dst.ID, funds, account.TxDebit, account.Channel(cmd.Channel))
			credit := account.NewEntry(operationID, dst.CustomerID, dst.ID, &src.ID, funds, account.TxCredit, account.Channel(cmd.Channel))
			if err := txs.Create(ctx, debit); err != nil {
				return err
			}
			if err := txs.Create(ctx, credit); err != nil {
				return err
			}

			result = &dto.OperationResult{
				OperationID: operationID,
				NewBalance:  src.Balance,
				Entries: []*dto.TransactionRead{
					mapTransactionToRead(debit),
					mapTransactionToRead(credit),
				},
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
