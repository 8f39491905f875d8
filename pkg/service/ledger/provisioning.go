package ledger

import (
	"context"
	"fmt"

	"github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/dto"
	"github.com/amitdube/netbank/pkg/money"
	repo "github.com/amitdube/netbank/pkg/repository"
)

// OpenAccount provisions a new account once the account-management
// collaborator has approved the application and issued a number.
func (s *Service) OpenAccount(ctx context.Context, create dto.AccountCreate) (view *dto.AccountRead, err error) {
	logger := s.logger.With(
		"operation", "OpenAccount",
		"number", create.Number,
		"customer_id", create.CustomerID,
	)
	defer func() {
		if err != nil {
			logger.Error("account provisioning failed", "error", err)
			return
		}
		logger.Info("account provisioned", "account_id", view.ID)
	}()

	if err = s.validate.Struct(create); err != nil {
		return nil, fmt.Errorf("invalid account payload: %w", err)
	}

	currency := create.Currency
	if currency == "" {
		currency = money.DefaultCode
	}

	builder := account.New().
		WithNumber(create.Number).
		WithCustomerID(create.CustomerID).
		WithKind(account.Kind(create.Kind)).
		WithCurrency(currency)

	if create.InitialBalance != "" {
		balance, err := money.Parse(create.InitialBalance, currency)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", account.ErrInvalidAmount, err)
		}
		builder = builder.WithBalance(balance.Amount())
	}

	maxDaily := create.MaxDailyTransactions
	if maxDaily == 0 {
		maxDaily = account.DefaultMaxDailyTransactions
	}
	dailyLimit := int64(account.DefaultDailyAmountLimit)
	if create.DailyAmountLimit != "" {
		limit, err := money.Parse(create.DailyAmountLimit, currency)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", account.ErrInvalidAmount, err)
		}
		dailyLimit = limit.Amount()
	}
	builder = builder.WithLimits(maxDaily, dailyLimit)

	acc, err := builder.Build()
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repo.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return accounts.Create(ctx, acc)
	})
	if err != nil {
		return nil, err
	}
	return mapAccountToRead(acc), nil
}

// SetStatus transitions an account's lifecycle status. Accounts are never
// deleted; deactivation is the terminal state.
func (s *Service) SetStatus(ctx context.Context, number string, status account.Status) (err error) {
	logger := s.logger.With(
		"operation", "SetStatus",
		"account", number,
		"status", status,
	)
	defer func() {
		if err != nil {
			logger.Error("status change failed", "error", err)
			return
		}
		logger.Info("status changed")
	}()

	switch status {
	case account.StatusActive, account.StatusFrozen, account.StatusDeactivated:
	default:
		return fmt.Errorf("unknown account status %q", status)
	}

	return s.uow.Do(ctx, func(uow repo.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return accounts.UpdateStatus(ctx, number, status)
	})
}
