package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amitdube/netbank/pkg/dto"
	"github.com/amitdube/netbank/pkg/money"
	repo "github.com/amitdube/netbank/pkg/repository"
)

// History returns the customer's journal rows matching the filter, newest
// first. History reads committed state only; it never observes half of a
// transfer.
func (s *Service) History(ctx context.Context, customerID uuid.UUID, filter dto.HistoryFilter) ([]*dto.TransactionRead, error) {
	if err := s.validate.Struct(filter); err != nil {
		return nil, fmt.Errorf("invalid history filter: %w", err)
	}

	var result []*dto.TransactionRead
	err := s.uow.Do(ctx, func(uow repo.UnitOfWork) error {
		_, txs, err := repos(uow)
		if err != nil {
			return err
		}
		rows, err := txs.ListByCustomer(ctx, customerID, filter)
		if err != nil {
			return err
		}
		result = make([]*dto.TransactionRead, 0, len(rows))
		for _, row := range rows {
			result = append(result, mapTransactionToRead(row))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("history query failed", "customer_id", customerID, "error", err)
		return nil, err
	}
	return result, nil
}

// GetBalance returns the account's committed balance without locking the row.
func (s *Service) GetBalance(ctx context.Context, accountNumber string) (money.Money, error) {
	var balance money.Money
	err := s.uow.Do(ctx, func(uow repo.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acc, err := accounts.GetByNumber(ctx, accountNumber)
		if err != nil {
			return err
		}
		balance = acc.Balance
		return nil
	})
	if err != nil {
		s.logger.Error("balance query failed", "account", accountNumber, "error", err)
		return money.Money{}, err
	}
	return balance, nil
}

// ListAccounts returns read views of all accounts owned by the customer.
func (s *Service) ListAccounts(ctx context.Context, customerID uuid.UUID) ([]*dto.AccountRead, error) {
	var result []*dto.AccountRead
	err := s.uow.Do(ctx, func(uow repo.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		owned, err := accounts.ListByCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		result = make([]*dto.AccountRead, 0, len(owned))
		for _, acc := range owned {
			result = append(result, mapAccountToRead(acc))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("account list query failed", "customer_id", customerID, "error", err)
		return nil, err
	}
	return result, nil
}
