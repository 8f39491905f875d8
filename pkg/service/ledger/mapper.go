package ledger

import (
	"github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/dto"
)

func mapTransactionToRead(tx *account.Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:           tx.ID,
		OperationID:  tx.OperationID,
		CustomerID:   tx.CustomerID,
		AccountID:    tx.AccountID,
		Counterparty: tx.Counterparty,
		Amount:       tx.Amount.AmountString(),
		Currency:     tx.Amount.Currency(),
		Kind:         string(tx.Kind),
		Channel:      string(tx.Channel),
		CreatedAt:    tx.CreatedAt,
	}
}

func mapAccountToRead(acc *account.Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:                   acc.ID,
		Number:               acc.Number,
		CustomerID:           acc.CustomerID,
		Kind:                 string(acc.Kind),
		Balance:              acc.Balance.AmountString(),
		Currency:             acc.Currency(),
		Status:               string(acc.Status),
		MaxDailyTransactions: acc.MaxDailyTransactions,
		DailyAmountLimit:     acc.DailyAmountLimit.AmountString(),
		CreatedAt:            acc.CreatedAt,
	}
}
