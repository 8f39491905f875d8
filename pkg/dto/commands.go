package dto

import (
	"github.com/amitdube/netbank/pkg/money"
	"github.com/google/uuid"
)

// Commands carry amounts as decimal strings in main units ("2000.00"); the
// service parses them with money.Parse so no float ever reaches the ledger.

// DepositCommand credits a single account. Deposits do not run the limit
// policy.
type DepositCommand struct {
	AccountNumber string `validate:"required"`
	Amount        string `validate:"required"`
	Channel       string `validate:"required,oneof=transfer withdrawal deposit card"`
}

// WithdrawCommand debits a single account through the limit policy.
type WithdrawCommand struct {
	AccountNumber string `validate:"required"`
	Amount        string `validate:"required"`
	Channel       string `validate:"required,oneof=transfer withdrawal deposit card"`
}

// TransferCommand moves funds between two internal accounts.
type TransferCommand struct {
	FromAccountNumber string `validate:"required"`
	ToAccountNumber   string `validate:"required,nefield=FromAccountNumber"`
	Amount            string `validate:"required"`
	Channel           string `validate:"required,oneof=transfer withdrawal deposit card"`
}

// OperationResult is the confirmation payload of a committed operation.
type OperationResult struct {
	OperationID uuid.UUID
	NewBalance  money.Money // balance of the debited (or, for deposits, credited) account after commit
	Entries     []*TransactionRead
}
