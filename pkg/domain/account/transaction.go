package account

import (
	"time"

	"github.com/amitdube/netbank/pkg/money"
	"github.com/google/uuid"
)

// TxKind tags a journal record as a debit or a credit.
type TxKind string

// Journal record kinds.
const (
	TxDebit  TxKind = "debit"
	TxCredit TxKind = "credit"
)

// Channel identifies the origin of a transaction.
type Channel string

// Transaction channels.
const (
	ChannelTransfer   Channel = "transfer"
	ChannelWithdrawal Channel = "withdrawal"
	ChannelDeposit    Channel = "deposit"
	ChannelCard       Channel = "card"
)

// Transaction is one immutable row of the append-only journal. A completed
// transfer produces exactly one debit and one credit row sharing an
// OperationID; pure deposits and withdrawals produce a single row with no
// counterparty.
type Transaction struct {
	ID           uuid.UUID
	OperationID  uuid.UUID
	CustomerID   uuid.UUID
	AccountID    uuid.UUID
	Counterparty *uuid.UUID
	Amount       money.Money
	Kind         TxKind
	Channel      Channel
	CreatedAt    time.Time
}

// NewEntry creates a journal record for one leg of an operation.
func NewEntry(
	operationID, customerID, accountID uuid.UUID,
	counterparty *uuid.UUID,
	amount money.Money,
	kind TxKind,
	channel Channel,
) *Transaction {
	return &Transaction{
		ID:           uuid.New(),
		OperationID:  operationID,
		CustomerID:   customerID,
		AccountID:    accountID,
		Counterparty: counterparty,
		Amount:       amount,
		Kind:         kind,
		Channel:      channel,
		CreatedAt:    time.Now(),
	}
}

// NewTransactionFromData hydrates a Transaction from raw data. This bypasses
// invariants and should only be used for repository hydration or tests.
func NewTransactionFromData(
	id, operationID, customerID, accountID uuid.UUID,
	counterparty *uuid.UUID,
	amount money.Money,
	kind TxKind,
	channel Channel,
	created time.Time,
) *Transaction {
	return &Transaction{
		ID:           id,
		OperationID:  operationID,
		CustomerID:   customerID,
		AccountID:    accountID,
		Counterparty: counterparty,
		Amount:       amount,
		Kind:         kind,
		Channel:      channel,
		CreatedAt:    created,
	}
}
