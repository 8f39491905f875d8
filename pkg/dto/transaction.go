package dto

import (
	"time"

	"github.com/amitdube/netbank/pkg/money"
	"github.com/google/uuid"
)

// TransactionRead is a read-optimized view of one journal row, used by history
// queries and reporting.
type TransactionRead struct {
	ID           uuid.UUID  // Unique journal row identifier
	OperationID  uuid.UUID  // Shared by the two legs of a transfer
	CustomerID   uuid.UUID  // Owner of the affected account
	AccountID    uuid.UUID  // Account the row applies to
	Counterparty *uuid.UUID // Other account of a transfer, nil otherwise
	Amount       string     // decimal string, main units
	Currency     money.Code
	Kind         string // debit or credit
	Channel      string // transfer, withdrawal, deposit, card
	CreatedAt    time.Time
}

// HistoryFilter narrows a journal query. Zero-valued fields are unbounded;
// the date range is inclusive on both ends.
type HistoryFilter struct {
	Kind  string `validate:"omitempty,oneof=debit credit"`
	Start *time.Time
	End   *time.Time
}
