// Package dto defines the data-transfer objects crossing the core's boundary:
// read models for queries, create payloads for provisioning, and validated
// commands for ledger operations.
package dto

import (
	"time"

	"github.com/amitdube/netbank/pkg/money"
	"github.com/google/uuid"
)

// AccountCreate is the provisioning payload supplied by the account-management
// collaborator once an application is approved.
type AccountCreate struct {
	Number               string     `validate:"required,numeric"`
	CustomerID           uuid.UUID  `validate:"required"`
	Kind                 string     `validate:"required,oneof=savings current"`
	Currency             money.Code `validate:"omitempty,len=3"`
	InitialBalance       string     `validate:"omitempty"` // decimal string, main units
	MaxDailyTransactions int        `validate:"omitempty,gt=0"`
	DailyAmountLimit     string     `validate:"omitempty"` // decimal string, main units
}

// AccountRead is a read-optimized view of an account.
type AccountRead struct {
	ID                   uuid.UUID
	Number               string
	CustomerID           uuid.UUID
	Kind                 string
	Balance              string // decimal string, main units
	Currency             money.Code
	Status               string
	MaxDailyTransactions int
	DailyAmountLimit     string // decimal string, main units
	CreatedAt            time.Time
}
