package repository

import (
	"time"

	"github.com/google/uuid"
)

// Account represents an account record in the database. Rows are never
// deleted; lifecycle transitions update the status column instead.
type Account struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	Number               string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	CustomerID           uuid.UUID `gorm:"type:uuid;index"`
	Kind                 string    `gorm:"type:varchar(16);not null;default:'savings'"`
	Balance              int64     `gorm:"not null;default:0"`
	Currency             string    `gorm:"type:varchar(3);not null;default:'INR'"`
	Status               string    `gorm:"type:varchar(16);not null;default:'active'"`
	MaxDailyTransactions int       `gorm:"not null;default:10"`
	DailyAmountLimit     int64     `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Transaction represents one persisted journal row. The journal is
// append-only: the repository exposes no update or delete, and the model
// carries no UpdatedAt.
type Transaction struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	OperationID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	AccountID    uuid.UUID  `gorm:"type:uuid;index:idx_transactions_account_day"`
	Counterparty *uuid.UUID `gorm:"type:uuid"`
	Amount       int64      `gorm:"not null"`
	Currency     string     `gorm:"type:varchar(3);not null;default:'INR'"`
	Kind         string     `gorm:"type:varchar(8);not null"`
	Channel      string     `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time  `gorm:"index:idx_transactions_account_day"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
