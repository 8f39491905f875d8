package repository

import (
	"context"
	"time"

	domain "github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/dto"
	"github.com/amitdube/netbank/pkg/money"
	repo "github.com/amitdube/netbank/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a journal repository bound to the given
// session.
func NewTransactionRepository(db *gorm.DB) repo.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create implements repository.TransactionRepository. It only ever appends.
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	m := mapTransactionToModel(tx)
	return mapStoreError(r.db.WithContext(ctx).Create(&m).Error)
}

// ListByCustomer implements repository.TransactionRepository. Unbounded
// filters return the customer's full history, newest first.
func (r *transactionRepository) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	filter dto.HistoryFilter,
) ([]*domain.Transaction, error) {
	q := r.db.WithContext(ctx).Where("customer_id = ?", customerID)
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}
	if filter.Start != nil {
		q = q.Where("created_at >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("created_at <= ?", *filter.End)
	}

	var models []Transaction
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, mapStoreError(err)
	}
	result := make([]*domain.Transaction, 0, len(models))
	for i := range models {
		tx, err := mapModelToTransaction(&models[i])
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, nil
}

// DailyUsage implements repository.TransactionRepository. The window is the
// UTC calendar day containing at; the limit policy reads it under the same
// transaction as the mutation it gates.
func (r *transactionRepository) DailyUsage(
	ctx context.Context,
	accountID uuid.UUID,
	at time.Time,
) (repo.DailyUsage, error) {
	dayStart := at.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	var usage repo.DailyUsage
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("account_id = ? AND created_at >= ? AND created_at < ?", accountID, dayStart, dayEnd).
		Scan(&usage).Error
	if err != nil {
		return repo.DailyUsage{}, mapStoreError(err)
	}
	return usage, nil
}

func mapTransactionToModel(tx *domain.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID,
		OperationID:  tx.OperationID,
		CustomerID:   tx.CustomerID,
		AccountID:    tx.AccountID,
		Counterparty: tx.Counterparty,
		Amount:       tx.Amount.Amount(),
		Currency:     string(tx.Amount.Currency()),
		Kind:         string(tx.Kind),
		Channel:      string(tx.Channel),
		CreatedAt:    tx.CreatedAt,
	}
}

func mapModelToTransaction(m *Transaction) (*domain.Transaction, error) {
	amount, err := money.FromSmallestUnit(m.Amount, money.Code(m.Currency))
	if err != nil {
		return nil, err
	}
	return domain.NewTransactionFromData(
		m.ID,
		m.OperationID,
		m.CustomerID,
		m.AccountID,
		m.Counterparty,
		amount,
		domain.TxKind(m.Kind),
		domain.Channel(m.Channel),
		m.CreatedAt,
	), nil
}
