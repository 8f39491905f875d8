// Package repository implements the ledger core's persistence contracts over
// GORM/PostgreSQL: the account store, the append-only journal, and the unit
// of work that binds them to one transaction.
package repository

import (
	"context"
	"time"

	domain "github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/money"
	repo "github.com/amitdube/netbank/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to the given
// session. Inside a unit of work the session is the transaction, so row locks
// taken here live until commit or rollback.
func NewAccountRepository(db *gorm.DB) repo.AccountRepository {
	return &accountRepository{db: db}
}

// Create implements repository.AccountRepository.
func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	m := mapAccountToModel(a)
	return mapStoreError(r.db.WithContext(ctx).Create(&m).Error)
}

// GetByNumber implements repository.AccountRepository.
func (r *accountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&m).Error; err != nil {
		return nil, mapStoreError(err)
	}
	return mapModelToAccount(&m)
}

// GetForUpdate implements repository.AccountRepository. It issues
// SELECT ... FOR UPDATE so the row stays exclusively held by the enclosing
// transaction. Callers locking two rows must order by ascending number.
func (r *accountRepository) GetForUpdate(ctx context.Context, number string) (*domain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("number = ?", number).
		First(&m).Error; err != nil {
		return nil, mapStoreError(err)
	}
	return mapModelToAccount(&m)
}

// UpdateBalance implements repository.AccountRepository. Only the orchestrator
// calls this, while holding the row lock taken by GetForUpdate.
func (r *accountRepository) UpdateBalance(ctx context.Context, id uuid.UUID, a *domain.Account) error {
	result := r.db.WithContext(ctx).Model(&Account{}).Where("id = ?", id).Updates(map[string]any{
		"balance":    a.Balance.Amount(),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// UpdateStatus implements repository.AccountRepository.
func (r *accountRepository) UpdateStatus(ctx context.Context, number string, status domain.Status) error {
	result := r.db.WithContext(ctx).Model(&Account{}).Where("number = ?", number).Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// ListByCustomer implements repository.AccountRepository.
func (r *accountRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Account, error) {
	var models []Account
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&models).Error; err != nil {
		return nil, mapStoreError(err)
	}
	result := make([]*domain.Account, 0, len(models))
	for i := range models {
		a, err := mapModelToAccount(&models[i])
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

func mapAccountToModel(a *domain.Account) Account {
	return Account{
		ID:                   a.ID,
		Number:               a.Number,
		CustomerID:           a.CustomerID,
		Kind:                 string(a.Kind),
		Balance:              a.Balance.Amount(),
		Currency:             string(a.Currency()),
		Status:               string(a.Status),
		MaxDailyTransactions: a.MaxDailyTransactions,
		DailyAmountLimit:     a.DailyAmountLimit.Amount(),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func mapModelToAccount(m *Account) (*domain.Account, error) {
	return domain.New().
		WithID(m.ID).
		WithNumber(m.Number).
		WithCustomerID(m.CustomerID).
		WithKind(domain.Kind(m.Kind)).
		WithCurrency(money.Code(m.Currency)).
		WithBalance(m.Balance).
		WithStatus(domain.Status(m.Status)).
		WithLimits(m.MaxDailyTransactions, m.DailyAmountLimit).
		WithCreatedAt(m.CreatedAt).
		WithUpdatedAt(m.UpdatedAt).
		Build()
}
