package repository

import (
	"context"
	"errors"

	repo "github.com/amitdube/netbank/pkg/repository"
	"gorm.io/gorm"
)

// ErrNoActiveTransaction is returned when a repository is requested outside a
// Do boundary.
var ErrNoActiveTransaction = errors.New("no active transaction: repositories are only available inside Do")

// UoW provides the transaction boundary and repository access in one
// abstraction. Every repository obtained inside Do is bound to the same
// *gorm.DB transaction, so balance mutations and journal appends commit or
// roll back as a unit, and row locks taken via GetForUpdate are held until the
// boundary resolves.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a transaction boundary. A nested call reuses the enclosing
// transaction so an operation composed of several steps still commits as one
// unit.
func (u *UoW) Do(ctx context.Context, fn func(uow repo.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
	return mapStoreError(err)
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (repo.AccountRepository, error) {
	if u.tx == nil {
		return nil, ErrNoActiveTransaction
	}
	return NewAccountRepository(u.tx), nil
}

// TransactionRepository implements repository.UnitOfWork.
func (u *UoW) TransactionRepository() (repo.TransactionRepository, error) {
	if u.tx == nil {
		return nil, ErrNoActiveTransaction
	}
	return NewTransactionRepository(u.tx), nil
}
