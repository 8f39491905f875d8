package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/amitdube/netbank/pkg/repository"
)

func TestUoW_RepositoriesRequireDo(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	_, err := uow.AccountRepository()
	require.ErrorIs(t, err, ErrNoActiveTransaction)
	_, err = uow.TransactionRepository()
	require.ErrorIs(t, err, ErrNoActiveTransaction)
}

func TestUoW_DoCommits(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(inner repo.UnitOfWork) error {
		accounts, err := inner.AccountRepository()
		require.NoError(t, err)
		assert.NotNil(t, accounts)

		txs, err := inner.TransactionRepository()
		require.NoError(t, err)
		assert.NotNil(t, txs)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	opErr := errors.New("insufficient funds somewhere")
	err := uow.Do(context.Background(), func(inner repo.UnitOfWork) error {
		return opErr
	})
	require.ErrorIs(t, err, opErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_NestedDoReusesTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	// One Begin/Commit pair regardless of nesting depth.
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(outer repo.UnitOfWork) error {
		return outer.Do(context.Background(), func(inner repo.UnitOfWork) error {
			_, err := inner.AccountRepository()
			return err
		})
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
