package repository

import "context"

// UnitOfWork defines the transactional boundary of the ledger core and typed
// repository access bound to it.
//
// Why repository access hangs off the UnitOfWork:
// - Every repository obtained inside Do shares one DB session/transaction, so
//   balance mutations and journal appends commit or roll back as a unit.
// - It prevents accidental use of a non-transactional session in the mutation
//   path, which would reopen the check-then-act race.
// - It keeps service code focused on the state machine and is easy to fake in
//   tests.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error the
	// transaction is rolled back and no write is observable.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// AccountRepository returns the account repository bound to the current
	// transaction/session.
	AccountRepository() (AccountRepository, error)

	// TransactionRepository returns the journal repository bound to the current
	// transaction/session.
	TransactionRepository() (TransactionRepository, error)
}
