package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/dto"
	repo "github.com/amitdube/netbank/pkg/repository"
)

// memStore is an in-memory account store with per-row mutexes standing in for
// SELECT ... FOR UPDATE. It lets the tests exercise the orchestrator's
// locking and rollback behavior with real contention and no database.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]*account.Account // keyed by number
	locks    map[uuid.UUID]*sync.Mutex
	journal  []*account.Transaction

	// failAppendAt, when > 0, makes the n-th journal append inside a single
	// transaction fail. Used to prove rollback atomicity.
	failAppendAt int
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[string]*account.Account),
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *memStore) seed(accs ...*account.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range accs {
		cp := *a
		s.accounts[a.Number] = &cp
		s.locks[a.ID] = &sync.Mutex{}
	}
}

func (s *memStore) seedJournal(rows ...*account.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journal = append(s.journal, rows...)
}

func (s *memStore) balance(number string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[number].Balance.Amount()
}

func (s *memStore) status(number string) account.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[number].Status
}

func (s *memStore) journalLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.journal)
}

// memTxn stages writes until the unit of work resolves.
type memTxn struct {
	store    *memStore
	created  []*account.Account
	updated  map[uuid.UUID]*account.Account
	statuses map[string]account.Status
	appends  []*account.Transaction
	locked   []uuid.UUID
}

func (t *memTxn) commit() {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range t.created {
		cp := *a
		s.accounts[a.Number] = &cp
		s.locks[a.ID] = &sync.Mutex{}
	}
	for id, a := range t.updated {
		for _, existing := range s.accounts {
			if existing.ID == id {
				existing.Balance = a.Balance
				existing.UpdatedAt = time.Now()
			}
		}
	}
	for number, st := range t.statuses {
		if acc, ok := s.accounts[number]; ok {
			acc.Status = st
		}
	}
	s.journal = append(s.journal, t.appends...)
}

func (t *memTxn) unlockAll() {
	for i := len(t.locked) - 1; i >= 0; i-- {
		t.store.locks[t.locked[i]].Unlock()
	}
	t.locked = nil
}

// memUoW implements repository.UnitOfWork over a memStore.
type memUoW struct {
	store *memStore
	txn   *memTxn
}

func newMemUoW(store *memStore) *memUoW {
	return &memUoW{store: store}
}

func (u *memUoW) Do(ctx context.Context, fn func(uow repo.UnitOfWork) error) error {
	if u.txn != nil {
		return fn(u)
	}
	txn := &memTxn{
		store:    u.store,
		updated:  make(map[uuid.UUID]*account.Account),
		statuses: make(map[string]account.Status),
	}
	err := fn(&memUoW{store: u.store, txn: txn})
	if err == nil {
		txn.commit()
	}
	txn.unlockAll()
	return err
}

func (u *memUoW) AccountRepository() (repo.AccountRepository, error) {
	if u.txn == nil {
		return nil, errors.New("no active transaction")
	}
	return &memAccountRepo{txn: u.txn}, nil
}

func (u *memUoW) TransactionRepository() (repo.TransactionRepository, error) {
	if u.txn == nil {
		return nil, errors.New("no active transaction")
	}
	return &memTxRepo{txn: u.txn}, nil
}

type memAccountRepo struct {
	txn *memTxn
}

func (r *memAccountRepo) Create(_ context.Context, a *account.Account) error {
	s := r.txn.store
	s.mu.Lock()
	_, exists := s.accounts[a.Number]
	s.mu.Unlock()
	if exists {
		return fmt.Errorf("account number %s already taken", a.Number)
	}
	cp := *a
	r.txn.created = append(r.txn.created, &cp)
	return nil
}

func (r *memAccountRepo) GetByNumber(_ context.Context, number string) (*account.Account, error) {
	s := r.txn.store
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[number]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	cp := *acc
	return &cp, nil
}

func (r *memAccountRepo) GetForUpdate(_ context.Context, number string) (*account.Account, error) {
	s := r.txn.store
	s.mu.Lock()
	acc, ok := s.accounts[number]
	if !ok {
		s.mu.Unlock()
		return nil, account.ErrAccountNotFound
	}
	rowLock := s.locks[acc.ID]
	s.mu.Unlock()

	rowLock.Lock()
	r.txn.locked = append(r.txn.locked, acc.ID)

	// Re-read after acquiring the row lock: a concurrent commit may have
	// changed the balance while this transaction waited.
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *s.accounts[number]
	return &cp, nil
}

func (r *memAccountRepo) UpdateBalance(_ context.Context, id uuid.UUID, a *account.Account) error {
	cp := *a
	r.txn.updated[id] = &cp
	return nil
}

func (r *memAccountRepo) UpdateStatus(_ context.Context, number string, status account.Status) error {
	s := r.txn.store
	s.mu.Lock()
	_, ok := s.accounts[number]
	s.mu.Unlock()
	if !ok {
		return account.ErrAccountNotFound
	}
	r.txn.statuses[number] = status
	return nil
}

func (r *memAccountRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*account.Account, error) {
	s := r.txn.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*account.Account
	for _, acc := range s.accounts {
		if acc.CustomerID == customerID {
			cp := *acc
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

type memTxRepo struct {
	txn *memTxn
}

func (r *memTxRepo) Create(_ context.Context, tx *account.Transaction) error {
	s := r.txn.store
	if s.failAppendAt > 0 && len(r.txn.appends)+1 == s.failAppendAt {
		return errors.New("journal write failed")
	}
	cp := *tx
	r.txn.appends = append(r.txn.appends, &cp)
	return nil
}

func (r *memTxRepo) ListByCustomer(_ context.Context, customerID uuid.UUID, filter dto.HistoryFilter) ([]*account.Transaction, error) {
	s := r.txn.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*account.Transaction
	for _, row := range s.journal {
		if row.CustomerID != customerID {
			continue
		}
		if filter.Kind != "" && string(row.Kind) != filter.Kind {
			continue
		}
		if filter.Start != nil && row.CreatedAt.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && row.CreatedAt.After(*filter.End) {
			continue
		}
		cp := *row
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTxRepo) DailyUsage(_ context.Context, accountID uuid.UUID, at time.Time) (repo.DailyUsage, error) {
	dayStart := at.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	s := r.txn.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var usage repo.DailyUsage
	for _, row := range s.journal {
		created := row.CreatedAt.UTC()
		if row.AccountID != accountID || created.Before(dayStart) || !created.Before(dayEnd) {
			continue
		}
		usage.Count++
		usage.Total += row.Amount.Amount()
	}
	return usage, nil
}

// flakyUoW fails Do with a lock-acquisition error a fixed number of times
// before delegating, for exercising the bounded retry.
type flakyUoW struct {
	inner    repo.UnitOfWork
	failures int
	calls    int
}

func (f *flakyUoW) Do(ctx context.Context, fn func(uow repo.UnitOfWork) error) error {
	f.calls++
	if f.calls <= f.failures {
		return fmt.Errorf("acquire row lock: %w", repo.ErrLockNotAvailable)
	}
	return f.inner.Do(ctx, fn)
}

func (f *flakyUoW) AccountRepository() (repo.AccountRepository, error) {
	return f.inner.AccountRepository()
}

func (f *flakyUoW) TransactionRepository() (repo.TransactionRepository, error) {
	return f.inner.TransactionRepository()
}
