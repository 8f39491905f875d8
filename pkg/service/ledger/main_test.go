package ledger_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/amitdube/netbank/config"
	"github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/money"
	repo "github.com/amitdube/netbank/pkg/repository"
	"github.com/amitdube/netbank/pkg/service/ledger"
)

func newTestService(uow repo.UnitOfWork, opts ...ledger.Option) *ledger.Service {
	cfg := config.LockRetryConfig{MaxRetries: 3, InitialInterval: time.Millisecond}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ledger.New(uow, cfg, logger, opts...)
}

// buildAccount returns an active INR account with limits high enough to stay
// out of the way unless a test lowers them.
func buildAccount(t *testing.T, number string, balance int64, mods ...func(*account.Builder)) *account.Account {
	t.Helper()
	b := account.New().
		WithNumber(number).
		WithCustomerID(uuid.New()).
		WithBalance(balance).
		WithLimits(100, 1_000_000_00)
	for _, mod := range mods {
		mod(b)
	}
	acc, err := b.Build()
	require.NoError(t, err)
	return acc
}

func withClockAt(at time.Time) ledger.Option {
	return ledger.WithClock(func() time.Time { return at })
}

func inr(t *testing.T, amount int64) money.Money {
	t.Helper()
	m, err := money.FromSmallestUnit(amount, money.INR)
	require.NoError(t, err)
	return m
}
