package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/dto"
	repo "github.com/amitdube/netbank/pkg/repository"
)

func TestLockRetry(t *testing.T) {
	t.Parallel()

	t.Run("recovers when the lock frees up within the budget", func(t *testing.T) {
		t.Parallel()
		store := newMemStore()
		store.seed(buildAccount(t, "1001", 100_00))
		flaky := &flakyUoW{inner: newMemUoW(store), failures: 2}
		svc := newTestService(flaky)

		_, err := svc.Withdraw(context.Background(), dto.WithdrawCommand{
			AccountNumber: "1001", Amount: "10.00", Channel: "withdrawal",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, flaky.calls)
		assert.Equal(t, int64(90_00), store.balance("1001"))
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		t.Parallel()
		store := newMemStore()
		store.seed(buildAccount(t, "1001", 100_00))
		flaky := &flakyUoW{inner: newMemUoW(store), failures: 10}
		svc := newTestService(flaky)

		_, err := svc.Withdraw(context.Background(), dto.WithdrawCommand{
			AccountNumber: "1001", Amount: "10.00", Channel: "withdrawal",
		})
		require.ErrorIs(t, err, repo.ErrLockNotAvailable)
		// MaxRetries 3 means one initial attempt plus three retries.
		assert.Equal(t, 4, flaky.calls)
		assert.Equal(t, int64(100_00), store.balance("1001"))
	})

	t.Run("business failures are not retried", func(t *testing.T) {
		t.Parallel()
		flaky := &flakyUoW{inner: newMemUoW(newMemStore())}
		svc := newTestService(flaky)

		_, err := svc.Withdraw(context.Background(), dto.WithdrawCommand{
			AccountNumber: "9999", Amount: "10.00", Channel: "withdrawal",
		})
		require.ErrorIs(t, err, account.ErrAccountNotFound)
		assert.Equal(t, 1, flaky.calls)
	})
}
