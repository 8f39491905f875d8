package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cenkalti/backoff/v4"

	repo "github.com/amitdube/netbank/pkg/repository"
)

// withLockRetry runs op, retrying with bounded exponential backoff only when
// the store reports a row-lock acquisition timeout. Business-rule failures
// and storage outages are permanent: retrying them cannot change the outcome.
func (s *Service) withLockRetry(ctx context.Context, logger *slog.Logger, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	if s.lockRetry.InitialInterval > 0 {
		bo.InitialInterval = s.lockRetry.InitialInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, s.lockRetry.MaxRetries), ctx)

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := op()
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repo.ErrLockNotAvailable):
			logger.Warn("row lock busy, retrying", "attempt", attempt, "error", err)
			return err
		default:
			return backoff.Permanent(err)
		}
	}, policy)
}
