package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/amitdube/netbank/pkg/domain/account"
	repo "github.com/amitdube/netbank/pkg/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapStoreError converts store-level failures to the domain taxonomy so
// infrastructure concerns stay in this layer. The error chain is traversed
// because GORM wraps driver errors.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return account.ErrAccountNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "55P03": // lock_not_available
			return fmt.Errorf("%w: %s", repo.ErrLockNotAvailable, pgErr.Message)
		case strings.HasPrefix(pgErr.Code, "08"), // connection exception
			strings.HasPrefix(pgErr.Code, "53"), // insufficient resources
			strings.HasPrefix(pgErr.Code, "57"): // operator intervention / shutdown
			return fmt.Errorf("%w: %s", account.ErrStorageUnavailable, pgErr.Message)
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", account.ErrStorageUnavailable, netErr)
	}
	if errors.Is(err, gorm.ErrInvalidDB) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", account.ErrStorageUnavailable, err)
	}

	return err
}
