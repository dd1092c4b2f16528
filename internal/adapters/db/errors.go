// internal/adapters/db/errors.go
package db

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

// translateStoreErr tags connection-class failures with
// domain.ErrStoreUnavailable so callers can tell a store outage from a bad
// query. Row misses and statement-level errors pass through untouched.
func translateStoreErr(err error) error {
	if err == nil || errors.Is(err, pgx.ErrNoRows) || errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 is connection exceptions, 57P* is server shutdown.
		if strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P") {
			return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
		return err
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connectErr) || errors.As(err, &netErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	return err
}

// storeRow defers translation to Scan, which is where pgx surfaces errors
// for single-row queries. pgx.ErrNoRows keeps its identity so scan helpers
// can still compare against it directly.
type storeRow struct {
	pgx.Row
}

func (r storeRow) Scan(dest ...interface{}) error {
	return translateStoreErr(r.Row.Scan(dest...))
}
