// internal/adapters/db/errors_test.go
package db

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

func TestTranslateStoreErr(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{
			name:        "connection_exception_class",
			err:         &pgconn.PgError{Code: "08006", Message: "connection failure"},
			unavailable: true,
		},
		{
			name:        "admin_shutdown",
			err:         &pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"},
			unavailable: true,
		},
		{
			name: "unique_violation_untouched",
			err:  &pgconn.PgError{Code: "23505", Message: "duplicate key value"},
		},
		{
			name:        "network_error",
			err:         &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			unavailable: true,
		},
		{
			name:        "timeout",
			err:         context.DeadlineExceeded,
			unavailable: true,
		},
		{
			name:        "wrapped_network_error",
			err:         fmt.Errorf("failed to lock candidate batches: %w", &net.OpError{Op: "read", Net: "tcp", Err: errors.New("connection reset")}),
			unavailable: true,
		},
		{
			name: "caller_cancellation_untouched",
			err:  context.Canceled,
		},
		{
			name: "plain_error_untouched",
			err:  errors.New("scan target mismatch"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateStoreErr(tt.err)
			assert.Equal(t, tt.unavailable, errors.Is(got, domain.ErrStoreUnavailable))
			// The original cause stays reachable for callers that classify it.
			assert.ErrorIs(t, got, tt.err)
		})
	}

	t.Run("nil_passes_through", func(t *testing.T) {
		assert.NoError(t, translateStoreErr(nil))
	})

	t.Run("no_rows_keeps_identity", func(t *testing.T) {
		// Scan helpers compare against pgx.ErrNoRows directly; the miss must
		// come back as the very same value.
		got := translateStoreErr(pgx.ErrNoRows)
		assert.True(t, got == pgx.ErrNoRows)
	})
}

// scanStub satisfies pgx.Row with a canned Scan result.
type scanStub struct {
	err error
}

func (s scanStub) Scan(dest ...interface{}) error { return s.err }

func TestStoreRow_ScanTranslates(t *testing.T) {
	row := storeRow{scanStub{err: &pgconn.PgError{Code: "08P01", Message: "protocol violation"}}}
	assert.ErrorIs(t, row.Scan(), domain.ErrStoreUnavailable)

	miss := storeRow{scanStub{err: pgx.ErrNoRows}}
	assert.True(t, miss.Scan() == pgx.ErrNoRows)

	ok := storeRow{scanStub{}}
	assert.NoError(t, ok.Scan())
}
