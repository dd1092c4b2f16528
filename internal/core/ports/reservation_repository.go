// internal/core/ports/reservation_repository.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReservationRepository holds ingredient quantities against batches for
// not-yet-paid orders. All three operations are transactional: each either
// applies every batch adjustment it needs or none of them.
type ReservationRepository interface {
	// ReserveLine allocates quantity of one ingredient to the order, spread
	// over batches earliest-expiry-first. Returns domain.ErrInsufficientStock
	// when the reservable batches cannot cover the demand; nothing is held in
	// that case.
	ReserveLine(ctx context.Context, orderID int64, ingredientID int64, quantity decimal.Decimal) error
	// FinalizeOrder converts the order's reservations into deductions:
	// reserved and current drop together per batch, and the reservation rows
	// are deleted. A second call for the same order is a no-op.
	FinalizeOrder(ctx context.Context, orderID int64) error
	// ReleaseOrder returns every quantity the order holds and deletes its
	// reservation rows. Safe to call for orders with no reservations.
	ReleaseOrder(ctx context.Context, orderID int64) error
	// StaleOrders lists orders whose oldest hold predates the cutoff,
	// i.e. carts that were never finalized or cancelled.
	StaleOrders(ctx context.Context, olderThan time.Time) ([]int64, error)
}
