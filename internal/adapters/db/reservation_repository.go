// internal/adapters/db/reservation_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// reservationRepository implements ports.ReservationRepository
type reservationRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *Database, logger *slog.Logger) ports.ReservationRepository {
	return &reservationRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "reservation")),
	}
}

// ReserveLine holds quantity of one ingredient for the order. Candidate
// batches are locked FOR UPDATE in allocation order, the split is planned in
// memory, and each batch update re-checks the invariant. Any failure rolls
// the whole line back.
func (r *reservationRepository) ReserveLine(ctx context.Context, orderID int64, ingredientID int64, quantity decimal.Decimal) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`
			SELECT %s
			FROM kitchen_stock
			WHERE warehouse_item_id = $1
			  AND status = $2
			  AND current_quantity > reserved_quantity
			ORDER BY calculated_expiry ASC NULLS LAST, transferred_at ASC
			FOR UPDATE`,
			columnList(kitchenColumns))

		rows, err := tx.Query(ctx, query, ingredientID, string(domain.BatchAvailable))
		if err != nil {
			return fmt.Errorf("failed to lock candidate batches: %w", err)
		}

		var batches []domain.KitchenBatch
		for rows.Next() {
			batch, err := scanKitchenBatch(rows)
			if err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan kitchen batch: %w", err)
			}
			batches = append(batches, *batch)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating rows: %w", err)
		}

		allocations, err := domain.PlanAllocation(batches, quantity)
		if err != nil {
			return err
		}

		for _, alloc := range allocations {
			if err := applyReservation(ctx, tx, orderID, alloc); err != nil {
				return err
			}
		}

		r.logger.DebugContext(ctx, "reserved ingredient line",
			slog.Int64("order_id", orderID),
			slog.Int64("ingredient_id", ingredientID),
			slog.String("quantity", quantity.String()),
			slog.Int("batches", len(allocations)))
		return nil
	})
}

// FinalizeOrder turns the order's holds into deductions and deletes the
// reservation rows. An order with no rows finalizes as a no-op, which makes
// payment retries idempotent.
func (r *reservationRepository) FinalizeOrder(ctx context.Context, orderID int64) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		holds, err := lockOrderReservations(ctx, tx, orderID)
		if err != nil {
			return err
		}

		for _, h := range holds {
			tag, err := tx.Exec(ctx, `
				UPDATE kitchen_stock
				SET current_quantity = current_quantity - $2,
				    reserved_quantity = reserved_quantity - $2,
				    updated_at = NOW()
				WHERE id = $1
				  AND reserved_quantity >= $2
				  AND current_quantity >= $2`,
				h.batchID, h.quantity)
			if err != nil {
				return fmt.Errorf("failed to deduct batch %s: %w", h.batchID, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%w: deduction of %s rejected for batch %s",
					domain.ErrInvariantViolation, h.quantity, h.batchID)
			}
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM order_reservations WHERE order_id = $1`, orderID); err != nil {
			return fmt.Errorf("failed to clear order reservations: %w", err)
		}

		if len(holds) > 0 {
			r.logger.DebugContext(ctx, "finalized order deduction",
				slog.Int64("order_id", orderID),
				slog.Int("batches", len(holds)))
		}
		return nil
	})
}

// ReleaseOrder returns every hold the order has and deletes its rows.
func (r *reservationRepository) ReleaseOrder(ctx context.Context, orderID int64) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		holds, err := lockOrderReservations(ctx, tx, orderID)
		if err != nil {
			return err
		}

		for _, h := range holds {
			tag, err := tx.Exec(ctx, `
				UPDATE kitchen_stock
				SET reserved_quantity = reserved_quantity - $2,
				    updated_at = NOW()
				WHERE id = $1 AND reserved_quantity >= $2`,
				h.batchID, h.quantity)
			if err != nil {
				return fmt.Errorf("failed to release batch %s: %w", h.batchID, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%w: release of %s rejected for batch %s",
					domain.ErrInvariantViolation, h.quantity, h.batchID)
			}
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM order_reservations WHERE order_id = $1`, orderID); err != nil {
			return fmt.Errorf("failed to clear order reservations: %w", err)
		}

		if len(holds) > 0 {
			r.logger.DebugContext(ctx, "released order reservation",
				slog.Int64("order_id", orderID),
				slog.Int("batches", len(holds)))
		}
		return nil
	})
}

// StaleOrders lists orders whose oldest hold predates the cutoff.
func (r *reservationRepository) StaleOrders(ctx context.Context, olderThan time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id
		FROM order_reservations
		GROUP BY order_id
		HAVING MIN(created_at) < $1
		ORDER BY order_id`, olderThan)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale orders: %w", err)
	}
	defer rows.Close()

	var orderIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan order id: %w", err)
		}
		orderIDs = append(orderIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return orderIDs, nil
}

type reservationHold struct {
	batchID  uuid.UUID
	quantity decimal.Decimal
}

// lockOrderReservations reads the order's rows FOR UPDATE so finalize and
// release cannot race each other for the same order.
func lockOrderReservations(ctx context.Context, tx pgx.Tx, orderID int64) ([]reservationHold, error) {
	rows, err := tx.Query(ctx, `
		SELECT batch_id, quantity
		FROM order_reservations
		WHERE order_id = $1
		ORDER BY batch_id
		FOR UPDATE`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock order reservations: %w", err)
	}
	defer rows.Close()

	var holds []reservationHold
	for rows.Next() {
		var h reservationHold
		if err := rows.Scan(&h.batchID, &h.quantity); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		holds = append(holds, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return holds, nil
}

// applyReservation bumps the batch hold and upserts the order's claim on it.
// The guarded update is the last line of defense: the batch is locked, but
// the arithmetic is still re-checked in SQL.
func applyReservation(ctx context.Context, tx pgx.Tx, orderID int64, alloc domain.Allocation) error {
	tag, err := tx.Exec(ctx, `
		UPDATE kitchen_stock
		SET reserved_quantity = reserved_quantity + $2,
		    updated_at = NOW()
		WHERE id = $1
		  AND reserved_quantity + $2 <= current_quantity`,
		alloc.BatchID, alloc.Quantity)
	if err != nil {
		return fmt.Errorf("failed to reserve on batch %s: %w", alloc.BatchID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: reservation of %s rejected for batch %s",
			domain.ErrInvariantViolation, alloc.Quantity, alloc.BatchID)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO order_reservations (order_id, batch_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id, batch_id)
		DO UPDATE SET quantity = order_reservations.quantity + EXCLUDED.quantity`,
		orderID, alloc.BatchID, alloc.Quantity); err != nil {
		return fmt.Errorf("failed to record order reservation: %w", err)
	}
	return nil
}
