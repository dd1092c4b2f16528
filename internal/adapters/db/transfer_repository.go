// internal/adapters/db/transfer_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

var transferHistoryColumns = []string{
	"id", "warehouse_item_id", "product_name", "transfer_quantity", "unit",
	"preparation_method", "shelf_life_value", "shelf_life_unit", "expiry_date",
	"transferred_at",
}

// transferRepository implements ports.TransferRepository
type transferRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *Database, logger *slog.Logger) ports.TransferRepository {
	return &transferRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "transfer")),
	}
}

// ExecuteTransfer writes the kitchen batch, its audit record, and the
// warehouse decrement in one transaction. The decrement is guarded by
// quantity >= $2, so a concurrent transfer that drained the source first
// rolls the whole operation back instead of leaving a negative row.
func (r *transferRepository) ExecuteTransfer(ctx context.Context, batch *domain.KitchenBatch, record *domain.TransferRecord, sourceID int64, quantity decimal.Decimal) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		insertBatch := `
			INSERT INTO kitchen_stock (
				id, warehouse_item_id, product_name, category_type, sub_category,
				batch_number, preparation_method, original_quantity, current_quantity,
				reserved_quantity, unit, serving_size, shelf_life_value, shelf_life_unit,
				expiry_from_manufacturer, original_expiry, calculated_expiry, expiry_source,
				status, transferred_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
			) RETURNING created_at, updated_at`

		err := tx.QueryRow(ctx, insertBatch,
			batch.ID, batch.WarehouseItemID, batch.ProductName, batch.CategoryType, nullableString(batch.SubCategory),
			batch.BatchNumber, batch.PreparationMethod, batch.OriginalQuantity, batch.CurrentQuantity,
			batch.ReservedQuantity, batch.Unit, batch.ServingSize, batch.ShelfLifeValue, nullableString(batch.ShelfLifeUnit),
			batch.ExpiryFromManufacturer, batch.OriginalExpiry, batch.CalculatedExpiry, nullableString(string(batch.ExpirySource)),
			string(batch.Status), batch.TransferredAt,
		).Scan(&batch.CreatedAt, &batch.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert kitchen batch: %w", err)
		}

		if err := insertTransferRecord(ctx, tx, record); err != nil {
			return err
		}

		if err := decrementWarehouse(ctx, tx, sourceID, quantity); err != nil {
			return err
		}

		r.logger.DebugContext(ctx, "transfer committed",
			slog.String("batch_number", batch.BatchNumber),
			slog.Int64("warehouse_item_id", sourceID))
		return nil
	})
}

// ExecuteRestock grows an existing batch and decrements its source in one
// transaction. Original and current move together so the invariant holds.
func (r *transferRepository) ExecuteRestock(ctx context.Context, batchID uuid.UUID, record *domain.TransferRecord, sourceID int64, quantity decimal.Decimal) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE kitchen_stock
			SET original_quantity = original_quantity + $2,
			    current_quantity = current_quantity + $2,
			    updated_at = NOW()
			WHERE id = $1 AND status = $3`,
			batchID, quantity, string(domain.BatchAvailable))
		if err != nil {
			return fmt.Errorf("failed to restock kitchen batch: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: kitchen batch %s not restockable", domain.ErrNotFound, batchID)
		}

		if err := insertTransferRecord(ctx, tx, record); err != nil {
			return err
		}

		if err := decrementWarehouse(ctx, tx, sourceID, quantity); err != nil {
			return err
		}

		r.logger.DebugContext(ctx, "restock committed",
			slog.String("batch_id", batchID.String()),
			slog.Int64("warehouse_item_id", sourceID))
		return nil
	})
}

// History lists the audit log, newest first.
func (r *transferRepository) History(ctx context.Context, params ports.TransferHistoryParams) ([]domain.TransferRecord, int64, error) {
	applyFilters := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.Search != "" {
			qb = qb.Where(squirrel.ILike{"product_name": "%" + params.Search + "%"})
		}
		if params.WarehouseItemID != nil {
			qb = qb.Where(squirrel.Eq{"warehouse_item_id": *params.WarehouseItemID})
		}
		return qb
	}

	countSQL, countArgs, err := applyFilters(
		squirrel.Select("COUNT(*)").From("transfer_history").PlaceholderFormat(squirrel.Dollar),
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count transfer history: %w", err)
	}

	qb := applyFilters(squirrel.Select(transferHistoryColumns...).
		From("transfer_history").
		PlaceholderFormat(squirrel.Dollar)).
		OrderBy("transferred_at DESC")

	if params.Limit > 0 {
		qb = qb.Limit(uint64(params.Limit))
	}
	if params.Offset > 0 {
		qb = qb.Offset(uint64(params.Offset))
	}

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transfer history: %w", err)
	}
	defer rows.Close()

	var records []domain.TransferRecord
	for rows.Next() {
		var rec domain.TransferRecord
		var shelfLifeUnit *string
		err := rows.Scan(
			&rec.ID, &rec.WarehouseItemID, &rec.ProductName, &rec.Quantity, &rec.Unit,
			&rec.PreparationMethod, &rec.ShelfLifeValue, &shelfLifeUnit, &rec.ExpiryDate,
			&rec.TransferredAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transfer record: %w", err)
		}
		if shelfLifeUnit != nil {
			rec.ShelfLifeUnit = *shelfLifeUnit
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, totalCount, nil
}

func insertTransferRecord(ctx context.Context, tx pgx.Tx, record *domain.TransferRecord) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO transfer_history (
			warehouse_item_id, product_name, transfer_quantity, unit,
			preparation_method, shelf_life_value, shelf_life_unit, expiry_date,
			transferred_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		record.WarehouseItemID, record.ProductName, record.Quantity, record.Unit,
		record.PreparationMethod, record.ShelfLifeValue, nullableString(record.ShelfLifeUnit),
		record.ExpiryDate, record.TransferredAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("failed to insert transfer record: %w", err)
	}
	return nil
}

// decrementWarehouse takes quantity off the source row and deletes it when it
// reaches zero. Partial draws keep the row.
func decrementWarehouse(ctx context.Context, tx pgx.Tx, sourceID int64, quantity decimal.Decimal) error {
	tag, err := tx.Exec(ctx, `
		UPDATE warehouse_inventory
		SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2`,
		sourceID, quantity)
	if err != nil {
		return fmt.Errorf("failed to decrement warehouse stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: warehouse batch %d below %s", domain.ErrInsufficientSourceStock, sourceID, quantity)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM warehouse_inventory WHERE id = $1 AND quantity = 0`, sourceID); err != nil {
		return fmt.Errorf("failed to remove drained warehouse batch: %w", err)
	}
	return nil
}
