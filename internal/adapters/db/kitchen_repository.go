// internal/adapters/db/kitchen_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

var kitchenColumns = []string{
	"id", "warehouse_item_id", "product_name", "category_type", "sub_category",
	"batch_number", "preparation_method", "original_quantity", "current_quantity",
	"reserved_quantity", "unit", "serving_size", "shelf_life_value", "shelf_life_unit",
	"expiry_from_manufacturer", "original_expiry", "calculated_expiry", "expiry_source",
	"status", "transferred_at", "created_at", "updated_at",
}

// kitchenRepository implements ports.KitchenRepository
type kitchenRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewKitchenRepository creates a new kitchen repository
func NewKitchenRepository(db *Database, logger *slog.Logger) ports.KitchenRepository {
	return &kitchenRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "kitchen")),
	}
}

// FindByID retrieves a kitchen batch by id, nil when absent
func (r *kitchenRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.KitchenBatch, error) {
	qb := squirrel.Select(kitchenColumns...).
		From("kitchen_stock").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	batch, err := scanKitchenBatch(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find kitchen batch: %w", err)
	}
	return batch, nil
}

// FindAll retrieves kitchen batches with filtering and pagination
func (r *kitchenRepository) FindAll(ctx context.Context, params ports.KitchenQueryParams) ([]domain.KitchenBatch, int64, error) {
	applyFilters := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.Search != "" {
			qb = qb.Where(squirrel.Or{
				squirrel.ILike{"product_name": "%" + params.Search + "%"},
				squirrel.ILike{"batch_number": "%" + params.Search + "%"},
			})
		}
		if params.CategoryType != "" {
			qb = qb.Where(squirrel.Eq{"category_type": params.CategoryType})
		}
		if params.Status != "" {
			qb = qb.Where(squirrel.Eq{"status": params.Status})
		}
		if params.ExpiringUntil != nil {
			qb = qb.Where(squirrel.And{
				squirrel.Eq{"status": string(domain.BatchAvailable)},
				squirrel.NotEq{"calculated_expiry": nil},
				squirrel.LtOrEq{"calculated_expiry": *params.ExpiringUntil},
			})
		}
		return qb
	}

	countSQL, countArgs, err := applyFilters(
		squirrel.Select("COUNT(*)").From("kitchen_stock").PlaceholderFormat(squirrel.Dollar),
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count kitchen batches: %w", err)
	}

	orderBy := "transferred_at DESC"
	if params.SortBy != "" {
		direction := "ASC"
		if params.SortOrder == "desc" {
			direction = "DESC"
		}
		switch params.SortBy {
		case "name":
			orderBy = fmt.Sprintf("product_name %s", direction)
		case "expiry":
			orderBy = fmt.Sprintf("calculated_expiry %s NULLS LAST", direction)
		case "quantity":
			orderBy = fmt.Sprintf("current_quantity %s", direction)
		default:
			orderBy = fmt.Sprintf("transferred_at %s", direction)
		}
	}

	qb := applyFilters(squirrel.Select(kitchenColumns...).
		From("kitchen_stock").
		PlaceholderFormat(squirrel.Dollar)).
		OrderBy(orderBy)

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
		return nil, 0, fmt.Errorf("failed to query kitchen batches: %w", err)
	}
	defer rows.Close()

	var batches []domain.KitchenBatch
	for rows.Next() {
		batch, err := scanKitchenBatch(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan kitchen batch: %w", err)
		}
		batches = append(batches, *batch)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return batches, totalCount, nil
}

// FindAvailableByIngredient returns reservable batches for one ingredient in
// allocation order: earliest calculated expiry first, no-expiry last, ties by
// transfer time.
func (r *kitchenRepository) FindAvailableByIngredient(ctx context.Context, ingredientID int64) ([]domain.KitchenBatch, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM kitchen_stock
		WHERE warehouse_item_id = $1
		  AND status = $2
		  AND current_quantity > reserved_quantity
		ORDER BY calculated_expiry ASC NULLS LAST, transferred_at ASC`,
		columnList(kitchenColumns))

	rows, err := r.db.Query(ctx, query, ingredientID, string(domain.BatchAvailable))
	if err != nil {
		return nil, fmt.Errorf("failed to query available batches: %w", err)
	}
	defer rows.Close()

	var batches []domain.KitchenBatch
	for rows.Next() {
		batch, err := scanKitchenBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kitchen batch: %w", err)
		}
		batches = append(batches, *batch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return batches, nil
}

// AvailableForIngredient sums current - reserved over reservable batches.
func (r *kitchenRepository) AvailableForIngredient(ctx context.Context, ingredientID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(current_quantity - reserved_quantity), 0)
		FROM kitchen_stock
		WHERE warehouse_item_id = $1 AND status = $2`

	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, ingredientID, string(domain.BatchAvailable)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum availability: %w", err)
	}
	return total, nil
}

// Adjust applies quantity deltas under the batch invariant. The WHERE clause
// re-checks 0 <= reserved <= current <= original against the post-update
// values, so a stale read can never push a batch out of bounds.
func (r *kitchenRepository) Adjust(ctx context.Context, id uuid.UUID, currentDelta, reservedDelta decimal.Decimal) error {
	query := `
		UPDATE kitchen_stock
		SET current_quantity = current_quantity + $2,
		    reserved_quantity = reserved_quantity + $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND reserved_quantity + $3 >= 0
		  AND reserved_quantity + $3 <= current_quantity + $2
		  AND current_quantity + $2 <= original_quantity`

	tag, err := r.db.Exec(ctx, query, id, currentDelta, reservedDelta)
	if err != nil {
		return fmt.Errorf("failed to adjust kitchen batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: adjustment (%s, %s) rejected for batch %s",
			domain.ErrInvariantViolation, currentDelta, reservedDelta, id)
	}
	return nil
}

// UpdateStatus sets the lifecycle status of a batch
func (r *kitchenRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE kitchen_stock SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, string(status))
	if err != nil {
		return fmt.Errorf("failed to update batch status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: kitchen batch %s", domain.ErrNotFound, id)
	}
	return nil
}

// MarkExpired flips available batches whose calculated expiry has passed.
func (r *kitchenRepository) MarkExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	query := `
		UPDATE kitchen_stock
		SET status = $1, updated_at = NOW()
		WHERE status = $2
		  AND calculated_expiry IS NOT NULL
		  AND calculated_expiry <= $3
		RETURNING id`

	rows, err := r.db.Query(ctx, query,
		string(domain.BatchExpired), string(domain.BatchAvailable), now)
	if err != nil {
		return nil, fmt.Errorf("failed to mark expired batches: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan expired batch id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if len(ids) > 0 {
		r.logger.InfoContext(ctx, "marked batches expired", slog.Int("count", len(ids)))
	}
	return ids, nil
}

// Delete removes a kitchen batch
func (r *kitchenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM kitchen_stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete kitchen batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: kitchen batch %s", domain.ErrNotFound, id)
	}

	r.logger.InfoContext(ctx, "kitchen batch deleted", slog.String("id", id.String()))
	return nil
}

// scanKitchenBatch maps one row in kitchenColumns order.
func scanKitchenBatch(row pgx.Row) (*domain.KitchenBatch, error) {
	batch := &domain.KitchenBatch{}
	var subCategory, shelfLifeUnit, expirySource sql.NullString
	var status string

	err := row.Scan(
		&batch.ID, &batch.WarehouseItemID, &batch.ProductName, &batch.CategoryType, &subCategory,
		&batch.BatchNumber, &batch.PreparationMethod, &batch.OriginalQuantity, &batch.CurrentQuantity,
		&batch.ReservedQuantity, &batch.Unit, &batch.ServingSize, &batch.ShelfLifeValue, &shelfLifeUnit,
		&batch.ExpiryFromManufacturer, &batch.OriginalExpiry, &batch.CalculatedExpiry, &expirySource,
		&status, &batch.TransferredAt, &batch.CreatedAt, &batch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	batch.SubCategory = subCategory.String
	batch.ShelfLifeUnit = shelfLifeUnit.String
	batch.ExpirySource = domain.ExpirySource(expirySource.String)
	batch.Status = domain.BatchStatus(status)
	return batch, nil
}
