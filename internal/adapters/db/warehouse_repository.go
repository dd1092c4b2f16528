// internal/adapters/db/warehouse_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

var warehouseColumns = []string{
	"id", "product_name", "category_type", "sub_category", "quantity", "unit",
	"preparation_method", "has_expiry", "expiry_date", "serving_size",
	"shelf_life_value", "shelf_life_unit", "notes", "created_at",
}

// warehouseRepository implements ports.WarehouseRepository
type warehouseRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewWarehouseRepository creates a new warehouse repository
func NewWarehouseRepository(db *Database, logger *slog.Logger) ports.WarehouseRepository {
	return &warehouseRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "warehouse")),
	}
}

// Save creates a new warehouse batch
func (r *warehouseRepository) Save(ctx context.Context, batch *domain.WarehouseBatch) error {
	query := `
		INSERT INTO warehouse_inventory (
			product_name, category_type, sub_category, quantity, unit,
			preparation_method, has_expiry, expiry_date, serving_size,
			shelf_life_value, shelf_life_unit, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		batch.ProductName, batch.CategoryType, batch.SubCategory, batch.Quantity, batch.Unit,
		batch.PreparationMethod, batch.HasExpiry, batch.ExpiryDate, batch.ServingSize,
		batch.ShelfLifeValue, nullableString(batch.ShelfLifeUnit), nullableString(batch.Notes),
	).Scan(&batch.ID, &batch.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save warehouse batch: %w", err)
	}

	r.logger.DebugContext(ctx, "warehouse batch saved",
		slog.Int64("id", batch.ID),
		slog.String("product_name", batch.ProductName))

	return nil
}

// FindByID retrieves a warehouse batch by id, nil when absent
func (r *warehouseRepository) FindByID(ctx context.Context, id int64) (*domain.WarehouseBatch, error) {
	qb := squirrel.Select(warehouseColumns...).
		From("warehouse_inventory").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	batch, err := scanWarehouseBatch(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find warehouse batch: %w", err)
	}
	return batch, nil
}

// FindAll retrieves warehouse batches with filtering and pagination
func (r *warehouseRepository) FindAll(ctx context.Context, params ports.WarehouseQueryParams) ([]domain.WarehouseBatch, int64, error) {
	applyFilters := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.Search != "" {
			qb = qb.Where(squirrel.ILike{"product_name": "%" + params.Search + "%"})
		}
		if params.CategoryType != "" {
			qb = qb.Where(squirrel.Eq{"category_type": params.CategoryType})
		}
		if params.Unit != "" {
			qb = qb.Where(squirrel.Eq{"unit": params.Unit})
		}
		return qb
	}

	countSQL, countArgs, err := applyFilters(
		squirrel.Select("COUNT(*)").From("warehouse_inventory").PlaceholderFormat(squirrel.Dollar),
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count warehouse batches: %w", err)
	}

	qb := applyFilters(squirrel.Select(warehouseColumns...).
		From("warehouse_inventory").
		PlaceholderFormat(squirrel.Dollar))

	orderBy := "created_at DESC"
	if params.SortBy != "" {
		direction := "ASC"
		if params.SortOrder == "desc" {
			direction = "DESC"
		}
		switch params.SortBy {
		case "name":
			orderBy = fmt.Sprintf("product_name %s", direction)
		case "quantity":
			orderBy = fmt.Sprintf("quantity %s", direction)
		case "expiry":
			orderBy = fmt.Sprintf("expiry_date %s NULLS LAST", direction)
		default:
			orderBy = fmt.Sprintf("created_at %s", direction)
		}
	}
	qb = qb.OrderBy(orderBy)

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
		return nil, 0, fmt.Errorf("failed to query warehouse batches: %w", err)
	}
	defer rows.Close()

	var batches []domain.WarehouseBatch
	for rows.Next() {
		batch, err := scanWarehouseBatch(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan warehouse batch: %w", err)
		}
		batches = append(batches, *batch)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return batches, totalCount, nil
}

// Delete removes a warehouse batch
func (r *warehouseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM warehouse_inventory WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete warehouse batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	r.logger.InfoContext(ctx, "warehouse batch deleted", slog.Int64("id", id))
	return true, nil
}

// scanWarehouseBatch maps one row in warehouseColumns order.
func scanWarehouseBatch(row pgx.Row) (*domain.WarehouseBatch, error) {
	batch := &domain.WarehouseBatch{}
	var subCategory, shelfLifeUnit, notes sql.NullString

	err := row.Scan(
		&batch.ID, &batch.ProductName, &batch.CategoryType, &subCategory, &batch.Quantity, &batch.Unit,
		&batch.PreparationMethod, &batch.HasExpiry, &batch.ExpiryDate, &batch.ServingSize,
		&batch.ShelfLifeValue, &shelfLifeUnit, &notes, &batch.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	batch.SubCategory = subCategory.String
	batch.ShelfLifeUnit = shelfLifeUnit.String
	batch.Notes = notes.String
	return batch, nil
}
