// internal/core/services/warehouse.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// WarehouseService handles bulk stock business logic.
type WarehouseService struct {
	repo   ports.WarehouseRepository
	logger *slog.Logger
}

// Statically assert that *WarehouseService implements the WarehouseService port.
var _ ports.WarehouseService = (*WarehouseService)(nil)

// NewWarehouseService creates a new warehouse service
func NewWarehouseService(repo ports.WarehouseRepository, logger *slog.Logger) *WarehouseService {
	return &WarehouseService{
		repo:   repo,
		logger: logger.With(slog.String("service", "warehouse")),
	}
}

// Receive records a new delivery into the warehouse ledger.
func (s *WarehouseService) Receive(ctx context.Context, batch *domain.WarehouseBatch) error {
	if err := batch.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	batch.PrepareForStorage()

	if err := s.repo.Save(ctx, batch); err != nil {
		return fmt.Errorf("failed to save warehouse batch: %w", err)
	}

	s.logger.InfoContext(ctx, "received warehouse stock",
		slog.Int64("id", batch.ID),
		slog.String("product_name", batch.ProductName),
		slog.String("quantity", batch.Quantity.String()),
		slog.String("unit", batch.Unit))

	return nil
}

// GetByID retrieves a warehouse batch by id.
func (s *WarehouseService) GetByID(ctx context.Context, id int64) (*domain.WarehouseBatch, error) {
	batch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get warehouse batch: %w", err)
	}
	if batch == nil {
		return nil, fmt.Errorf("%w: warehouse batch %d", domain.ErrNotFound, id)
	}
	return batch, nil
}

// List retrieves warehouse stock with filtering and pagination.
func (s *WarehouseService) List(ctx context.Context, params ports.WarehouseListParams) (*ports.WarehouseListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 50
	}

	items, totalCount, err := s.repo.FindAll(ctx, ports.WarehouseQueryParams{
		Search:       params.Search,
		CategoryType: params.CategoryType,
		Unit:         params.Unit,
		SortBy:       params.SortBy,
		SortOrder:    params.SortOrder,
		Limit:        params.PageSize,
		Offset:       (params.Page - 1) * params.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouse stock: %w", err)
	}

	return &ports.WarehouseListResult{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages(totalCount, params.PageSize),
	}, nil
}

// Remove deletes a warehouse batch outright, e.g. a mis-entered delivery.
func (s *WarehouseService) Remove(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete warehouse batch: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: warehouse batch %d", domain.ErrNotFound, id)
	}

	s.logger.InfoContext(ctx, "deleted warehouse batch", slog.Int64("id", id))
	return nil
}

func totalPages(totalCount int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		pages++
	}
	return pages
}
