// internal/core/services/kitchen.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// KitchenService exposes the kitchen ledger for listing and manual status
// changes.
type KitchenService struct {
	repo   ports.KitchenRepository
	cache  ports.CacheRepository
	logger *slog.Logger
	now    func() time.Time
}

var _ ports.KitchenService = (*KitchenService)(nil)

// NewKitchenService creates a new kitchen service
func NewKitchenService(repo ports.KitchenRepository, cache ports.CacheRepository, logger *slog.Logger) *KitchenService {
	return &KitchenService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "kitchen")),
		now:    time.Now,
	}
}

// GetBatch retrieves a kitchen batch by id.
func (s *KitchenService) GetBatch(ctx context.Context, id uuid.UUID) (*domain.KitchenBatch, error) {
	batch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get kitchen batch: %w", err)
	}
	if batch == nil {
		return nil, fmt.Errorf("%w: kitchen batch %s", domain.ErrNotFound, id)
	}
	return batch, nil
}

// List retrieves kitchen batches with filtering and pagination.
func (s *KitchenService) List(ctx context.Context, params ports.KitchenListParams) (*ports.KitchenListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 50
	}

	query := ports.KitchenQueryParams{
		Search:       params.Search,
		CategoryType: params.CategoryType,
		Status:       params.Status,
		SortBy:       params.SortBy,
		SortOrder:    params.SortOrder,
		Limit:        params.PageSize,
		Offset:       (params.Page - 1) * params.PageSize,
	}
	if params.ExpiringInH > 0 {
		until := s.now().Add(time.Duration(params.ExpiringInH) * time.Hour)
		query.ExpiringUntil = &until
	}

	items, totalCount, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list kitchen batches: %w", err)
	}

	return &ports.KitchenListResult{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages(totalCount, params.PageSize),
	}, nil
}

// UpdateStatus moves a batch to disposed or returned. Expired is reserved for
// the background sweep and a terminal batch cannot be reopened.
func (s *KitchenService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error {
	switch status {
	case domain.BatchDisposed, domain.BatchReturned:
	default:
		return fmt.Errorf("%w: cannot set batch status to %q", domain.ErrValidation, status)
	}

	batch, err := s.GetBatch(ctx, id)
	if err != nil {
		return err
	}
	if batch.Status == domain.BatchDisposed || batch.Status == domain.BatchReturned {
		return fmt.Errorf("%w: batch %s is already %s", domain.ErrValidation, batch.BatchNumber, batch.Status)
	}
	if batch.ReservedQuantity.IsPositive() {
		return fmt.Errorf("%w: batch %s has %s reserved", domain.ErrValidation,
			batch.BatchNumber, batch.ReservedQuantity)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update batch status: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.DeletePattern(ctx, availabilityCachePattern); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate availability cache",
				slog.String("error", err.Error()))
		}
	}

	s.logger.InfoContext(ctx, "updated kitchen batch status",
		slog.String("batch_number", batch.BatchNumber),
		slog.String("status", string(status)))

	return nil
}
