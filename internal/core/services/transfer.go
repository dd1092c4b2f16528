// internal/core/services/transfer.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

const availabilityCachePattern = "availability:*"

// TransferService moves warehouse stock into the kitchen ledger. Every
// transfer creates exactly one kitchen batch, one audit record, and one
// warehouse decrement, committed together.
type TransferService struct {
	warehouse ports.WarehouseRepository
	kitchen   ports.KitchenRepository
	transfers ports.TransferRepository
	batchNums ports.BatchNumberSource
	cache     ports.CacheRepository
	logger    *slog.Logger
	now       func() time.Time
}

var _ ports.TransferService = (*TransferService)(nil)

// NewTransferService creates a new transfer service
func NewTransferService(
	warehouse ports.WarehouseRepository,
	kitchen ports.KitchenRepository,
	transfers ports.TransferRepository,
	batchNums ports.BatchNumberSource,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *TransferService {
	return &TransferService{
		warehouse: warehouse,
		kitchen:   kitchen,
		transfers: transfers,
		batchNums: batchNums,
		cache:     cache,
		logger:    logger.With(slog.String("service", "transfer")),
		now:       time.Now,
	}
}

// WithClock overrides the service clock. Expiry dates are derived from one
// timestamp captured at the start of each transfer, so tests can pin it.
func (s *TransferService) WithClock(now func() time.Time) *TransferService {
	s.now = now
	return s
}

// Transfer moves quantity from a warehouse batch into a new kitchen batch.
func (s *TransferService) Transfer(ctx context.Context, input domain.TransferInput) (*domain.KitchenBatch, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	source, err := s.warehouse.FindByID(ctx, input.SourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transfer source: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("%w: warehouse batch %d", domain.ErrNotFound, input.SourceID)
	}
	if input.Quantity.GreaterThan(source.Quantity) {
		return nil, fmt.Errorf("%w: requested %s %s, warehouse holds %s",
			domain.ErrInsufficientSourceStock, input.Quantity, input.Unit, source.Quantity)
	}

	transferredAt := s.now()

	shelfLifeValue := input.ShelfLifeValue
	shelfLifeUnit := input.ShelfLifeUnit
	if shelfLifeValue == nil {
		shelfLifeValue = source.ShelfLifeValue
		shelfLifeUnit = source.ShelfLifeUnit
	}

	expiry, expirySource := domain.ResolveExpiry(transferredAt,
		input.UseManufacturerExpiry, shelfLifeValue, shelfLifeUnit,
		input.ExplicitExpiry, source.ExpiryDate)

	batchNumber, err := s.batchNums.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to issue batch number: %w", err)
	}

	prep := input.PreparationMethod
	if prep == "" {
		prep = source.PreparationMethod
	}
	servingSize := input.ServingSize
	if servingSize == nil {
		servingSize = source.ServingSize
	}

	sourceID := source.ID
	batch := &domain.KitchenBatch{
		ID:                     uuid.New(),
		WarehouseItemID:        &sourceID,
		ProductName:            source.ProductName,
		CategoryType:           source.CategoryType,
		SubCategory:            source.SubCategory,
		BatchNumber:            batchNumber,
		PreparationMethod:      prep,
		OriginalQuantity:       input.Quantity,
		CurrentQuantity:        input.Quantity,
		ReservedQuantity:       decimal.Zero,
		Unit:                   input.Unit,
		ServingSize:            servingSize,
		ShelfLifeValue:         shelfLifeValue,
		ShelfLifeUnit:          shelfLifeUnit,
		ExpiryFromManufacturer: input.UseManufacturerExpiry,
		OriginalExpiry:         source.ExpiryDate,
		CalculatedExpiry:       expiry,
		ExpirySource:           expirySource,
		Status:                 domain.BatchAvailable,
		TransferredAt:          transferredAt,
	}

	record := &domain.TransferRecord{
		WarehouseItemID:   &sourceID,
		ProductName:       source.ProductName,
		Quantity:          input.Quantity,
		Unit:              input.Unit,
		PreparationMethod: prep,
		ShelfLifeValue:    shelfLifeValue,
		ShelfLifeUnit:     shelfLifeUnit,
		ExpiryDate:        expiry,
		TransferredAt:     transferredAt,
	}

	if err := s.transfers.ExecuteTransfer(ctx, batch, record, source.ID, input.Quantity); err != nil {
		return nil, fmt.Errorf("failed to execute transfer: %w", err)
	}

	s.invalidateAvailability(ctx)

	s.logger.InfoContext(ctx, "transferred stock to kitchen",
		slog.String("batch_number", batch.BatchNumber),
		slog.Int64("warehouse_item_id", source.ID),
		slog.String("quantity", input.Quantity.String()),
		slog.String("expiry_source", string(expirySource)))

	return batch, nil
}

// FastTrackRestock tops up an existing kitchen batch from its warehouse
// source. The batch keeps its number, expiry, and transfer timestamp.
func (s *TransferService) FastTrackRestock(ctx context.Context, batchID uuid.UUID, quantity decimal.Decimal) (*domain.KitchenBatch, error) {
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: restock quantity must be positive", domain.ErrValidation)
	}

	batch, err := s.kitchen.FindByID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load kitchen batch: %w", err)
	}
	if batch == nil {
		return nil, fmt.Errorf("%w: kitchen batch %s", domain.ErrNotFound, batchID)
	}
	if batch.Status != domain.BatchAvailable {
		return nil, fmt.Errorf("%w: cannot restock %s batch %s", domain.ErrValidation, batch.Status, batch.BatchNumber)
	}
	if batch.WarehouseItemID == nil {
		return nil, fmt.Errorf("%w: batch %s has no warehouse source", domain.ErrValidation, batch.BatchNumber)
	}

	source, err := s.warehouse.FindByID(ctx, *batch.WarehouseItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load restock source: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("%w: warehouse batch %d", domain.ErrNotFound, *batch.WarehouseItemID)
	}
	if quantity.GreaterThan(source.Quantity) {
		return nil, fmt.Errorf("%w: requested %s, warehouse holds %s",
			domain.ErrInsufficientSourceStock, quantity, source.Quantity)
	}

	record := &domain.TransferRecord{
		WarehouseItemID:   batch.WarehouseItemID,
		ProductName:       batch.ProductName,
		Quantity:          quantity,
		Unit:              batch.Unit,
		PreparationMethod: batch.PreparationMethod,
		ShelfLifeValue:    batch.ShelfLifeValue,
		ShelfLifeUnit:     batch.ShelfLifeUnit,
		ExpiryDate:        batch.CalculatedExpiry,
		TransferredAt:     s.now(),
	}

	if err := s.transfers.ExecuteRestock(ctx, batchID, record, source.ID, quantity); err != nil {
		return nil, fmt.Errorf("failed to execute restock: %w", err)
	}

	s.invalidateAvailability(ctx)

	batch.OriginalQuantity = batch.OriginalQuantity.Add(quantity)
	batch.CurrentQuantity = batch.CurrentQuantity.Add(quantity)

	s.logger.InfoContext(ctx, "fast-track restocked kitchen batch",
		slog.String("batch_number", batch.BatchNumber),
		slog.String("quantity", quantity.String()))

	return batch, nil
}

// History lists the transfer audit log, newest first.
func (s *TransferService) History(ctx context.Context, params ports.TransferHistoryListParams) (*ports.TransferHistoryResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 50
	}

	records, totalCount, err := s.transfers.History(ctx, ports.TransferHistoryParams{
		Search:          params.Search,
		WarehouseItemID: params.WarehouseItemID,
		Limit:           params.PageSize,
		Offset:          (params.Page - 1) * params.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transfer history: %w", err)
	}

	return &ports.TransferHistoryResult{
		Records:    records,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages(totalCount, params.PageSize),
	}, nil
}

func (s *TransferService) invalidateAvailability(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, availabilityCachePattern); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate availability cache",
			slog.String("error", err.Error()))
	}
}
