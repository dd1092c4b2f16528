// internal/core/ports/transfer_service.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

// TransferService moves warehouse stock into batch-tracked kitchen stock.
type TransferService interface {
	Transfer(ctx context.Context, input domain.TransferInput) (*domain.KitchenBatch, error)
	// FastTrackRestock tops up an existing kitchen batch from its warehouse
	// source without creating a new batch.
	FastTrackRestock(ctx context.Context, batchID uuid.UUID, quantity decimal.Decimal) (*domain.KitchenBatch, error)
	History(ctx context.Context, params TransferHistoryListParams) (*TransferHistoryResult, error)
}

// KitchenService exposes the kitchen ledger to the outer layers.
type KitchenService interface {
	GetBatch(ctx context.Context, id uuid.UUID) (*domain.KitchenBatch, error)
	List(ctx context.Context, params KitchenListParams) (*KitchenListResult, error)
	// UpdateStatus moves a batch to disposed or returned. Expiry transitions
	// belong to the background sweep, not to callers.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error
}

// TransferHistoryListParams holds parameters for listing the audit log.
type TransferHistoryListParams struct {
	Search          string
	WarehouseItemID *int64
	Page            int
	PageSize        int
}

// TransferHistoryResult holds one page of the audit log.
type TransferHistoryResult struct {
	Records    []domain.TransferRecord `json:"records"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalCount int64                   `json:"total_count"`
	TotalPages int                     `json:"total_pages"`
}

// KitchenListParams holds parameters for listing kitchen batches.
type KitchenListParams struct {
	Search       string
	CategoryType string
	Status       string
	ExpiringInH  int
	SortBy       string
	SortOrder    string
	Page         int
	PageSize     int
}

// KitchenListResult holds one page of kitchen batches.
type KitchenListResult struct {
	Items      []domain.KitchenBatch `json:"items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalCount int64                 `json:"total_count"`
	TotalPages int                   `json:"total_pages"`
}
