// internal/core/ports/transfer_repository.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

// TransferHistoryParams filters the transfer audit log.
type TransferHistoryParams struct {
	Search          string
	WarehouseItemID *int64
	Limit           int
	Offset          int
}

// TransferRepository executes warehouse-to-kitchen moves. The three effects of
// a transfer (kitchen batch insert, history insert, warehouse decrement) must
// land in one database transaction or not at all.
type TransferRepository interface {
	// ExecuteTransfer persists the batch and its audit record, then decrements
	// the source row, deleting it when the quantity reaches zero. Returns
	// domain.ErrInsufficientSourceStock when the guarded decrement finds less
	// stock than requested.
	ExecuteTransfer(ctx context.Context, batch *domain.KitchenBatch, record *domain.TransferRecord, sourceID int64, quantity decimal.Decimal) error
	// ExecuteRestock tops up an existing kitchen batch from its source row:
	// original and current quantities grow by quantity, a history record is
	// written, and the warehouse row is decremented under the same guard as
	// ExecuteTransfer.
	ExecuteRestock(ctx context.Context, batchID uuid.UUID, record *domain.TransferRecord, sourceID int64, quantity decimal.Decimal) error
	History(ctx context.Context, params TransferHistoryParams) ([]domain.TransferRecord, int64, error)
}
