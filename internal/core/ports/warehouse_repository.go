// internal/core/ports/warehouse_repository.go
package ports

import (
	"context"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

// WarehouseQueryParams filters warehouse batch listings.
type WarehouseQueryParams struct {
	Search       string
	CategoryType string
	Unit         string
	SortBy       string
	SortOrder    string
	Limit        int
	Offset       int
}

// WarehouseRepository is the persistence port for bulk stock.
type WarehouseRepository interface {
	Save(ctx context.Context, batch *domain.WarehouseBatch) error
	FindByID(ctx context.Context, id int64) (*domain.WarehouseBatch, error)
	FindAll(ctx context.Context, params WarehouseQueryParams) ([]domain.WarehouseBatch, int64, error)
	// Delete removes a batch. The bool result is false when the id does not
	// exist; that is not an error because callers use it as best-effort
	// cleanup after a full transfer.
	Delete(ctx context.Context, id int64) (bool, error)
}
