// internal/core/ports/warehouse_service.go
package ports

import (
	"context"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

// WarehouseService is the application service port for bulk stock.
// This interface is implemented by the application service.
type WarehouseService interface {
	Receive(ctx context.Context, batch *domain.WarehouseBatch) error
	GetByID(ctx context.Context, id int64) (*domain.WarehouseBatch, error)
	List(ctx context.Context, params WarehouseListParams) (*WarehouseListResult, error)
	Remove(ctx context.Context, id int64) error
}

// WarehouseListParams holds parameters for listing warehouse stock.
type WarehouseListParams struct {
	Search       string
	CategoryType string
	Unit         string
	SortBy       string
	SortOrder    string
	Page         int
	PageSize     int
}

// WarehouseListResult holds one page of warehouse stock.
type WarehouseListResult struct {
	Items      []domain.WarehouseBatch `json:"items"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalCount int64                   `json:"total_count"`
	TotalPages int                     `json:"total_pages"`
}
