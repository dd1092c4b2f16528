// internal/core/domain/transfer.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransferRecord is the immutable audit entry written with every transfer,
// one per operation, atomically with the kitchen batch it produced.
type TransferRecord struct {
	ID                int64           `json:"id"`
	WarehouseItemID   *int64          `json:"warehouse_item_id,omitempty"`
	ProductName       string          `json:"product_name"`
	Quantity          decimal.Decimal `json:"transfer_quantity"`
	Unit              string          `json:"unit"`
	PreparationMethod string          `json:"preparation_method"`
	ShelfLifeValue    *float64        `json:"shelf_life_value,omitempty"`
	ShelfLifeUnit     string          `json:"shelf_life_unit,omitempty"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	TransferredAt     time.Time       `json:"transferred_at"`
}

// TransferInput captures the operator's choices for moving warehouse stock
// into a new kitchen batch.
type TransferInput struct {
	SourceID              int64            `json:"source_id"`
	Quantity              decimal.Decimal  `json:"quantity"`
	Unit                  string           `json:"unit"`
	ShelfLifeValue        *float64         `json:"shelf_life_value,omitempty"`
	ShelfLifeUnit         string           `json:"shelf_life_unit,omitempty"`
	PreparationMethod     string           `json:"preparation_method,omitempty"`
	ExplicitExpiry        *time.Time       `json:"explicit_expiry,omitempty"`
	ServingSize           *decimal.Decimal `json:"serving_size,omitempty"`
	UseManufacturerExpiry bool             `json:"use_manufacturer_expiry"`
}

func (in *TransferInput) Validate() error {
	if in.SourceID == 0 {
		return fmt.Errorf("%w: source_id is required", ErrValidation)
	}
	if !in.Quantity.IsPositive() {
		return fmt.Errorf("%w: transfer quantity must be positive", ErrValidation)
	}
	if in.Unit == "" {
		return fmt.Errorf("%w: unit is required", ErrValidation)
	}
	if in.ShelfLifeValue != nil && *in.ShelfLifeValue < 0 {
		return fmt.Errorf("%w: shelf_life_value cannot be negative", ErrValidation)
	}
	return nil
}
