// internal/core/domain/warehouse.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPreparationMethod is applied when intake omits a preparation method.
const DefaultPreparationMethod = "Direct Open"

// WarehouseBatch is a bulk stock record: one row per received batch, not
// shelf-life tracked until it is transferred into kitchen stock.
type WarehouseBatch struct {
	ID                int64            `json:"id"`
	ProductName       string           `json:"product_name"`
	CategoryType      string           `json:"category_type"`
	SubCategory       string           `json:"sub_category,omitempty"`
	Quantity          decimal.Decimal  `json:"quantity"`
	Unit              string           `json:"unit"`
	PreparationMethod string           `json:"preparation_method"`
	HasExpiry         bool             `json:"has_expiry"`
	ExpiryDate        *time.Time       `json:"expiry_date,omitempty"`
	ServingSize       *decimal.Decimal `json:"serving_size,omitempty"`
	ShelfLifeValue    *float64         `json:"shelf_life_value,omitempty"`
	ShelfLifeUnit     string           `json:"shelf_life_unit,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

// Validate performs domain validation on a warehouse batch.
func (b *WarehouseBatch) Validate() error {
	if b.ProductName == "" {
		return fmt.Errorf("%w: product_name is required", ErrValidation)
	}
	if b.CategoryType == "" {
		return fmt.Errorf("%w: category_type is required", ErrValidation)
	}
	if b.Unit == "" {
		return fmt.Errorf("%w: unit is required", ErrValidation)
	}
	if b.Quantity.IsNegative() {
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	if b.PreparationMethod == "" {
		b.PreparationMethod = DefaultPreparationMethod
	}
	return nil
}

// PrepareForStorage fills storage defaults before the batch is persisted.
func (b *WarehouseBatch) PrepareForStorage() {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	b.HasExpiry = b.ExpiryDate != nil
}

// Exhausted reports whether the batch has been fully transferred out and is
// eligible for deletion.
func (b *WarehouseBatch) Exhausted() bool {
	return !b.Quantity.IsPositive()
}
