// internal/core/domain/kitchen.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchStatus represents the lifecycle state of a kitchen batch.
type BatchStatus string

const (
	BatchAvailable BatchStatus = "available"
	BatchExpired   BatchStatus = "expired"
	BatchDisposed  BatchStatus = "disposed"
	BatchReturned  BatchStatus = "returned"
)

// KitchenBatch is a perishable, batch-tracked stock record derived from a
// single warehouse transfer. Descriptive fields are copied from the source at
// transfer time; WarehouseItemID is nullable because the batch may outlive it.
//
// Invariant: 0 <= reserved_quantity <= current_quantity <= original_quantity.
// CalculatedExpiry is derived once at creation and never updated.
type KitchenBatch struct {
	ID                     uuid.UUID        `json:"id"`
	WarehouseItemID        *int64           `json:"warehouse_item_id,omitempty"`
	ProductName            string           `json:"product_name"`
	CategoryType           string           `json:"category_type"`
	SubCategory            string           `json:"sub_category,omitempty"`
	BatchNumber            string           `json:"batch_number"`
	PreparationMethod      string           `json:"preparation_method"`
	OriginalQuantity       decimal.Decimal  `json:"original_quantity"`
	CurrentQuantity        decimal.Decimal  `json:"current_quantity"`
	ReservedQuantity       decimal.Decimal  `json:"reserved_quantity"`
	Unit                   string           `json:"unit"`
	ServingSize            *decimal.Decimal `json:"serving_size,omitempty"`
	ShelfLifeValue         *float64         `json:"shelf_life_value,omitempty"`
	ShelfLifeUnit          string           `json:"shelf_life_unit,omitempty"`
	ExpiryFromManufacturer bool             `json:"expiry_based_on_manufacturer"`
	OriginalExpiry         *time.Time       `json:"original_expiry_date,omitempty"`
	CalculatedExpiry       *time.Time       `json:"calculated_expiry_date,omitempty"`
	ExpirySource           ExpirySource     `json:"expiry_source,omitempty"`
	Status                 BatchStatus      `json:"status"`
	TransferredAt          time.Time        `json:"transferred_at"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

// AvailableQuantity is the only quantity offered to new reservations.
func (b *KitchenBatch) AvailableQuantity() decimal.Decimal {
	return b.CurrentQuantity.Sub(b.ReservedQuantity)
}

// CheckInvariant verifies 0 <= reserved <= current <= original.
func (b *KitchenBatch) CheckInvariant() error {
	if b.ReservedQuantity.IsNegative() {
		return fmt.Errorf("%w: reserved_quantity %s < 0 on batch %s",
			ErrInvariantViolation, b.ReservedQuantity, b.BatchNumber)
	}
	if b.ReservedQuantity.GreaterThan(b.CurrentQuantity) {
		return fmt.Errorf("%w: reserved_quantity %s > current_quantity %s on batch %s",
			ErrInvariantViolation, b.ReservedQuantity, b.CurrentQuantity, b.BatchNumber)
	}
	if b.CurrentQuantity.GreaterThan(b.OriginalQuantity) {
		return fmt.Errorf("%w: current_quantity %s > original_quantity %s on batch %s",
			ErrInvariantViolation, b.CurrentQuantity, b.OriginalQuantity, b.BatchNumber)
	}
	return nil
}

// CanAdjust reports whether applying the deltas would keep the invariant.
func (b *KitchenBatch) CanAdjust(currentDelta, reservedDelta decimal.Decimal) error {
	adjusted := KitchenBatch{
		BatchNumber:      b.BatchNumber,
		OriginalQuantity: b.OriginalQuantity,
		CurrentQuantity:  b.CurrentQuantity.Add(currentDelta),
		ReservedQuantity: b.ReservedQuantity.Add(reservedDelta),
	}
	return adjusted.CheckInvariant()
}

// Reservable reports whether the batch may participate in new reservations.
func (b *KitchenBatch) Reservable() bool {
	return b.Status == BatchAvailable && b.AvailableQuantity().IsPositive()
}
