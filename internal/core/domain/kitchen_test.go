// internal/core/domain/kitchen_test.go
package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

func batchWithQuantities(original, current, reserved int64) domain.KitchenBatch {
	return domain.KitchenBatch{
		BatchNumber:      "BATCH-100001",
		OriginalQuantity: decimal.NewFromInt(original),
		CurrentQuantity:  decimal.NewFromInt(current),
		ReservedQuantity: decimal.NewFromInt(reserved),
		Status:           domain.BatchAvailable,
	}
}

func TestKitchenBatch_CheckInvariant(t *testing.T) {
	tests := []struct {
		name      string
		original  int64
		current   int64
		reserved  int64
		expectErr bool
	}{
		{"fresh_batch", 10, 10, 0, false},
		{"partially_consumed", 10, 6, 2, false},
		{"fully_reserved", 10, 6, 6, false},
		{"exhausted", 10, 0, 0, false},
		{"negative_reserved", 10, 5, -1, true},
		{"reserved_exceeds_current", 10, 5, 6, true},
		{"current_exceeds_original", 10, 11, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := batchWithQuantities(tt.original, tt.current, tt.reserved)
			err := batch.CheckInvariant()
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrInvariantViolation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKitchenBatch_CanAdjust(t *testing.T) {
	batch := batchWithQuantities(10, 8, 2)

	tests := []struct {
		name          string
		currentDelta  int64
		reservedDelta int64
		expectErr     bool
	}{
		{"reserve_within_available", 0, 3, false},
		{"consume_reservation", -2, -2, false},
		{"release_reservation", 0, -2, false},
		{"reserve_past_current", 0, 7, true},
		{"consume_below_reservation", -7, 0, true},
		{"release_below_zero", 0, -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := batch.CanAdjust(decimal.NewFromInt(tt.currentDelta), decimal.NewFromInt(tt.reservedDelta))
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrInvariantViolation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKitchenBatch_AvailableQuantity(t *testing.T) {
	batch := batchWithQuantities(10, 8, 3)
	assert.True(t, batch.AvailableQuantity().Equal(decimal.NewFromInt(5)))
}

func TestKitchenBatch_Reservable(t *testing.T) {
	available := batchWithQuantities(10, 8, 3)
	assert.True(t, available.Reservable())

	fullyReserved := batchWithQuantities(10, 8, 8)
	assert.False(t, fullyReserved.Reservable())

	expired := batchWithQuantities(10, 8, 0)
	expired.Status = domain.BatchExpired
	assert.False(t, expired.Reservable())

	disposed := batchWithQuantities(10, 8, 0)
	disposed.Status = domain.BatchDisposed
	assert.False(t, disposed.Reservable())
}
