// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

// makeBatchLedger builds n available kitchen batches with staggered expiries,
// oldest-expiring first, mimicking a ledger that has seen steady transfers.
func makeBatchLedger(n int) []domain.KitchenBatch {
	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	batches := make([]domain.KitchenBatch, 0, n)

	for i := 0; i < n; i++ {
		transferred := base.Add(time.Duration(i) * time.Hour)
		expiry := transferred.Add(48 * time.Hour)

		batches = append(batches, domain.KitchenBatch{
			ID:               uuid.New(),
			ProductName:      "Whole Milk",
			CategoryType:     "Dairy",
			BatchNumber:      fmt.Sprintf("BATCH-%06d", 100000+i),
			OriginalQuantity: decimal.NewFromInt(10),
			CurrentQuantity:  decimal.NewFromInt(10),
			ReservedQuantity: decimal.Zero,
			Unit:             "liter",
			CalculatedExpiry: &expiry,
			ExpirySource:     domain.ExpiryComputed,
			Status:           domain.BatchAvailable,
			TransferredAt:    transferred,
		})
	}

	return batches
}
