// internal/core/domain/allocation.go
package domain

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocation is one batch's share of a reservation.
type Allocation struct {
	BatchID  uuid.UUID
	Quantity decimal.Decimal
}

// PlanAllocation distributes needed quantity across batches FEFO:
// earliest calculated expiry first, batches without an expiry last, ties
// broken by transfer time. Batches that are not reservable are skipped.
// Returns ErrInsufficientStock when the eligible batches cannot cover the
// demand; in that case no allocation is produced.
func PlanAllocation(batches []KitchenBatch, needed decimal.Decimal) ([]Allocation, error) {
	if !needed.IsPositive() {
		return nil, fmt.Errorf("%w: allocation quantity must be positive, got %s", ErrValidation, needed)
	}

	eligible := make([]KitchenBatch, 0, len(batches))
	for _, b := range batches {
		if b.Reservable() {
			eligible = append(eligible, b)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		ei, ej := eligible[i].CalculatedExpiry, eligible[j].CalculatedExpiry
		switch {
		case ei != nil && ej != nil && !ei.Equal(*ej):
			return ei.Before(*ej)
		case ei != nil && ej == nil:
			return true
		case ei == nil && ej != nil:
			return false
		}
		return eligible[i].TransferredAt.Before(eligible[j].TransferredAt)
	})

	var allocations []Allocation
	remaining := needed
	for _, b := range eligible {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(b.AvailableQuantity(), remaining)
		allocations = append(allocations, Allocation{BatchID: b.ID, Quantity: take})
		remaining = remaining.Sub(take)
	}

	if remaining.IsPositive() {
		return nil, fmt.Errorf("%w: short %s of %s needed", ErrInsufficientStock, remaining, needed)
	}
	return allocations, nil
}
