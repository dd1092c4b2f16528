// internal/core/domain/allocation_test.go
package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

func makeBatch(available int64, expiry *time.Time, transferred time.Time) domain.KitchenBatch {
	qty := decimal.NewFromInt(available)
	return domain.KitchenBatch{
		ID:               uuid.New(),
		BatchNumber:      "BATCH-100001",
		OriginalQuantity: qty,
		CurrentQuantity:  qty,
		ReservedQuantity: decimal.Zero,
		CalculatedExpiry: expiry,
		Status:           domain.BatchAvailable,
		TransferredAt:    transferred,
	}
}

func TestPlanAllocation_FEFOOrder(t *testing.T) {
	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	soon := base.Add(24 * time.Hour)
	later := base.Add(72 * time.Hour)

	expiresSoon := makeBatch(5, &soon, base)
	expiresLater := makeBatch(5, &later, base)

	// Input deliberately reversed: the later expiry comes first.
	allocations, err := domain.PlanAllocation(
		[]domain.KitchenBatch{expiresLater, expiresSoon},
		decimal.NewFromInt(7),
	)
	require.NoError(t, err)
	require.Len(t, allocations, 2)

	assert.Equal(t, expiresSoon.ID, allocations[0].BatchID)
	assert.True(t, allocations[0].Quantity.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, expiresLater.ID, allocations[1].BatchID)
	assert.True(t, allocations[1].Quantity.Equal(decimal.NewFromInt(2)))
}

func TestPlanAllocation_NilExpiryLast(t *testing.T) {
	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	soon := base.Add(24 * time.Hour)

	untracked := makeBatch(5, nil, base)
	tracked := makeBatch(5, &soon, base.Add(time.Hour))

	allocations, err := domain.PlanAllocation(
		[]domain.KitchenBatch{untracked, tracked},
		decimal.NewFromInt(6),
	)
	require.NoError(t, err)
	require.Len(t, allocations, 2)

	assert.Equal(t, tracked.ID, allocations[0].BatchID)
	assert.Equal(t, untracked.ID, allocations[1].BatchID)
}

func TestPlanAllocation_TransferTimeBreaksTies(t *testing.T) {
	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	expiry := base.Add(48 * time.Hour)

	newer := makeBatch(5, &expiry, base.Add(2*time.Hour))
	older := makeBatch(5, &expiry, base)

	allocations, err := domain.PlanAllocation(
		[]domain.KitchenBatch{newer, older},
		decimal.NewFromInt(3),
	)
	require.NoError(t, err)
	require.Len(t, allocations, 1)
	assert.Equal(t, older.ID, allocations[0].BatchID)
}

func TestPlanAllocation_SkipsNonReservable(t *testing.T) {
	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	expiry := base.Add(24 * time.Hour)

	expired := makeBatch(5, &expiry, base)
	expired.Status = domain.BatchExpired

	fullyReserved := makeBatch(5, &expiry, base)
	fullyReserved.ReservedQuantity = fullyReserved.CurrentQuantity

	usable := makeBatch(5, &expiry, base.Add(time.Hour))

	allocations, err := domain.PlanAllocation(
		[]domain.KitchenBatch{expired, fullyReserved, usable},
		decimal.NewFromInt(4),
	)
	require.NoError(t, err)
	require.Len(t, allocations, 1)
	assert.Equal(t, usable.ID, allocations[0].BatchID)
}

func TestPlanAllocation_PartiallyReservedBatch(t *testing.T) {
	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	expiry := base.Add(24 * time.Hour)

	partial := makeBatch(10, &expiry, base)
	partial.ReservedQuantity = decimal.NewFromInt(7)
	backup := makeBatch(10, &expiry, base.Add(time.Hour))

	allocations, err := domain.PlanAllocation(
		[]domain.KitchenBatch{partial, backup},
		decimal.NewFromInt(5),
	)
	require.NoError(t, err)
	require.Len(t, allocations, 2)

	// Only the unreserved remainder of the first batch is taken.
	assert.True(t, allocations[0].Quantity.Equal(decimal.NewFromInt(3)))
	assert.True(t, allocations[1].Quantity.Equal(decimal.NewFromInt(2)))
}

func TestPlanAllocation_InsufficientStock(t *testing.T) {
	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	expiry := base.Add(24 * time.Hour)
	batch := makeBatch(3, &expiry, base)

	allocations, err := domain.PlanAllocation(
		[]domain.KitchenBatch{batch},
		decimal.NewFromInt(5),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, allocations)
}

func TestPlanAllocation_RejectsNonPositiveDemand(t *testing.T) {
	_, err := domain.PlanAllocation(nil, decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = domain.PlanAllocation(nil, decimal.NewFromInt(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
