// internal/core/services/transfer_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
	"github.com/brewline/stockroom-be/internal/core/services"
	"github.com/brewline/stockroom-be/test/helpers"
	"github.com/brewline/stockroom-be/test/mocks"
)

type transferMocks struct {
	warehouse *mocks.MockWarehouseRepository
	kitchen   *mocks.MockKitchenRepository
	transfers *mocks.MockTransferRepository
	batchNums *mocks.MockBatchNumberSource
}

func newTransferService(t *testing.T) (*services.TransferService, transferMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := transferMocks{
		warehouse: mocks.NewMockWarehouseRepository(ctrl),
		kitchen:   mocks.NewMockKitchenRepository(ctrl),
		transfers: mocks.NewMockTransferRepository(ctrl),
		batchNums: mocks.NewMockBatchNumberSource(ctrl),
	}
	service := services.NewTransferService(
		m.warehouse, m.kitchen, m.transfers, m.batchNums, nil, helpers.TestLogger())
	return service, m
}

func milkSource() *domain.WarehouseBatch {
	shelfLife := 48.0
	return &domain.WarehouseBatch{
		ID:                7,
		ProductName:       "Whole Milk",
		CategoryType:      "Dairy",
		SubCategory:       "Milk",
		Quantity:          decimal.NewFromInt(24),
		Unit:              "liter",
		PreparationMethod: "Direct Open",
		ShelfLifeValue:    &shelfLife,
		ShelfLifeUnit:     "hours",
	}
}

func TestTransferService_Transfer(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	t.Run("creates_kitchen_batch_with_computed_expiry", func(t *testing.T) {
		service, m := newTransferService(t)
		service.WithClock(func() time.Time { return now })

		m.warehouse.EXPECT().FindByID(gomock.Any(), int64(7)).Return(milkSource(), nil)
		m.batchNums.EXPECT().Next(gomock.Any()).Return("BATCH-100001", nil)
		m.transfers.EXPECT().
			ExecuteTransfer(gomock.Any(), gomock.Any(), gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, batch *domain.KitchenBatch, record *domain.TransferRecord, sourceID int64, quantity decimal.Decimal) error {
				assert.True(t, quantity.Equal(decimal.NewFromInt(10)))
				assert.Equal(t, batch.BatchNumber, "BATCH-100001")
				require.NotNil(t, record.ExpiryDate)
				assert.True(t, record.ExpiryDate.Equal(*batch.CalculatedExpiry))
				return nil
			})

		batch, err := service.Transfer(context.Background(), domain.TransferInput{
			SourceID: 7,
			Quantity: decimal.NewFromInt(10),
			Unit:     "liter",
		})
		require.NoError(t, err)

		assert.Equal(t, "Whole Milk", batch.ProductName)
		assert.Equal(t, "BATCH-100001", batch.BatchNumber)
		assert.True(t, batch.OriginalQuantity.Equal(decimal.NewFromInt(10)))
		assert.True(t, batch.CurrentQuantity.Equal(decimal.NewFromInt(10)))
		assert.True(t, batch.ReservedQuantity.IsZero())
		assert.Equal(t, domain.BatchAvailable, batch.Status)
		assert.Equal(t, "Direct Open", batch.PreparationMethod)
		assert.Equal(t, domain.ExpiryComputed, batch.ExpirySource)
		require.NotNil(t, batch.CalculatedExpiry)
		assert.True(t, now.Add(48*time.Hour).Equal(*batch.CalculatedExpiry))
		require.NotNil(t, batch.WarehouseItemID)
		assert.Equal(t, int64(7), *batch.WarehouseItemID)
	})

	t.Run("input_shelf_life_overrides_source", func(t *testing.T) {
		service, m := newTransferService(t)
		service.WithClock(func() time.Time { return now })

		override := 2.0
		m.warehouse.EXPECT().FindByID(gomock.Any(), int64(7)).Return(milkSource(), nil)
		m.batchNums.EXPECT().Next(gomock.Any()).Return("BATCH-100002", nil)
		m.transfers.EXPECT().
			ExecuteTransfer(gomock.Any(), gomock.Any(), gomock.Any(), int64(7), gomock.Any()).
			Return(nil)

		batch, err := service.Transfer(context.Background(), domain.TransferInput{
			SourceID:       7,
			Quantity:       decimal.NewFromInt(5),
			Unit:           "liter",
			ShelfLifeValue: &override,
			ShelfLifeUnit:  "days",
		})
		require.NoError(t, err)
		require.NotNil(t, batch.CalculatedExpiry)
		assert.True(t, now.Add(2*24*time.Hour).Equal(*batch.CalculatedExpiry))
	})

	t.Run("validation_failure", func(t *testing.T) {
		service, _ := newTransferService(t)

		_, err := service.Transfer(context.Background(), domain.TransferInput{
			SourceID: 7,
			Quantity: decimal.Zero,
			Unit:     "liter",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("source_not_found", func(t *testing.T) {
		service, m := newTransferService(t)

		m.warehouse.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := service.Transfer(context.Background(), domain.TransferInput{
			SourceID: 99,
			Quantity: decimal.NewFromInt(1),
			Unit:     "liter",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("insufficient_source_stock", func(t *testing.T) {
		service, m := newTransferService(t)

		m.warehouse.EXPECT().FindByID(gomock.Any(), int64(7)).Return(milkSource(), nil)

		_, err := service.Transfer(context.Background(), domain.TransferInput{
			SourceID: 7,
			Quantity: decimal.NewFromInt(25),
			Unit:     "liter",
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientSourceStock)
	})

	t.Run("repository_failure_propagates", func(t *testing.T) {
		service, m := newTransferService(t)

		m.warehouse.EXPECT().FindByID(gomock.Any(), int64(7)).Return(milkSource(), nil)
		m.batchNums.EXPECT().Next(gomock.Any()).Return("BATCH-100003", nil)
		m.transfers.EXPECT().
			ExecuteTransfer(gomock.Any(), gomock.Any(), gomock.Any(), int64(7), gomock.Any()).
			Return(errors.New("deadlock detected"))

		_, err := service.Transfer(context.Background(), domain.TransferInput{
			SourceID: 7,
			Quantity: decimal.NewFromInt(10),
			Unit:     "liter",
		})
		assert.ErrorContains(t, err, "failed to execute transfer")
	})
}

func TestTransferService_FastTrackRestock(t *testing.T) {
	batchID := uuid.New()

	kitchenBatch := func() *domain.KitchenBatch {
		sourceID := int64(7)
		return &domain.KitchenBatch{
			ID:               batchID,
			WarehouseItemID:  &sourceID,
			ProductName:      "Whole Milk",
			BatchNumber:      "BATCH-100001",
			OriginalQuantity: decimal.NewFromInt(10),
			CurrentQuantity:  decimal.NewFromInt(4),
			ReservedQuantity: decimal.Zero,
			Unit:             "liter",
			Status:           domain.BatchAvailable,
		}
	}

	t.Run("tops_up_existing_batch", func(t *testing.T) {
		service, m := newTransferService(t)

		m.kitchen.EXPECT().FindByID(gomock.Any(), batchID).Return(kitchenBatch(), nil)
		m.warehouse.EXPECT().FindByID(gomock.Any(), int64(7)).Return(milkSource(), nil)
		m.transfers.EXPECT().
			ExecuteRestock(gomock.Any(), batchID, gomock.Any(), int64(7), gomock.Any()).
			Return(nil)

		batch, err := service.FastTrackRestock(context.Background(), batchID, decimal.NewFromInt(6))
		require.NoError(t, err)

		assert.True(t, batch.OriginalQuantity.Equal(decimal.NewFromInt(16)))
		assert.True(t, batch.CurrentQuantity.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, "BATCH-100001", batch.BatchNumber)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		service, _ := newTransferService(t)

		_, err := service.FastTrackRestock(context.Background(), batchID, decimal.Zero)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects_terminal_batch", func(t *testing.T) {
		service, m := newTransferService(t)

		expired := kitchenBatch()
		expired.Status = domain.BatchExpired
		m.kitchen.EXPECT().FindByID(gomock.Any(), batchID).Return(expired, nil)

		_, err := service.FastTrackRestock(context.Background(), batchID, decimal.NewFromInt(1))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects_batch_without_source", func(t *testing.T) {
		service, m := newTransferService(t)

		orphan := kitchenBatch()
		orphan.WarehouseItemID = nil
		m.kitchen.EXPECT().FindByID(gomock.Any(), batchID).Return(orphan, nil)

		_, err := service.FastTrackRestock(context.Background(), batchID, decimal.NewFromInt(1))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("insufficient_warehouse_stock", func(t *testing.T) {
		service, m := newTransferService(t)

		m.kitchen.EXPECT().FindByID(gomock.Any(), batchID).Return(kitchenBatch(), nil)
		m.warehouse.EXPECT().FindByID(gomock.Any(), int64(7)).Return(milkSource(), nil)

		_, err := service.FastTrackRestock(context.Background(), batchID, decimal.NewFromInt(100))
		assert.ErrorIs(t, err, domain.ErrInsufficientSourceStock)
	})
}

func TestTransferService_History(t *testing.T) {
	t.Run("applies_paging_defaults", func(t *testing.T) {
		service, m := newTransferService(t)

		m.transfers.EXPECT().
			History(gomock.Any(), ports.TransferHistoryParams{Limit: 50, Offset: 0}).
			Return([]domain.TransferRecord{{ProductName: "Whole Milk"}}, int64(1), nil)

		result, err := service.History(context.Background(), ports.TransferHistoryListParams{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 50, result.PageSize)
		assert.Equal(t, int64(1), result.TotalCount)
		assert.Equal(t, 1, result.TotalPages)
	})

	t.Run("offsets_later_pages", func(t *testing.T) {
		service, m := newTransferService(t)

		m.transfers.EXPECT().
			History(gomock.Any(), ports.TransferHistoryParams{Limit: 20, Offset: 40}).
			Return([]domain.TransferRecord{}, int64(45), nil)

		result, err := service.History(context.Background(), ports.TransferHistoryListParams{
			Page:     3,
			PageSize: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalPages)
	})
}
