//go:build integration
// +build integration

package db_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/brewline/stockroom-be/internal/adapters/db"
	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
	"github.com/brewline/stockroom-be/test/helpers"
)

type StockRepositorySuite struct {
	suite.Suite
	testDB       *helpers.TestDB
	warehouse    ports.WarehouseRepository
	kitchen      ports.KitchenRepository
	transfers    ports.TransferRepository
	reservations ports.ReservationRepository
	recipes      ports.RecipeRepository
	batchNums    ports.BatchNumberSource
	ctx          context.Context
}

func (s *StockRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	logger := helpers.TestLogger()
	s.warehouse = db.NewWarehouseRepository(s.testDB.Database, logger)
	s.kitchen = db.NewKitchenRepository(s.testDB.Database, logger)
	s.transfers = db.NewTransferRepository(s.testDB.Database, logger)
	s.reservations = db.NewReservationRepository(s.testDB.Database, logger)
	s.recipes = db.NewRecipeRepository(s.testDB.Database, logger)
	s.batchNums = db.NewBatchNumberSource(s.testDB.Database)
	s.ctx = context.Background()
}

func (s *StockRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

// saveSource persists a warehouse batch and returns it with its assigned id.
func (s *StockRepositorySuite) saveSource(overrides ...func(*domain.WarehouseBatch)) *domain.WarehouseBatch {
	batch := helpers.CreateTestWarehouseBatch(overrides...)
	batch.ID = 0
	s.Require().NoError(s.warehouse.Save(s.ctx, batch))
	s.Require().NotZero(batch.ID)
	return batch
}

// transferToKitchen executes a transfer and returns the resulting kitchen batch.
func (s *StockRepositorySuite) transferToKitchen(sourceID int64, quantity int64, overrides ...func(*domain.KitchenBatch)) *domain.KitchenBatch {
	number, err := s.batchNums.Next(s.ctx)
	s.Require().NoError(err)

	qty := decimal.NewFromInt(quantity)
	batch := helpers.CreateTestKitchenBatch(func(b *domain.KitchenBatch) {
		b.WarehouseItemID = &sourceID
		b.BatchNumber = number
		b.OriginalQuantity = qty
		b.CurrentQuantity = qty
	})
	for _, override := range overrides {
		override(batch)
	}

	record := &domain.TransferRecord{
		WarehouseItemID:   &sourceID,
		ProductName:       batch.ProductName,
		Quantity:          qty,
		Unit:              batch.Unit,
		PreparationMethod: batch.PreparationMethod,
		ExpiryDate:        batch.CalculatedExpiry,
		TransferredAt:     batch.TransferredAt,
	}

	s.Require().NoError(s.transfers.ExecuteTransfer(s.ctx, batch, record, sourceID, qty))
	return batch
}

func (s *StockRepositorySuite) TestWarehouseSaveAndFind() {
	batch := s.saveSource()

	found, err := s.warehouse.FindByID(s.ctx, batch.ID)
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal("Whole Milk", found.ProductName)
	s.True(batch.Quantity.Equal(found.Quantity))

	missing, err := s.warehouse.FindByID(s.ctx, batch.ID+1000)
	s.NoError(err)
	s.Nil(missing)
}

func (s *StockRepositorySuite) TestWarehouseDelete() {
	batch := s.saveSource()

	deleted, err := s.warehouse.Delete(s.ctx, batch.ID)
	s.NoError(err)
	s.True(deleted)

	deleted, err = s.warehouse.Delete(s.ctx, batch.ID)
	s.NoError(err)
	s.False(deleted)
}

func (s *StockRepositorySuite) TestWarehouseFindAll_Filtering() {
	s.saveSource()
	s.saveSource(func(b *domain.WarehouseBatch) {
		b.ProductName = "Espresso Beans"
		b.CategoryType = "Coffee"
		b.Unit = "kg"
	})

	items, totalCount, err := s.warehouse.FindAll(s.ctx, ports.WarehouseQueryParams{
		CategoryType: "Dairy",
		Limit:        10,
	})
	s.NoError(err)
	s.Len(items, 1)
	s.Equal(int64(1), totalCount)
	s.Equal("Whole Milk", items[0].ProductName)

	items, totalCount, err = s.warehouse.FindAll(s.ctx, ports.WarehouseQueryParams{
		Search: "espresso",
		Limit:  10,
	})
	s.NoError(err)
	s.Len(items, 1)
	s.Equal(int64(1), totalCount)
}

func (s *StockRepositorySuite) TestExecuteTransfer() {
	source := s.saveSource()
	batch := s.transferToKitchen(source.ID, 10)

	// The warehouse row was decremented.
	remaining, err := s.warehouse.FindByID(s.ctx, source.ID)
	s.NoError(err)
	s.Require().NotNil(remaining)
	s.True(remaining.Quantity.Equal(decimal.NewFromInt(14)))

	// The kitchen batch landed intact.
	saved, err := s.kitchen.FindByID(s.ctx, batch.ID)
	s.NoError(err)
	s.Require().NotNil(saved)
	helpers.CompareKitchenBatches(s.T(), batch, saved)

	// The audit record was written.
	records, totalCount, err := s.transfers.History(s.ctx, ports.TransferHistoryParams{Limit: 10})
	s.NoError(err)
	s.Equal(int64(1), totalCount)
	s.Require().Len(records, 1)
	s.True(records[0].Quantity.Equal(decimal.NewFromInt(10)))
}

func (s *StockRepositorySuite) TestExecuteTransfer_DrainsSourceRow() {
	source := s.saveSource()
	s.transferToKitchen(source.ID, 24)

	// A fully drained warehouse row is removed.
	remaining, err := s.warehouse.FindByID(s.ctx, source.ID)
	s.NoError(err)
	s.Nil(remaining)
}

func (s *StockRepositorySuite) TestExecuteTransfer_InsufficientSource() {
	source := s.saveSource()

	number, err := s.batchNums.Next(s.ctx)
	s.Require().NoError(err)

	qty := decimal.NewFromInt(100)
	batch := helpers.CreateTestKitchenBatch(func(b *domain.KitchenBatch) {
		b.WarehouseItemID = &source.ID
		b.BatchNumber = number
		b.OriginalQuantity = qty
		b.CurrentQuantity = qty
	})
	record := &domain.TransferRecord{
		WarehouseItemID: &source.ID,
		ProductName:     batch.ProductName,
		Quantity:        qty,
		Unit:            batch.Unit,
		TransferredAt:   batch.TransferredAt,
	}

	err = s.transfers.ExecuteTransfer(s.ctx, batch, record, source.ID, qty)
	s.ErrorIs(err, domain.ErrInsufficientSourceStock)

	// Nothing landed: no kitchen batch, no history, source untouched.
	saved, err := s.kitchen.FindByID(s.ctx, batch.ID)
	s.NoError(err)
	s.Nil(saved)

	_, totalCount, err := s.transfers.History(s.ctx, ports.TransferHistoryParams{Limit: 10})
	s.NoError(err)
	s.Equal(int64(0), totalCount)

	remaining, err := s.warehouse.FindByID(s.ctx, source.ID)
	s.NoError(err)
	s.Require().NotNil(remaining)
	s.True(remaining.Quantity.Equal(decimal.NewFromInt(24)))
}

func (s *StockRepositorySuite) TestExecuteRestock() {
	source := s.saveSource()
	batch := s.transferToKitchen(source.ID, 10)

	record := &domain.TransferRecord{
		WarehouseItemID: &source.ID,
		ProductName:     batch.ProductName,
		Quantity:        decimal.NewFromInt(5),
		Unit:            batch.Unit,
		TransferredAt:   time.Now(),
	}
	s.Require().NoError(s.transfers.ExecuteRestock(s.ctx, batch.ID, record, source.ID, decimal.NewFromInt(5)))

	restocked, err := s.kitchen.FindByID(s.ctx, batch.ID)
	s.NoError(err)
	s.Require().NotNil(restocked)
	s.True(restocked.OriginalQuantity.Equal(decimal.NewFromInt(15)))
	s.True(restocked.CurrentQuantity.Equal(decimal.NewFromInt(15)))

	remaining, err := s.warehouse.FindByID(s.ctx, source.ID)
	s.NoError(err)
	s.Require().NotNil(remaining)
	s.True(remaining.Quantity.Equal(decimal.NewFromInt(9)))
}

func (s *StockRepositorySuite) TestReservationLifecycle() {
	source := s.saveSource()
	batch := s.transferToKitchen(source.ID, 10)

	// Reserve 4 against the ingredient.
	err := s.reservations.ReserveLine(s.ctx, 9001, source.ID, decimal.NewFromInt(4))
	s.NoError(err)

	held, err := s.kitchen.FindByID(s.ctx, batch.ID)
	s.NoError(err)
	s.True(held.ReservedQuantity.Equal(decimal.NewFromInt(4)))
	s.True(held.CurrentQuantity.Equal(decimal.NewFromInt(10)))

	// Finalize converts the hold into a deduction.
	s.NoError(s.reservations.FinalizeOrder(s.ctx, 9001))

	finalized, err := s.kitchen.FindByID(s.ctx, batch.ID)
	s.NoError(err)
	s.True(finalized.ReservedQuantity.IsZero())
	s.True(finalized.CurrentQuantity.Equal(decimal.NewFromInt(6)))

	// Payment retries are safe.
	s.NoError(s.reservations.FinalizeOrder(s.ctx, 9001))

	again, err := s.kitchen.FindByID(s.ctx, batch.ID)
	s.NoError(err)
	s.True(again.CurrentQuantity.Equal(decimal.NewFromInt(6)))
}

func (s *StockRepositorySuite) TestReservationRelease() {
	source := s.saveSource()
	batch := s.transferToKitchen(source.ID, 10)

	s.NoError(s.reservations.ReserveLine(s.ctx, 9001, source.ID, decimal.NewFromInt(4)))
	s.NoError(s.reservations.ReleaseOrder(s.ctx, 9001))

	released, err := s.kitchen.FindByID(s.ctx, batch.ID)
	s.NoError(err)
	s.True(released.ReservedQuantity.IsZero())
	s.True(released.CurrentQuantity.Equal(decimal.NewFromInt(10)))

	// Cancelling an order with no holds is a no-op.
	s.NoError(s.reservations.ReleaseOrder(s.ctx, 9002))
}

func (s *StockRepositorySuite) TestReserveLine_InsufficientStock() {
	source := s.saveSource()
	batch := s.transferToKitchen(source.ID, 10)

	err := s.reservations.ReserveLine(s.ctx, 9001, source.ID, decimal.NewFromInt(11))
	s.ErrorIs(err, domain.ErrInsufficientStock)

	// Nothing was held.
	untouched, err := s.kitchen.FindByID(s.ctx, batch.ID)
	s.NoError(err)
	s.True(untouched.ReservedQuantity.IsZero())
}

func (s *StockRepositorySuite) TestReserveLine_ConcurrentNoOversell() {
	source := s.saveSource(func(b *domain.WarehouseBatch) {
		b.Quantity = decimal.NewFromInt(100)
	})
	batch := s.transferToKitchen(source.ID, 10)

	// Eight orders race for 3 units each against 10 available. Only three
	// fit; the rest must fail without leaving a partial hold behind.
	const orders = 8
	per := decimal.NewFromInt(3)

	var wg sync.WaitGroup
	errs := make([]error, orders)
	for i := 0; i < orders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.reservations.ReserveLine(s.ctx, int64(9100+i), source.ID, per)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.True(errors.Is(err, domain.ErrInsufficientStock),
			"losing orders fail with insufficient stock, got %v", err)
	}
	s.Equal(3, succeeded)

	held, err := s.kitchen.FindByID(s.ctx, batch.ID)
	s.NoError(err)
	s.True(held.ReservedQuantity.Equal(decimal.NewFromInt(9)),
		"reserved %s", held.ReservedQuantity)
	s.True(held.ReservedQuantity.LessThanOrEqual(held.CurrentQuantity))
}

func (s *StockRepositorySuite) TestReserveLine_SpreadsAcrossBatchesFEFO() {
	source := s.saveSource(func(b *domain.WarehouseBatch) {
		b.Quantity = decimal.NewFromInt(100)
	})

	soon := time.Now().Add(12 * time.Hour)
	later := time.Now().Add(72 * time.Hour)
	expiresSoon := s.transferToKitchen(source.ID, 5, func(b *domain.KitchenBatch) {
		b.CalculatedExpiry = &soon
	})
	expiresLater := s.transferToKitchen(source.ID, 5, func(b *domain.KitchenBatch) {
		b.CalculatedExpiry = &later
	})

	s.NoError(s.reservations.ReserveLine(s.ctx, 9001, source.ID, decimal.NewFromInt(7)))

	first, err := s.kitchen.FindByID(s.ctx, expiresSoon.ID)
	s.NoError(err)
	s.True(first.ReservedQuantity.Equal(decimal.NewFromInt(5)),
		"earliest expiry drains first, reserved %s", first.ReservedQuantity)

	second, err := s.kitchen.FindByID(s.ctx, expiresLater.ID)
	s.NoError(err)
	s.True(second.ReservedQuantity.Equal(decimal.NewFromInt(2)))
}

func (s *StockRepositorySuite) TestMarkExpired() {
	source := s.saveSource(func(b *domain.WarehouseBatch) {
		b.Quantity = decimal.NewFromInt(100)
	})

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(48 * time.Hour)
	expired := s.transferToKitchen(source.ID, 5, func(b *domain.KitchenBatch) {
		b.CalculatedExpiry = &past
	})
	fresh := s.transferToKitchen(source.ID, 5, func(b *domain.KitchenBatch) {
		b.CalculatedExpiry = &future
	})

	ids, err := s.kitchen.MarkExpired(s.ctx, time.Now())
	s.NoError(err)
	s.Require().Len(ids, 1)
	s.Equal(expired.ID, ids[0])

	// Expired stock drops out of the availability sum.
	available, err := s.kitchen.AvailableForIngredient(s.ctx, source.ID)
	s.NoError(err)
	s.True(available.Equal(decimal.NewFromInt(5)))

	flipped, err := s.kitchen.FindByID(s.ctx, expired.ID)
	s.NoError(err)
	s.Equal(domain.BatchExpired, flipped.Status)

	untouched, err := s.kitchen.FindByID(s.ctx, fresh.ID)
	s.NoError(err)
	s.Equal(domain.BatchAvailable, untouched.Status)
}

func (s *StockRepositorySuite) TestKitchenAdjust_GuardsInvariant() {
	source := s.saveSource()
	batch := s.transferToKitchen(source.ID, 10)

	// Reserving more than current must fail atomically.
	err := s.kitchen.Adjust(s.ctx, batch.ID, decimal.Zero, decimal.NewFromInt(11))
	s.ErrorIs(err, domain.ErrInvariantViolation)

	// A valid hold goes through.
	s.NoError(s.kitchen.Adjust(s.ctx, batch.ID, decimal.Zero, decimal.NewFromInt(3)))

	adjusted, err := s.kitchen.FindByID(s.ctx, batch.ID)
	s.NoError(err)
	s.True(adjusted.ReservedQuantity.Equal(decimal.NewFromInt(3)))
}

func (s *StockRepositorySuite) TestRecipeUpsert() {
	line := helpers.CreateTestRecipeLine(func(l *domain.RecipeLine) { l.ID = 0 })
	s.NoError(s.recipes.Save(s.ctx, line))

	// Saving the same variant/ingredient pair updates in place.
	line.RequiredQuantity = decimal.RequireFromString("0.3")
	s.NoError(s.recipes.Save(s.ctx, line))

	lines, err := s.recipes.FindByVariant(s.ctx, line.VariantID)
	s.NoError(err)
	s.Require().Len(lines, 1)
	s.True(lines[0].RequiredQuantity.Equal(decimal.RequireFromString("0.3")))
}

func (s *StockRepositorySuite) TestBatchNumberSequence() {
	first, err := s.batchNums.Next(s.ctx)
	s.NoError(err)
	second, err := s.batchNums.Next(s.ctx)
	s.NoError(err)

	s.True(strings.HasPrefix(first, "BATCH-"))
	s.True(strings.HasPrefix(second, "BATCH-"))
	s.NotEqual(first, second)
}

func (s *StockRepositorySuite) TestBatchNumberSequence_GrowsPastSixDigits() {
	// Exhausting the six-digit range widens the number instead of wrapping
	// back into values already used as batch numbers.
	_, err := s.testDB.PgxPool.Exec(s.ctx, `SELECT setval('kitchen_batch_number_seq', 999999)`)
	s.Require().NoError(err)

	next, err := s.batchNums.Next(s.ctx)
	s.NoError(err)
	s.Equal("BATCH-1000000", next)

	after, err := s.batchNums.Next(s.ctx)
	s.NoError(err)
	s.Equal("BATCH-1000001", after)
}

func (s *StockRepositorySuite) TestStaleOrders() {
	source := s.saveSource()
	s.transferToKitchen(source.ID, 10)

	s.NoError(s.reservations.ReserveLine(s.ctx, 9001, source.ID, decimal.NewFromInt(2)))

	// A cutoff in the future catches the hold just taken.
	stale, err := s.reservations.StaleOrders(s.ctx, time.Now().Add(time.Minute))
	s.NoError(err)
	s.Contains(stale, int64(9001))

	// A cutoff in the past catches nothing.
	stale, err = s.reservations.StaleOrders(s.ctx, time.Now().Add(-time.Hour))
	s.NoError(err)
	s.Empty(stale)
}

func TestStockRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(StockRepositorySuite))
}
