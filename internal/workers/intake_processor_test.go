// internal/workers/intake_processor_test.go
package workers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/workers"
	"github.com/brewline/stockroom-be/test/helpers"
	"github.com/brewline/stockroom-be/test/mocks"
)

func intakeWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Intake")
	require.NoError(t, err)

	header := sheet.AddRow()
	for _, h := range []string{"Name", "Category", "Sub-Category", "Quantity", "Unit",
		"Preparation", "Expiry", "Serving Size", "Shelf Life", "Shelf Life Unit", "Notes"} {
		header.AddCell().SetString(h)
	}
	for _, cells := range rows {
		row := sheet.AddRow()
		for _, value := range cells {
			row.AddCell().SetString(value)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return buf.Bytes()
}

func TestIntakeProcessor_ProcessIntake(t *testing.T) {
	tests := []struct {
		name          string
		rows          [][]string
		setupMocks    func(*mocks.MockWarehouseService)
		expectedError bool
		errorContains string
	}{
		{
			name: "imports_delivery_rows",
			rows: [][]string{
				{"Whole Milk", "Dairy", "Milk", "24", "liter", "Direct Open", "", "0.25", "48", "hours", ""},
				{"Espresso Beans", "Coffee", "Beans", "5", "kg", "Grind", "2026-06-01", "", "2", "weeks", "single origin"},
			},
			setupMocks: func(warehouse *mocks.MockWarehouseService) {
				warehouse.EXPECT().
					Receive(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, batch *domain.WarehouseBatch) error {
						assert.Equal(t, "Whole Milk", batch.ProductName)
						assert.Equal(t, "Dairy", batch.CategoryType)
						assert.True(t, batch.Quantity.IntPart() == 24)
						require.NotNil(t, batch.ShelfLifeValue)
						assert.Equal(t, 48.0, *batch.ShelfLifeValue)
						assert.Equal(t, "hours", batch.ShelfLifeUnit)
						return nil
					})
				warehouse.EXPECT().
					Receive(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, batch *domain.WarehouseBatch) error {
						assert.Equal(t, "Espresso Beans", batch.ProductName)
						require.NotNil(t, batch.ExpiryDate)
						assert.Equal(t, "2026-06-01", batch.ExpiryDate.Format("2006-01-02"))
						assert.Equal(t, "single origin", batch.Notes)
						return nil
					})
			},
		},
		{
			name: "skips_rows_without_product_name",
			rows: [][]string{
				{"", "Dairy", "", "10", "liter", "", "", "", "", "", ""},
				{"Whole Milk", "Dairy", "", "10", "liter", "", "", "", "", "", ""},
			},
			setupMocks: func(warehouse *mocks.MockWarehouseService) {
				warehouse.EXPECT().Receive(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "bad_row_does_not_block_the_rest",
			rows: [][]string{
				{"Missing Unit", "Dairy", "", "10", "", "", "", "", "", "", ""},
				{"Whole Milk", "Dairy", "", "10", "liter", "", "", "", "", "", ""},
			},
			setupMocks: func(warehouse *mocks.MockWarehouseService) {
				warehouse.EXPECT().
					Receive(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, batch *domain.WarehouseBatch) error {
						if batch.Unit == "" {
							return domain.ErrValidation
						}
						return nil
					}).
					Times(2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockWarehouse := mocks.NewMockWarehouseService(ctrl)
			tt.setupMocks(mockWarehouse)

			processor := workers.NewIntakeProcessor(mockWarehouse, helpers.TestLogger())

			filePath := helpers.CreateTempFile(t, intakeWorkbook(t, tt.rows), ".xlsx")
			payloadBytes, err := json.Marshal(workers.StockIntakePayload{
				JobID:    uuid.New().String(),
				FilePath: filePath,
			})
			require.NoError(t, err)

			task := asynq.NewTask(workers.TypeStockIntake, payloadBytes)
			err = processor.ProcessIntake(context.Background(), task)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestIntakeProcessor_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := workers.NewIntakeProcessor(mocks.NewMockWarehouseService(ctrl), helpers.TestLogger())

	payloadBytes, err := json.Marshal(workers.StockIntakePayload{
		JobID:    uuid.New().String(),
		FilePath: "/nonexistent/intake.xlsx",
	})
	require.NoError(t, err)

	err = processor.ProcessIntake(context.Background(), asynq.NewTask(workers.TypeStockIntake, payloadBytes))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open intake file")
}
