// internal/handlers/export_test.go
package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/brewline/stockroom-be/internal/adapters/redis_adapter"
	"github.com/brewline/stockroom-be/internal/handlers"
	"github.com/brewline/stockroom-be/test/helpers"
	"github.com/brewline/stockroom-be/test/mocks"
)

// stockRows implements pgx.Rows over canned export rows.
type stockRows struct {
	data   []handlers.StockExportRow
	index  int
	closed bool
}

func (m *stockRows) Close()     { m.closed = true }
func (m *stockRows) Err() error { return nil }

func (m *stockRows) Next() bool {
	if m.index < len(m.data) {
		m.index++
		return true
	}
	return false
}

func (m *stockRows) Scan(dest ...interface{}) error {
	if m.index == 0 || m.index > len(m.data) {
		return pgx.ErrNoRows
	}
	row := m.data[m.index-1]

	*dest[0].(*string) = row.BatchNumber
	*dest[1].(*string) = row.ProductName
	*dest[2].(*string) = row.CategoryType
	*dest[3].(*string) = row.SubCategory
	*dest[4].(*string) = row.OriginalQuantity
	*dest[5].(*string) = row.CurrentQuantity
	*dest[6].(*string) = row.ReservedQuantity
	*dest[7].(*string) = row.Unit
	*dest[8].(*string) = row.PreparationMethod
	*dest[9].(*string) = row.Status

	expiry := dest[10].(*sql.NullTime)
	if row.CalculatedExpiry != nil {
		expiry.Valid = true
		expiry.Time = *row.CalculatedExpiry
	}
	*dest[11].(*time.Time) = row.TransferredAt
	return nil
}

func (m *stockRows) Values() ([]interface{}, error)                 { return nil, nil }
func (m *stockRows) RawValues() [][]byte                            { return nil }
func (m *stockRows) Conn() *pgx.Conn                                { return nil }
func (m *stockRows) FieldDescriptions() []pgconn.FieldDescription   { return []pgconn.FieldDescription{} }
func (m *stockRows) CommandTag() pgconn.CommandTag                  { return pgconn.CommandTag{} }

func createStockRows() pgx.Rows {
	expiry := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return &stockRows{
		data: []handlers.StockExportRow{
			{
				BatchNumber:       "BATCH-100001",
				ProductName:       "Whole Milk",
				CategoryType:      "Dairy",
				SubCategory:       "Milk",
				OriginalQuantity:  "10",
				CurrentQuantity:   "8",
				ReservedQuantity:  "2",
				Unit:              "liter",
				PreparationMethod: "Direct Open",
				Status:            "available",
				CalculatedExpiry:  &expiry,
				TransferredAt:     expiry.Add(-48 * time.Hour),
			},
		},
	}
}

func TestExportHandler_ExportJSON(t *testing.T) {
	t.Run("cache_miss_queries_database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mocks.NewMockDatabase(ctrl)
		mockCache := mocks.NewMockCacheRepository(ctrl)
		handler := handlers.NewExportHandler(mockDB, mockCache, helpers.TestLogger())

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(redis_a.ErrCacheMiss)
		mockDB.EXPECT().
			Query(gomock.Any(), gomock.Any()).
			Return(createStockRows(), nil)
		// The result is cached from a goroutine after the response is written.
		mockCache.EXPECT().
			SetWithTTL(gomock.Any(), gomock.Any(), gomock.Any(), 5*time.Minute).
			Return(nil).
			AnyTimes()

		req := httptest.NewRequest("GET", "/api/v1/export/json", nil)
		w := httptest.NewRecorder()

		handler.ExportJSON(w, req)

		resp := w.Result()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

		var response struct {
			Stock    []handlers.StockExportRow `json:"stock"`
			Metadata struct {
				TotalItems int `json:"total_items"`
			} `json:"metadata"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Stock, 1)
		assert.Equal(t, "BATCH-100001", response.Stock[0].BatchNumber)
		assert.Equal(t, 1, response.Metadata.TotalItems)
	})

	t.Run("cache_hit_skips_database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mocks.NewMockDatabase(ctrl)
		mockCache := mocks.NewMockCacheRepository(ctrl)
		handler := handlers.NewExportHandler(mockDB, mockCache, helpers.TestLogger())

		cached := []byte(`{"stock":[],"metadata":{"total_items":0}}`)
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx interface{}, key string, dest interface{}) error {
				*dest.(*[]byte) = cached
				return nil
			})

		req := httptest.NewRequest("GET", "/api/v1/export/json", nil)
		w := httptest.NewRecorder()

		handler.ExportJSON(w, req)

		resp := w.Result()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))
		assert.Equal(t, cached, w.Body.Bytes())
	})

	t.Run("filters_pass_through_to_query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mocks.NewMockDatabase(ctrl)
		mockCache := mocks.NewMockCacheRepository(ctrl)
		handler := handlers.NewExportHandler(mockDB, mockCache, helpers.TestLogger())

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(redis_a.ErrCacheMiss)
		mockDB.EXPECT().
			Query(gomock.Any(), gomock.Any(), "available", "Dairy").
			Return(createStockRows(), nil)
		mockCache.EXPECT().
			SetWithTTL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		req := httptest.NewRequest("GET", "/api/v1/export/json?status=available&category=Dairy", nil)
		w := httptest.NewRecorder()

		handler.ExportJSON(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestExportHandler_ExportExcel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDatabase(ctrl)
	mockCache := mocks.NewMockCacheRepository(ctrl)
	handler := handlers.NewExportHandler(mockDB, mockCache, helpers.TestLogger())

	mockDB.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		Return(createStockRows(), nil)

	req := httptest.NewRequest("GET", "/api/v1/export/excel", nil)
	w := httptest.NewRecorder()

	handler.ExportExcel(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "kitchen_stock_")
	assert.NotEmpty(t, w.Body.Bytes())
}
