// internal/handlers/warehouse_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
	"github.com/brewline/stockroom-be/internal/handlers"
	"github.com/brewline/stockroom-be/test/helpers"
	"github.com/brewline/stockroom-be/test/mocks"
)

func TestWarehouseHandler_Receive(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockWarehouseService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "successfully_records_delivery",
			requestBody: handlers.ReceiveStockRequest{
				ProductName:  "Whole Milk",
				CategoryType: "Dairy",
				Quantity:     decimal.NewFromInt(24),
				Unit:         "liter",
			},
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					Receive(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, batch *domain.WarehouseBatch) error {
						assert.Equal(t, "Whole Milk", batch.ProductName)
						assert.True(t, batch.Quantity.Equal(decimal.NewFromInt(24)))
						assert.False(t, batch.HasExpiry)
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.WarehouseBatch
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "Whole Milk", response.ProductName)
			},
		},
		{
			name:           "invalid_json_body",
			requestBody:    "not json",
			setupMocks:     func(m *mocks.MockWarehouseService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "Invalid request body", response["error"])
			},
		},
		{
			name: "validation_error_maps_to_400",
			requestBody: handlers.ReceiveStockRequest{
				ProductName: "Whole Milk",
			},
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					Receive(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: quantity must be positive", domain.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Contains(t, response["error"], "quantity must be positive")
			},
		},
		{
			name: "service_error",
			requestBody: handlers.ReceiveStockRequest{
				ProductName:  "Whole Milk",
				CategoryType: "Dairy",
				Quantity:     decimal.NewFromInt(24),
				Unit:         "liter",
			},
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					Receive(gomock.Any(), gomock.Any()).
					Return(errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockWarehouseService(ctrl)
			logger := helpers.TestLogger()
			handler := handlers.NewWarehouseHandler(mockService, logger)

			tt.setupMocks(mockService)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/v1/warehouse", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Receive(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestWarehouseHandler_Get(t *testing.T) {
	testBatch := helpers.CreateTestWarehouseBatch()

	tests := []struct {
		name           string
		batchID        string
		setupMocks     func(*mocks.MockWarehouseService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:    "successfully_retrieves_batch",
			batchID: "1",
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					GetByID(gomock.Any(), int64(1)).
					Return(testBatch, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.WarehouseBatch
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, testBatch.ID, response.ID)
				assert.Equal(t, testBatch.ProductName, response.ProductName)
			},
		},
		{
			name:           "invalid_id_format",
			batchID:        "not-a-number",
			setupMocks:     func(m *mocks.MockWarehouseService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "Invalid warehouse batch ID", response["error"])
			},
		},
		{
			name:    "batch_not_found",
			batchID: "999",
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					GetByID(gomock.Any(), int64(999)).
					Return(nil, fmt.Errorf("%w: warehouse batch 999", domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "service_error",
			batchID: "1",
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					GetByID(gomock.Any(), int64(1)).
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "internal error", response["error"])
			},
		},
		{
			name:    "store_outage_maps_to_503",
			batchID: "1",
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					GetByID(gomock.Any(), int64(1)).
					Return(nil, fmt.Errorf("failed to query warehouse batch: %w",
						fmt.Errorf("%w: dial tcp: connection refused", domain.ErrStoreUnavailable)))
			},
			expectedStatus: http.StatusServiceUnavailable,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "internal error", response["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockWarehouseService(ctrl)
			logger := helpers.TestLogger()
			handler := handlers.NewWarehouseHandler(mockService, logger)

			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/warehouse/"+tt.batchID, nil)
			req.SetPathValue("id", tt.batchID)
			w := httptest.NewRecorder()

			handler.Get(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestWarehouseHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		setupMocks     func(*mocks.MockWarehouseService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "successfully_lists_with_pagination",
			queryParams: map[string]string{
				"page":  "2",
				"limit": "10",
			},
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, params ports.WarehouseListParams) (*ports.WarehouseListResult, error) {
						assert.Equal(t, 2, params.Page)
						assert.Equal(t, 10, params.PageSize)
						return &ports.WarehouseListResult{
							Items:      []domain.WarehouseBatch{*helpers.CreateTestWarehouseBatch()},
							Page:       2,
							PageSize:   10,
							TotalCount: 11,
							TotalPages: 2,
						}, nil
					})
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response ports.WarehouseListResult
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Len(t, response.Items, 1)
				assert.Equal(t, int64(11), response.TotalCount)
			},
		},
		{
			name: "filters_by_category",
			queryParams: map[string]string{
				"category": "Dairy",
			},
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, params ports.WarehouseListParams) (*ports.WarehouseListResult, error) {
						assert.Equal(t, "Dairy", params.CategoryType)
						return &ports.WarehouseListResult{Page: 1, PageSize: 50}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "caps_limit_at_100",
			queryParams: map[string]string{
				"page":  "0",
				"limit": "500",
			},
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, params ports.WarehouseListParams) (*ports.WarehouseListResult, error) {
						assert.Equal(t, 1, params.Page)
						assert.Equal(t, 100, params.PageSize)
						return &ports.WarehouseListResult{Page: 1, PageSize: 100}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "service_error",
			queryParams: map[string]string{},
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockWarehouseService(ctrl)
			logger := helpers.TestLogger()
			handler := handlers.NewWarehouseHandler(mockService, logger)

			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/warehouse", nil)
			q := req.URL.Query()
			for k, v := range tt.queryParams {
				q.Add(k, v)
			}
			req.URL.RawQuery = q.Encode()

			w := httptest.NewRecorder()

			handler.List(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestWarehouseHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		batchID        string
		setupMocks     func(*mocks.MockWarehouseService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:    "successfully_deletes_batch",
			batchID: "1",
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					Remove(gomock.Any(), int64(1)).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]interface{}
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "Warehouse batch deleted successfully", response["message"])
			},
		},
		{
			name:           "invalid_id",
			batchID:        "abc",
			setupMocks:     func(m *mocks.MockWarehouseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "batch_not_found",
			batchID: "999",
			setupMocks: func(m *mocks.MockWarehouseService) {
				m.EXPECT().
					Remove(gomock.Any(), int64(999)).
					Return(fmt.Errorf("%w: warehouse batch 999", domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockWarehouseService(ctrl)
			logger := helpers.TestLogger()
			handler := handlers.NewWarehouseHandler(mockService, logger)

			tt.setupMocks(mockService)

			req := httptest.NewRequest("DELETE", "/api/v1/warehouse/"+tt.batchID, nil)
			req.SetPathValue("id", tt.batchID)
			w := httptest.NewRecorder()

			handler.Delete(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}
