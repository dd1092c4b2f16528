// internal/handlers/kitchen_handler_test.go
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

	"github.com/google/uuid"
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

func TestKitchenHandler_Get(t *testing.T) {
	testBatch := helpers.CreateTestKitchenBatch()

	tests := []struct {
		name           string
		batchID        string
		setupMocks     func(*mocks.MockKitchenService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:    "successfully_retrieves_batch",
			batchID: testBatch.ID.String(),
			setupMocks: func(m *mocks.MockKitchenService) {
				m.EXPECT().
					GetBatch(gomock.Any(), testBatch.ID).
					Return(testBatch, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.KitchenBatch
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, testBatch.ID, response.ID)
				assert.Equal(t, testBatch.BatchNumber, response.BatchNumber)
			},
		},
		{
			name:           "invalid_uuid_format",
			batchID:        "not-a-uuid",
			setupMocks:     func(m *mocks.MockKitchenService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "Invalid kitchen batch ID", response["error"])
			},
		},
		{
			name:    "batch_not_found",
			batchID: uuid.New().String(),
			setupMocks: func(m *mocks.MockKitchenService) {
				m.EXPECT().
					GetBatch(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: kitchen batch", domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockKitchenService(ctrl)
			mockTransfers := mocks.NewMockTransferService(ctrl)
			logger := helpers.TestLogger()
			handler := handlers.NewKitchenHandler(mockService, mockTransfers, logger)

			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/kitchen/"+tt.batchID, nil)
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

func TestKitchenHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		setupMocks     func(*mocks.MockKitchenService)
		expectedStatus int
	}{
		{
			name:        "defaults_to_expiry_order",
			queryParams: map[string]string{},
			setupMocks: func(m *mocks.MockKitchenService) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, params ports.KitchenListParams) (*ports.KitchenListResult, error) {
						assert.Equal(t, "calculated_expiry", params.SortBy)
						assert.Equal(t, "asc", params.SortOrder)
						return &ports.KitchenListResult{Page: 1, PageSize: 50}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "filters_by_expiring_window",
			queryParams: map[string]string{
				"expiring_in": "48",
			},
			setupMocks: func(m *mocks.MockKitchenService) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, params ports.KitchenListParams) (*ports.KitchenListResult, error) {
						assert.Equal(t, 48, params.ExpiringInH)
						return &ports.KitchenListResult{Page: 1, PageSize: 50}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "filters_by_status",
			queryParams: map[string]string{
				"status": "expired",
			},
			setupMocks: func(m *mocks.MockKitchenService) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, params ports.KitchenListParams) (*ports.KitchenListResult, error) {
						assert.Equal(t, "expired", params.Status)
						return &ports.KitchenListResult{Page: 1, PageSize: 50}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "service_error",
			queryParams: map[string]string{},
			setupMocks: func(m *mocks.MockKitchenService) {
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

			mockService := mocks.NewMockKitchenService(ctrl)
			mockTransfers := mocks.NewMockTransferService(ctrl)
			logger := helpers.TestLogger()
			handler := handlers.NewKitchenHandler(mockService, mockTransfers, logger)

			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/kitchen", nil)
			q := req.URL.Query()
			for k, v := range tt.queryParams {
				q.Add(k, v)
			}
			req.URL.RawQuery = q.Encode()

			w := httptest.NewRecorder()

			handler.List(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestKitchenHandler_UpdateStatus(t *testing.T) {
	testID := uuid.New()

	tests := []struct {
		name           string
		batchID        string
		requestBody    interface{}
		setupMocks     func(*mocks.MockKitchenService)
		expectedStatus int
	}{
		{
			name:        "successfully_disposes_batch",
			batchID:     testID.String(),
			requestBody: handlers.UpdateBatchStatusRequest{Status: "disposed"},
			setupMocks: func(m *mocks.MockKitchenService) {
				m.EXPECT().
					UpdateStatus(gomock.Any(), testID, domain.BatchDisposed).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "rejects_unknown_status",
			batchID:     testID.String(),
			requestBody: handlers.UpdateBatchStatusRequest{Status: "vaporized"},
			setupMocks: func(m *mocks.MockKitchenService) {
				m.EXPECT().
					UpdateStatus(gomock.Any(), testID, domain.BatchStatus("vaporized")).
					Return(fmt.Errorf("%w: unknown status", domain.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid_uuid",
			batchID:        "nope",
			requestBody:    handlers.UpdateBatchStatusRequest{Status: "disposed"},
			setupMocks:     func(m *mocks.MockKitchenService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockKitchenService(ctrl)
			mockTransfers := mocks.NewMockTransferService(ctrl)
			logger := helpers.TestLogger()
			handler := handlers.NewKitchenHandler(mockService, mockTransfers, logger)

			tt.setupMocks(mockService)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("PATCH", "/api/v1/kitchen/"+tt.batchID+"/status", bytes.NewReader(body))
			req.SetPathValue("id", tt.batchID)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestKitchenHandler_FastTrack(t *testing.T) {
	testBatch := helpers.CreateTestKitchenBatch()

	tests := []struct {
		name           string
		batchID        string
		requestBody    interface{}
		setupMocks     func(*mocks.MockTransferService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:        "successfully_restocks_batch",
			batchID:     testBatch.ID.String(),
			requestBody: handlers.FastTrackRequest{Quantity: decimal.NewFromInt(5)},
			setupMocks: func(m *mocks.MockTransferService) {
				m.EXPECT().
					FastTrackRestock(gomock.Any(), testBatch.ID, decimal.NewFromInt(5)).
					Return(testBatch, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.KitchenBatch
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, testBatch.BatchNumber, response.BatchNumber)
			},
		},
		{
			name:        "insufficient_source_stock_maps_to_409",
			batchID:     testBatch.ID.String(),
			requestBody: handlers.FastTrackRequest{Quantity: decimal.NewFromInt(9999)},
			setupMocks: func(m *mocks.MockTransferService) {
				m.EXPECT().
					FastTrackRestock(gomock.Any(), testBatch.ID, gomock.Any()).
					Return(nil, fmt.Errorf("%w: requested 9999", domain.ErrInsufficientSourceStock))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "invalid_uuid",
			batchID:        "nope",
			requestBody:    handlers.FastTrackRequest{Quantity: decimal.NewFromInt(5)},
			setupMocks:     func(m *mocks.MockTransferService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockKitchenService(ctrl)
			mockTransfers := mocks.NewMockTransferService(ctrl)
			logger := helpers.TestLogger()
			handler := handlers.NewKitchenHandler(mockService, mockTransfers, logger)

			tt.setupMocks(mockTransfers)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/v1/kitchen/"+tt.batchID+"/restock", bytes.NewReader(body))
			req.SetPathValue("id", tt.batchID)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.FastTrack(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}
