// internal/handlers/warehouse.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// WarehouseHandler handles warehouse ledger HTTP requests
type WarehouseHandler struct {
	service ports.WarehouseService
	logger  *slog.Logger
}

// NewWarehouseHandler creates a new warehouse handler
func NewWarehouseHandler(service ports.WarehouseService, logger *slog.Logger) *WarehouseHandler {
	return &WarehouseHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "warehouse")),
	}
}

// Receive handles POST /api/v1/warehouse
func (h *WarehouseHandler) Receive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ReceiveStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	batch := req.ToDomain()
	if err := h.service.Receive(ctx, batch); err != nil {
		h.logger.ErrorContext(ctx, "failed to receive warehouse stock",
			slog.String("product_name", req.ProductName),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, batch)
}

// Get handles GET /api/v1/warehouse/{id}
func (h *WarehouseHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid warehouse batch ID")
		return
	}

	batch, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get warehouse batch",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, batch)
}

// List handles GET /api/v1/warehouse
func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.List(ctx, h.parseListParams(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list warehouse stock",
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}

// Delete handles DELETE /api/v1/warehouse/{id}
func (h *WarehouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid warehouse batch ID")
		return
	}

	if err := h.service.Remove(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete warehouse batch",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message": "Warehouse batch deleted successfully",
		"id":      id,
	})
}

func (h *WarehouseHandler) parseListParams(r *http.Request) ports.WarehouseListParams {
	params := ports.WarehouseListParams{
		Page:      1,
		PageSize:  50,
		SortBy:    "created_at",
		SortOrder: "desc",
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 100 {
				params.PageSize = 100
			} else {
				params.PageSize = l
			}
		}
	}

	params.Search = r.URL.Query().Get("search")
	params.CategoryType = r.URL.Query().Get("category")
	params.Unit = r.URL.Query().Get("unit")

	if sortBy := r.URL.Query().Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}
	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}

// ReceiveStockRequest represents the request body for recording a delivery
type ReceiveStockRequest struct {
	ProductName       string           `json:"product_name"`
	CategoryType      string           `json:"category_type"`
	SubCategory       string           `json:"sub_category,omitempty"`
	Quantity          decimal.Decimal  `json:"quantity"`
	Unit              string           `json:"unit"`
	PreparationMethod string           `json:"preparation_method,omitempty"`
	ExpiryDate        *time.Time       `json:"expiry_date,omitempty"`
	ServingSize       *decimal.Decimal `json:"serving_size,omitempty"`
	ShelfLifeValue    *float64         `json:"shelf_life_value,omitempty"`
	ShelfLifeUnit     string           `json:"shelf_life_unit,omitempty"`
	Notes             string           `json:"notes,omitempty"`
}

// ToDomain converts the request to a domain model. Validation happens in the
// service so the response carries the same error kinds as every other path.
func (r *ReceiveStockRequest) ToDomain() *domain.WarehouseBatch {
	return &domain.WarehouseBatch{
		ProductName:       r.ProductName,
		CategoryType:      r.CategoryType,
		SubCategory:       r.SubCategory,
		Quantity:          r.Quantity,
		Unit:              r.Unit,
		PreparationMethod: r.PreparationMethod,
		HasExpiry:         r.ExpiryDate != nil,
		ExpiryDate:        r.ExpiryDate,
		ServingSize:       r.ServingSize,
		ShelfLifeValue:    r.ShelfLifeValue,
		ShelfLifeUnit:     r.ShelfLifeUnit,
		Notes:             r.Notes,
	}
}
