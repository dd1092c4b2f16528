// internal/handlers/kitchen.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// KitchenHandler handles kitchen ledger HTTP requests
type KitchenHandler struct {
	service   ports.KitchenService
	transfers ports.TransferService
	logger    *slog.Logger
}

// NewKitchenHandler creates a new kitchen handler
func NewKitchenHandler(service ports.KitchenService, transfers ports.TransferService, logger *slog.Logger) *KitchenHandler {
	return &KitchenHandler{
		service:   service,
		transfers: transfers,
		logger:    logger.With(slog.String("handler", "kitchen")),
	}
}

// Get handles GET /api/v1/kitchen/{id}
func (h *KitchenHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid kitchen batch ID")
		return
	}

	batch, err := h.service.GetBatch(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get kitchen batch",
			slog.String("id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, batch)
}

// List handles GET /api/v1/kitchen
func (h *KitchenHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.List(ctx, h.parseListParams(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list kitchen stock",
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}

// UpdateStatus handles PATCH /api/v1/kitchen/{id}/status
func (h *KitchenHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid kitchen batch ID")
		return
	}

	var req UpdateBatchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateStatus(ctx, id, domain.BatchStatus(req.Status)); err != nil {
		h.logger.ErrorContext(ctx, "failed to update batch status",
			slog.String("id", id.String()),
			slog.String("status", req.Status),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message": "Batch status updated successfully",
		"id":      id,
		"status":  req.Status,
	})
}

// FastTrack handles POST /api/v1/kitchen/{id}/restock
func (h *KitchenHandler) FastTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid kitchen batch ID")
		return
	}

	var req FastTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	batch, err := h.transfers.FastTrackRestock(ctx, id, req.Quantity)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to fast-track restock",
			slog.String("id", id.String()),
			slog.String("quantity", req.Quantity.String()),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, batch)
}

func (h *KitchenHandler) parseListParams(r *http.Request) ports.KitchenListParams {
	params := ports.KitchenListParams{
		Page:      1,
		PageSize:  50,
		SortBy:    "calculated_expiry",
		SortOrder: "asc",
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
	params.Status = r.URL.Query().Get("status")

	if hours := r.URL.Query().Get("expiring_in"); hours != "" {
		if hr, err := strconv.Atoi(hours); err == nil && hr > 0 {
			params.ExpiringInH = hr
		}
	}

	if sortBy := r.URL.Query().Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}
	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}

// UpdateBatchStatusRequest represents a manual batch status change
type UpdateBatchStatusRequest struct {
	Status string `json:"status"`
}

// FastTrackRequest represents a same-batch restock
type FastTrackRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}
