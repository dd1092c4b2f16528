// internal/handlers/transfer.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// TransferHandler handles warehouse-to-kitchen transfer HTTP requests
type TransferHandler struct {
	service ports.TransferService
	logger  *slog.Logger
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(service ports.TransferService, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "transfer")),
	}
}

// Create handles POST /api/v1/transfers
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input domain.TransferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	batch, err := h.service.Transfer(ctx, input)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to execute transfer",
			slog.Int64("source_id", input.SourceID),
			slog.String("quantity", input.Quantity.String()),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, batch)
}

// History handles GET /api/v1/transfers/history
func (h *TransferHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.History(ctx, h.parseHistoryParams(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list transfer history",
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}

func (h *TransferHandler) parseHistoryParams(r *http.Request) ports.TransferHistoryListParams {
	params := ports.TransferHistoryListParams{
		Page:     1,
		PageSize: 50,
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

	if source := r.URL.Query().Get("warehouse_item_id"); source != "" {
		if id, err := strconv.ParseInt(source, 10, 64); err == nil {
			params.WarehouseItemID = &id
		}
	}

	return params
}
