// internal/handlers/pos.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// POSHandler serves the point-of-sale integration: availability checks,
// order reservations, and recipe management.
type POSHandler struct {
	availability ports.AvailabilityService
	reservations ports.ReservationService
	recipes      ports.RecipeService
	logger       *slog.Logger
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(availability ports.AvailabilityService, reservations ports.ReservationService, recipes ports.RecipeService, logger *slog.Logger) *POSHandler {
	return &POSHandler{
		availability: availability,
		reservations: reservations,
		recipes:      recipes,
		logger:       logger.With(slog.String("handler", "pos")),
	}
}

// CheckAvailability handles GET /api/v1/pos/availability
func (h *POSHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	variantID, err := strconv.ParseInt(r.URL.Query().Get("variant_id"), 10, 64)
	if err != nil || variantID <= 0 {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid variant_id")
		return
	}

	count := int64(1)
	if c := r.URL.Query().Get("count"); c != "" {
		count, err = strconv.ParseInt(c, 10, 64)
		if err != nil || count <= 0 {
			respondError(h.logger, w, http.StatusBadRequest, "Invalid count")
			return
		}
	}

	available, err := h.availability.VariantHasSufficientStock(ctx, variantID, count)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to check availability",
			slog.Int64("variant_id", variantID),
			slog.Int64("count", count),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"variant_id": variantID,
		"count":      count,
		"available":  available,
	})
}

// IngredientAvailability handles GET /api/v1/pos/availability/ingredients/{id}
func (h *POSHandler) IngredientAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid ingredient ID")
		return
	}

	available, err := h.availability.IngredientAvailability(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get ingredient availability",
			slog.Int64("ingredient_id", id),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"ingredient_id": id,
		"available":     available,
	})
}

// ReserveOrder handles POST /api/v1/pos/orders/{order_id}/reserve
func (h *POSHandler) ReserveOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(r.PathValue("order_id"), 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req ReserveOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.reservations.ReserveOrder(ctx, orderID, req.Lines); err != nil {
		h.logger.ErrorContext(ctx, "failed to reserve order",
			slog.Int64("order_id", orderID),
			slog.Int("lines", len(req.Lines)),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message":  "Order reserved successfully",
		"order_id": orderID,
	})
}

// FinalizeOrder handles POST /api/v1/pos/orders/{order_id}/finalize
func (h *POSHandler) FinalizeOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(r.PathValue("order_id"), 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := h.reservations.FinalizeOrder(ctx, orderID); err != nil {
		h.logger.ErrorContext(ctx, "failed to finalize order",
			slog.Int64("order_id", orderID),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message":  "Order finalized successfully",
		"order_id": orderID,
	})
}

// CancelOrder handles POST /api/v1/pos/orders/{order_id}/cancel
func (h *POSHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(r.PathValue("order_id"), 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := h.reservations.CancelOrder(ctx, orderID); err != nil {
		h.logger.ErrorContext(ctx, "failed to cancel order",
			slog.Int64("order_id", orderID),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message":  "Order cancelled successfully",
		"order_id": orderID,
	})
}

// SaveRecipeLine handles POST /api/v1/recipes
func (h *POSHandler) SaveRecipeLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var line domain.RecipeLine
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.recipes.SaveLine(ctx, &line); err != nil {
		h.logger.ErrorContext(ctx, "failed to save recipe line",
			slog.Int64("variant_id", line.VariantID),
			slog.Int64("ingredient_id", line.IngredientID),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, line)
}

// ListRecipes handles GET /api/v1/recipes
func (h *POSHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if variant := r.URL.Query().Get("variant_id"); variant != "" {
		variantID, err := strconv.ParseInt(variant, 10, 64)
		if err != nil {
			respondError(h.logger, w, http.StatusBadRequest, "Invalid variant_id")
			return
		}
		lines, err := h.recipes.LinesForVariant(ctx, variantID)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to list recipe lines",
				slog.Int64("variant_id", variantID),
				slog.String("error", err.Error()))
			respondDomainError(h.logger, w, err)
			return
		}
		respondJSON(h.logger, w, http.StatusOK, lines)
		return
	}

	lines, err := h.recipes.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list recipe lines",
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, lines)
}

// DeleteRecipeLine handles DELETE /api/v1/recipes/{id}
func (h *POSHandler) DeleteRecipeLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid recipe line ID")
		return
	}

	if err := h.recipes.DeleteLine(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete recipe line",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		respondDomainError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message": "Recipe line deleted successfully",
		"id":      id,
	})
}

// ReserveOrderRequest carries the cart lines to hold for an order
type ReserveOrderRequest struct {
	Lines []domain.OrderLine `json:"lines"`
}
