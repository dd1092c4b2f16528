package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/adapters/db"
	redis_a "github.com/brewline/stockroom-be/internal/adapters/redis_adapter"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// DashboardHandler serves aggregate stock views for the back office.
type DashboardHandler struct {
	db     *db.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db *db.Database, cache ports.CacheRepository, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		db:     db,
		cache:  cache,
		logger: logger.With(slog.String("handler", "dashboard")),
	}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cacheKey := redis_a.BuildKey(redis_a.PrefixDashboard, "main")
	var dashboard DashboardData

	err := h.cache.GetOrSet(ctx, cacheKey, &dashboard, func() (interface{}, error) {
		return h.loadDashboardData(ctx)
	}, 5*time.Minute)

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	respondJSON(h.logger, w, http.StatusOK, dashboard)
}

func (h *DashboardHandler) loadDashboardData(ctx context.Context) (*DashboardData, error) {
	dashboard := &DashboardData{
		Timestamp: time.Now(),
	}

	summaryQuery := `
		SELECT
			(SELECT COUNT(*) FROM warehouse_inventory) as warehouse_items,
			(SELECT COALESCE(SUM(quantity), 0) FROM warehouse_inventory) as warehouse_quantity,
			(SELECT COUNT(*) FROM kitchen_stock WHERE status = 'available') as available_batches,
			(SELECT COALESCE(SUM(current_quantity), 0) FROM kitchen_stock WHERE status = 'available') as kitchen_quantity,
			(SELECT COALESCE(SUM(reserved_quantity), 0) FROM kitchen_stock WHERE status = 'available') as reserved_quantity,
			(SELECT COUNT(*) FROM kitchen_stock WHERE status = 'expired') as expired_batches
	`

	err := h.db.QueryRow(ctx, summaryQuery).Scan(
		&dashboard.Summary.WarehouseItems,
		&dashboard.Summary.WarehouseQuantity,
		&dashboard.Summary.AvailableBatches,
		&dashboard.Summary.KitchenQuantity,
		&dashboard.Summary.ReservedQuantity,
		&dashboard.Summary.ExpiredBatches,
	)
	if err != nil {
		return nil, err
	}

	categoryQuery := `
		SELECT
			category_type,
			COUNT(*) as batches,
			COALESCE(SUM(current_quantity), 0) as quantity,
			COALESCE(SUM(reserved_quantity), 0) as reserved
		FROM kitchen_stock
		WHERE status = 'available'
		GROUP BY category_type
		ORDER BY batches DESC
		LIMIT 10
	`

	rows, err := h.db.Query(ctx, categoryQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cat CategoryBreakdown
		if err := rows.Scan(&cat.CategoryType, &cat.Batches, &cat.Quantity, &cat.Reserved); err != nil {
			continue
		}
		dashboard.CategoryBreakdown = append(dashboard.CategoryBreakdown, cat)
	}

	expiringQuery := `
		SELECT batch_number, product_name, current_quantity, unit, calculated_expiry
		FROM kitchen_stock
		WHERE status = 'available' AND calculated_expiry IS NOT NULL
			AND calculated_expiry < NOW() + INTERVAL '48 hours'
		ORDER BY calculated_expiry ASC
		LIMIT 20
	`

	expRows, err := h.db.Query(ctx, expiringQuery)
	if err == nil {
		defer expRows.Close()
		for expRows.Next() {
			var item ExpiringBatch
			if err := expRows.Scan(&item.BatchNumber, &item.ProductName, &item.Quantity, &item.Unit, &item.Expiry); err == nil {
				dashboard.ExpiringSoon = append(dashboard.ExpiringSoon, item)
			}
		}
	}

	transferQuery := `
		SELECT product_name, transfer_quantity, unit, transferred_at
		FROM transfer_history
		ORDER BY transferred_at DESC
		LIMIT 20
	`

	trRows, err := h.db.Query(ctx, transferQuery)
	if err == nil {
		defer trRows.Close()
		for trRows.Next() {
			var tr RecentTransfer
			if err := trRows.Scan(&tr.ProductName, &tr.Quantity, &tr.Unit, &tr.TransferredAt); err == nil {
				dashboard.RecentTransfers = append(dashboard.RecentTransfers, tr)
			}
		}
	}

	return dashboard, nil
}

// Type definitions

type DashboardData struct {
	Summary           DashboardSummary    `json:"summary"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	ExpiringSoon      []ExpiringBatch     `json:"expiring_soon"`
	RecentTransfers   []RecentTransfer    `json:"recent_transfers"`
	Timestamp         time.Time           `json:"timestamp"`
}

type DashboardSummary struct {
	WarehouseItems    int64           `json:"warehouse_items"`
	WarehouseQuantity decimal.Decimal `json:"warehouse_quantity"`
	AvailableBatches  int64           `json:"available_batches"`
	KitchenQuantity   decimal.Decimal `json:"kitchen_quantity"`
	ReservedQuantity  decimal.Decimal `json:"reserved_quantity"`
	ExpiredBatches    int64           `json:"expired_batches"`
}

type CategoryBreakdown struct {
	CategoryType string          `json:"category_type"`
	Batches      int             `json:"batches"`
	Quantity     decimal.Decimal `json:"quantity"`
	Reserved     decimal.Decimal `json:"reserved"`
}

type ExpiringBatch struct {
	BatchNumber string          `json:"batch_number"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Expiry      time.Time       `json:"expiry"`
}

type RecentTransfer struct {
	ProductName   string          `json:"product_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	TransferredAt time.Time       `json:"transferred_at"`
}
