// internal/handlers/export.go
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	redis_a "github.com/brewline/stockroom-be/internal/adapters/redis_adapter"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// ExportParams defines parameters for export operations
type ExportParams struct {
	Status       string     `json:"status"`
	CategoryType string     `json:"category_type"`
	DateFrom     *time.Time `json:"date_from"`
	DateTo       *time.Time `json:"date_to"`
}

// StockExportRow is one kitchen batch flattened for export.
type StockExportRow struct {
	BatchNumber       string     `json:"batch_number"`
	ProductName       string     `json:"product_name"`
	CategoryType      string     `json:"category_type"`
	SubCategory       string     `json:"sub_category"`
	OriginalQuantity  string     `json:"original_quantity"`
	CurrentQuantity   string     `json:"current_quantity"`
	ReservedQuantity  string     `json:"reserved_quantity"`
	Unit              string     `json:"unit"`
	PreparationMethod string     `json:"preparation_method"`
	Status            string     `json:"status"`
	CalculatedExpiry  *time.Time `json:"calculated_expiry,omitempty"`
	TransferredAt     time.Time  `json:"transferred_at"`
}

// ExportHandler handles export operations
type ExportHandler struct {
	db     ports.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(db ports.Database, cache ports.CacheRepository, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		db:     db,
		cache:  cache,
		logger: logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseExportParams(r)

	data, err := h.getStockData(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to retrieve stock data",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	excelData, err := h.generateExcelFile(data)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("kitchen_stock_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(excelData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(excelData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "excel export completed",
		slog.Int("total_rows", len(data)),
		slog.String("filename", filename))
}

// ExportJSON handles GET /api/v1/export/json
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseExportParams(r)

	cacheKey := redis_a.BuildKey(redis_a.PrefixExport, "json", h.cacheKeyFromParams(params))
	var cachedData []byte
	if err := h.cache.Get(ctx, cacheKey, &cachedData); err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.Header().Set("Content-Length", strconv.Itoa(len(cachedData)))

		if _, err := w.Write(cachedData); err != nil {
			h.logger.ErrorContext(ctx, "failed to write cached JSON response",
				slog.String("error", err.Error()))
		}
		return
	}

	data, err := h.getStockData(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to retrieve stock data",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	response := map[string]interface{}{
		"stock": data,
		"metadata": map[string]interface{}{
			"export_date": time.Now(),
			"total_items": len(data),
			"status":      params.Status,
			"category":    params.CategoryType,
		},
	}

	responseData, err := json.Marshal(response)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to marshal JSON response",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to generate JSON")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseData)))

	if _, err := w.Write(responseData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write JSON response",
			slog.String("error", err.Error()))
		return
	}

	// Cache the result asynchronously
	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := h.cache.SetWithTTL(cacheCtx, cacheKey, responseData, 5*time.Minute); err != nil {
			h.logger.WarnContext(cacheCtx, "failed to cache JSON export",
				slog.String("error", err.Error()))
		}
	}()

	h.logger.InfoContext(ctx, "json export completed",
		slog.Int("total_rows", len(data)))
}

func (h *ExportHandler) parseExportParams(r *http.Request) *ExportParams {
	params := &ExportParams{}

	params.Status = r.URL.Query().Get("status")
	params.CategoryType = r.URL.Query().Get("category")

	if from := r.URL.Query().Get("date_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			params.DateFrom = &t
		}
	}
	if to := r.URL.Query().Get("date_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			params.DateTo = &t
		}
	}

	return params
}

func (h *ExportHandler) getStockData(ctx context.Context, params *ExportParams) ([]StockExportRow, error) {
	query := `SELECT batch_number, product_name, category_type, COALESCE(sub_category, ''),
		original_quantity::text, current_quantity::text, reserved_quantity::text,
		unit, preparation_method, status, calculated_expiry, transferred_at
		FROM kitchen_stock WHERE 1=1`

	var args []any
	argIdx := 1

	if params.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, params.Status)
		argIdx++
	}
	if params.CategoryType != "" {
		query += fmt.Sprintf(" AND category_type = $%d", argIdx)
		args = append(args, params.CategoryType)
		argIdx++
	}
	if params.DateFrom != nil {
		query += fmt.Sprintf(" AND transferred_at >= $%d", argIdx)
		args = append(args, *params.DateFrom)
		argIdx++
	}
	if params.DateTo != nil {
		query += fmt.Sprintf(" AND transferred_at <= $%d", argIdx)
		args = append(args, *params.DateTo)
		argIdx++
	}

	query += " ORDER BY transferred_at DESC"

	rows, err := h.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query kitchen stock: %w", err)
	}
	defer rows.Close()

	var data []StockExportRow
	for rows.Next() {
		var row StockExportRow
		var expiry sql.NullTime
		if err := rows.Scan(
			&row.BatchNumber, &row.ProductName, &row.CategoryType, &row.SubCategory,
			&row.OriginalQuantity, &row.CurrentQuantity, &row.ReservedQuantity,
			&row.Unit, &row.PreparationMethod, &row.Status, &expiry, &row.TransferredAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stock row: %w", err)
		}
		if expiry.Valid {
			row.CalculatedExpiry = &expiry.Time
		}
		data = append(data, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock rows: %w", err)
	}

	return data, nil
}

func (h *ExportHandler) generateExcelFile(data []StockExportRow) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Kitchen Stock")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := []string{
		"Batch Number", "Product Name", "Category", "Sub-Category",
		"Original Qty", "Current Qty", "Reserved Qty", "Unit",
		"Preparation", "Status", "Expiry", "Transferred At",
	}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, item := range data {
		expiry := ""
		if item.CalculatedExpiry != nil {
			expiry = item.CalculatedExpiry.Format("2006-01-02 15:04")
		}
		values := []string{
			item.BatchNumber, item.ProductName, item.CategoryType, item.SubCategory,
			item.OriginalQuantity, item.CurrentQuantity, item.ReservedQuantity, item.Unit,
			item.PreparationMethod, item.Status, expiry,
			item.TransferredAt.Format("2006-01-02 15:04:05"),
		}
		dataRow := sheet.AddRow()
		for _, value := range values {
			cell := dataRow.AddCell()
			cell.Value = value
		}
	}

	for i := 1; i <= len(headers); i++ {
		sheet.SetColWidth(i, i, 18)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}

func (h *ExportHandler) cacheKeyFromParams(params *ExportParams) string {
	key := fmt.Sprintf("status_%s_cat_%s", params.Status, params.CategoryType)
	if params.DateFrom != nil {
		key += fmt.Sprintf("_from_%s", params.DateFrom.Format("20060102"))
	}
	if params.DateTo != nil {
		key += fmt.Sprintf("_to_%s", params.DateTo.Format("20060102"))
	}
	return key
}
