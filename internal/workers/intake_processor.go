// internal/workers/intake_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// IntakeProcessor imports warehouse deliveries from uploaded spreadsheets.
// Suppliers send delivery notes as xlsx; each data row becomes one warehouse
// batch.
type IntakeProcessor struct {
	warehouse ports.WarehouseService
	logger    *slog.Logger
}

// NewIntakeProcessor creates a new intake processor
func NewIntakeProcessor(warehouse ports.WarehouseService, logger *slog.Logger) *IntakeProcessor {
	return &IntakeProcessor{
		warehouse: warehouse,
		logger:    logger.With(slog.String("processor", "intake")),
	}
}

// ProcessIntake reads the spreadsheet and records each row as a delivery.
// Rows that fail validation are skipped and counted, not fatal: one bad line
// on a delivery note should not block the rest of the truck.
func (p *IntakeProcessor) ProcessIntake(ctx context.Context, t *asynq.Task) error {
	var payload StockIntakePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "processing intake file",
		slog.String("job_id", payload.JobID),
		slog.String("file_path", payload.FilePath))

	file, err := xlsx.OpenFile(payload.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open intake file: %w", err)
	}

	var imported, skipped int
	if len(file.Sheets) > 0 {
		sheet := file.Sheets[0]
		rowIdx := 0

		err = sheet.ForEachRow(func(r *xlsx.Row) error {
			// Skip header row
			if rowIdx == 0 {
				rowIdx++
				return nil
			}
			rowIdx++

			batch := p.parseRow(r)
			if batch == nil {
				return nil
			}
			if err := p.warehouse.Receive(ctx, batch); err != nil {
				skipped++
				p.logger.WarnContext(ctx, "skipped intake row",
					slog.Int("row", rowIdx),
					slog.String("product_name", batch.ProductName),
					slog.String("error", err.Error()))
				return nil
			}
			imported++
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to process intake rows: %w", err)
		}
	}

	// Clean up temp file
	if strings.HasPrefix(payload.FilePath, "/tmp/") {
		os.Remove(payload.FilePath)
	}

	p.logger.InfoContext(ctx, "intake processing completed",
		slog.String("job_id", payload.JobID),
		slog.Int("imported", imported),
		slog.Int("skipped", skipped))

	return nil
}

// parseRow maps the delivery note layout:
// A name, B category, C sub-category, D quantity, E unit, F preparation,
// G expiry date, H serving size, I shelf life value, J shelf life unit, K notes.
func (p *IntakeProcessor) parseRow(r *xlsx.Row) *domain.WarehouseBatch {
	get := func(i int) string {
		c := r.GetCell(i)
		if c == nil {
			return ""
		}
		return strings.TrimSpace(c.String())
	}

	name := get(0)
	if name == "" {
		return nil
	}

	quantity, err := decimal.NewFromString(get(3))
	if err != nil {
		quantity = decimal.Zero
	}

	batch := &domain.WarehouseBatch{
		ProductName:       name,
		CategoryType:      get(1),
		SubCategory:       get(2),
		Quantity:          quantity,
		Unit:              get(4),
		PreparationMethod: get(5),
		ShelfLifeUnit:     strings.ToLower(get(9)),
		Notes:             get(10),
	}

	if s := get(6); s != "" {
		if expiry, err := time.Parse("2006-01-02", s); err == nil {
			batch.HasExpiry = true
			batch.ExpiryDate = &expiry
		}
	}
	if s := get(7); s != "" {
		if serving, err := decimal.NewFromString(s); err == nil {
			batch.ServingSize = &serving
		}
	}
	if s := get(8); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			batch.ShelfLifeValue = &v
		}
	}

	return batch
}
