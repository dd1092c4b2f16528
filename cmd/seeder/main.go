package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"
)

// WarehouseRow is one delivery-note line destined for warehouse_inventory.
type WarehouseRow struct {
	ProductName       string
	CategoryType      string
	SubCategory       string
	Quantity          decimal.Decimal
	Unit              string
	PreparationMethod string
	ExpiryDate        *time.Time
	ServingSize       *decimal.Decimal
	ShelfLifeValue    *float64
	ShelfLifeUnit     string
	Notes             string
}

// RecipeRow is one variant-to-ingredient mapping destined for recipe_lines.
type RecipeRow struct {
	VariantID        int64
	IngredientID     int64
	RequiredQuantity decimal.Decimal
	Unit             string
}

// SpreadsheetLoader reads seed workbooks into typed rows.
type SpreadsheetLoader struct {
	logger *slog.Logger
}

func NewSpreadsheetLoader(logger *slog.Logger) *SpreadsheetLoader {
	return &SpreadsheetLoader{logger: logger}
}

func cellValue(r *xlsx.Row, i int) string {
	c := r.GetCell(i)
	if c == nil {
		return ""
	}
	if s, err := c.FormattedValue(); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(c.String())
}

// LoadWarehouseRows reads a delivery-note workbook. Layout:
// A name, B category, C sub-category, D quantity, E unit, F preparation,
// G expiry date, H serving size, I shelf life value, J shelf life unit, K notes.
func (l *SpreadsheetLoader) LoadWarehouseRows(path string) ([]WarehouseRow, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in %s", path)
	}

	var rows []WarehouseRow
	rowIdx := 0
	err = file.Sheets[0].ForEachRow(func(r *xlsx.Row) error {
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		name := cellValue(r, 0)
		if name == "" {
			return nil
		}

		quantity, err := decimal.NewFromString(cellValue(r, 3))
		if err != nil {
			l.logger.Warn("skipping row with bad quantity",
				slog.Int("row", rowIdx),
				slog.String("product_name", name))
			return nil
		}

		row := WarehouseRow{
			ProductName:       name,
			CategoryType:      cellValue(r, 1),
			SubCategory:       cellValue(r, 2),
			Quantity:          quantity,
			Unit:              cellValue(r, 4),
			PreparationMethod: cellValue(r, 5),
			ShelfLifeUnit:     strings.ToLower(cellValue(r, 9)),
			Notes:             cellValue(r, 10),
		}
		if row.PreparationMethod == "" {
			row.PreparationMethod = "Direct Open"
		}

		if s := cellValue(r, 6); s != "" {
			if expiry, err := time.Parse("2006-01-02", s); err == nil {
				row.ExpiryDate = &expiry
			}
		}
		if s := cellValue(r, 7); s != "" {
			if serving, err := decimal.NewFromString(s); err == nil {
				row.ServingSize = &serving
			}
		}
		if s := cellValue(r, 8); s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				row.ShelfLifeValue = &v
			}
		}

		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	l.logger.Info("loaded warehouse rows", slog.Int("count", len(rows)))
	return rows, nil
}

// LoadRecipeRows reads a recipe workbook. Layout:
// A variant id, B ingredient id, C required quantity, D unit.
func (l *SpreadsheetLoader) LoadRecipeRows(path string) ([]RecipeRow, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in %s", path)
	}

	var rows []RecipeRow
	rowIdx := 0
	err = file.Sheets[0].ForEachRow(func(r *xlsx.Row) error {
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		variantID, err := strconv.ParseInt(cellValue(r, 0), 10, 64)
		if err != nil || variantID == 0 {
			return nil
		}
		ingredientID, err := strconv.ParseInt(cellValue(r, 1), 10, 64)
		if err != nil || ingredientID == 0 {
			return nil
		}
		quantity, err := decimal.NewFromString(cellValue(r, 2))
		if err != nil || !quantity.IsPositive() {
			l.logger.Warn("skipping recipe row with bad quantity",
				slog.Int("row", rowIdx),
				slog.Int64("variant_id", variantID))
			return nil
		}

		rows = append(rows, RecipeRow{
			VariantID:        variantID,
			IngredientID:     ingredientID,
			RequiredQuantity: quantity,
			Unit:             cellValue(r, 3),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	l.logger.Info("loaded recipe rows", slog.Int("count", len(rows)))
	return rows, nil
}

// SaveWarehouseRows batch-inserts warehouse rows.
func SaveWarehouseRows(ctx context.Context, db *pgxpool.Pool, rows []WarehouseRow, logger *slog.Logger) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(`
			INSERT INTO warehouse_inventory (
				product_name, category_type, sub_category, quantity, unit,
				preparation_method, has_expiry, expiry_date, serving_size,
				shelf_life_value, shelf_life_unit, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			row.ProductName, row.CategoryType, nullable(row.SubCategory),
			row.Quantity, row.Unit, row.PreparationMethod,
			row.ExpiryDate != nil, row.ExpiryDate, row.ServingSize,
			row.ShelfLifeValue, nullable(row.ShelfLifeUnit), nullable(row.Notes),
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range rows {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert warehouse row: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info("saved warehouse rows", slog.Int("count", len(rows)))
	return nil
}

// SaveRecipeRows batch-upserts recipe rows.
func SaveRecipeRows(ctx context.Context, db *pgxpool.Pool, rows []RecipeRow, logger *slog.Logger) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(`
			INSERT INTO recipe_lines (variant_id, ingredient_id, required_quantity, unit)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (variant_id, ingredient_id)
			DO UPDATE SET required_quantity = EXCLUDED.required_quantity, unit = EXCLUDED.unit`,
			row.VariantID, row.IngredientID, row.RequiredQuantity, row.Unit,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range rows {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert recipe row: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info("saved recipe rows", slog.Int("count", len(rows)))
	return nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func main() {
	var (
		stockDir    = flag.String("stock", "./seed/stock", "Directory containing delivery-note workbooks")
		recipesFile = flag.String("recipes", "./seed/recipes.xlsx", "Workbook with recipe lines")
		stateFile   = flag.String("state", "./.seed_state.json", "State file for tracking progress")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun      = flag.Bool("dry-run", false, "Preview changes without modifying database")
		force       = flag.Bool("force", false, "Reprocess all workbooks")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "stockroom"),
		getEnv("DB_PASSWORD", "stockroom_dev_2026"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "stockroom"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	var db *pgxpool.Pool
	var err error
	if !*dryRun {
		db, err = pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
	}

	loader := NewSpreadsheetLoader(logger)

	// Load state
	type SeederState struct {
		ProcessedFiles []string  `json:"processed_files"`
		ProcessedCount int       `json:"processed_count"`
		LastUpdate     time.Time `json:"last_update"`
	}

	var state SeederState
	if !*force {
		if stateData, err := os.ReadFile(*stateFile); err == nil {
			json.Unmarshal(stateData, &state)
		}
	}

	workbooks, err := filepath.Glob(filepath.Join(*stockDir, "*.xlsx"))
	if err != nil {
		logger.Error("failed to find workbooks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	totalProcessed := 0
	totalRows := 0
	var failedFiles []string

	for i, workbook := range workbooks {
		name := filepath.Base(workbook)

		fmt.Printf("PROGRESS: Processing %d/%d: %s\n", i+1, len(workbooks), name)

		if !*force {
			processed := false
			for _, done := range state.ProcessedFiles {
				if done == name {
					processed = true
					break
				}
			}
			if processed {
				logger.Info("skipping already processed workbook", slog.String("file", name))
				continue
			}
		}

		rows, err := loader.LoadWarehouseRows(workbook)
		if err != nil {
			logger.Error("failed to load workbook",
				slog.String("file", name),
				slog.String("error", err.Error()))
			failedFiles = append(failedFiles, name)
			continue
		}

		if !*dryRun {
			if err := SaveWarehouseRows(ctx, db, rows, logger); err != nil {
				logger.Error("failed to save workbook",
					slog.String("file", name),
					slog.String("error", err.Error()))
				failedFiles = append(failedFiles, name)
				continue
			}
		}

		fmt.Printf("SUCCESS: Processed %s - %d rows\n", name, len(rows))
		totalProcessed++
		totalRows += len(rows)

		state.ProcessedFiles = append(state.ProcessedFiles, name)
		state.ProcessedCount = len(state.ProcessedFiles)
		state.LastUpdate = time.Now()

		if !*dryRun && i%10 == 0 {
			stateData, _ := json.MarshalIndent(state, "", "  ")
			os.WriteFile(*stateFile, stateData, 0644)
		}
	}

	// Recipes are idempotent upserts, so they run every time.
	if _, err := os.Stat(*recipesFile); err == nil {
		recipes, err := loader.LoadRecipeRows(*recipesFile)
		if err != nil {
			logger.Error("failed to load recipes", slog.String("error", err.Error()))
		} else if !*dryRun {
			if err := SaveRecipeRows(ctx, db, recipes, logger); err != nil {
				logger.Error("failed to save recipes", slog.String("error", err.Error()))
			}
		}
	}

	if !*dryRun {
		stateData, _ := json.MarshalIndent(state, "", "  ")
		os.WriteFile(*stateFile, stateData, 0644)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING OPERATION SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Workbooks Processed: %d\n", totalProcessed)
	fmt.Printf("Rows Imported: %d\n", totalRows)

	if len(failedFiles) > 0 {
		fmt.Printf("\nFailed Workbooks (%d):\n", len(failedFiles))
		for _, f := range failedFiles {
			fmt.Printf("  - %s\n", f)
		}
	}

	logger.Info("seed operation completed",
		slog.Int("workbooks_processed", totalProcessed),
		slog.Int("rows_imported", totalRows),
		slog.Int("failed_workbooks", len(failedFiles)))

	if *dryRun {
		fmt.Println("\n[DRY RUN] No changes were made to the database")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
