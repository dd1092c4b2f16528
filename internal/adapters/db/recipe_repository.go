// internal/adapters/db/recipe_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// recipeRepository implements ports.RecipeRepository
type recipeRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *Database, logger *slog.Logger) ports.RecipeRepository {
	return &recipeRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "recipe")),
	}
}

// Save upserts a recipe line on (variant_id, ingredient_id).
func (r *recipeRepository) Save(ctx context.Context, line *domain.RecipeLine) error {
	query := `
		INSERT INTO recipe_lines (variant_id, ingredient_id, required_quantity, unit)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (variant_id, ingredient_id)
		DO UPDATE SET required_quantity = EXCLUDED.required_quantity, unit = EXCLUDED.unit
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		line.VariantID, line.IngredientID, line.RequiredQuantity, line.Unit,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("failed to save recipe line: %w", err)
	}

	r.logger.DebugContext(ctx, "recipe line saved",
		slog.Int64("variant_id", line.VariantID),
		slog.Int64("ingredient_id", line.IngredientID))
	return nil
}

// FindByVariant returns all lines for one variant.
func (r *recipeRepository) FindByVariant(ctx context.Context, variantID int64) ([]domain.RecipeLine, error) {
	query := `
		SELECT id, variant_id, ingredient_id, required_quantity, unit
		FROM recipe_lines
		WHERE variant_id = $1
		ORDER BY ingredient_id`

	rows, err := r.db.Query(ctx, query, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.RecipeLine
	for rows.Next() {
		var line domain.RecipeLine
		if err := rows.Scan(&line.ID, &line.VariantID, &line.IngredientID, &line.RequiredQuantity, &line.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan recipe line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return lines, nil
}

// FindAll returns every recipe line.
func (r *recipeRepository) FindAll(ctx context.Context) ([]domain.RecipeLine, error) {
	query := `
		SELECT id, variant_id, ingredient_id, required_quantity, unit
		FROM recipe_lines
		ORDER BY variant_id, ingredient_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.RecipeLine
	for rows.Next() {
		var line domain.RecipeLine
		if err := rows.Scan(&line.ID, &line.VariantID, &line.IngredientID, &line.RequiredQuantity, &line.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan recipe line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return lines, nil
}

// Delete removes a recipe line
func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipe_lines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: recipe line %d", domain.ErrNotFound, id)
	}
	return nil
}
