// internal/core/services/recipe.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// RecipeService manages variant-to-ingredient mappings.
type RecipeService struct {
	repo   ports.RecipeRepository
	logger *slog.Logger
}

var _ ports.RecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new recipe service
func NewRecipeService(repo ports.RecipeRepository, logger *slog.Logger) *RecipeService {
	return &RecipeService{
		repo:   repo,
		logger: logger.With(slog.String("service", "recipe")),
	}
}

func (s *RecipeService) SaveLine(ctx context.Context, line *domain.RecipeLine) error {
	if err := line.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.repo.Save(ctx, line); err != nil {
		return fmt.Errorf("failed to save recipe line: %w", err)
	}

	s.logger.InfoContext(ctx, "saved recipe line",
		slog.Int64("variant_id", line.VariantID),
		slog.Int64("ingredient_id", line.IngredientID))
	return nil
}

func (s *RecipeService) LinesForVariant(ctx context.Context, variantID int64) ([]domain.RecipeLine, error) {
	lines, err := s.repo.FindByVariant(ctx, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe lines: %w", err)
	}
	return lines, nil
}

func (s *RecipeService) ListAll(ctx context.Context) ([]domain.RecipeLine, error) {
	lines, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe lines: %w", err)
	}
	return lines, nil
}

func (s *RecipeService) DeleteLine(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe line: %w", err)
	}
	s.logger.InfoContext(ctx, "deleted recipe line", slog.Int64("id", id))
	return nil
}
