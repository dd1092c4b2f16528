// internal/core/ports/recipe_repository.go
package ports

import (
	"context"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

// RecipeRepository is the persistence port for variant-to-ingredient mappings.
type RecipeRepository interface {
	Save(ctx context.Context, line *domain.RecipeLine) error
	FindByVariant(ctx context.Context, variantID int64) ([]domain.RecipeLine, error)
	FindAll(ctx context.Context) ([]domain.RecipeLine, error)
	Delete(ctx context.Context, id int64) error
}
