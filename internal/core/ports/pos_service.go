// internal/core/ports/pos_service.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

// AvailabilityService answers whether variants can be sold right now.
type AvailabilityService interface {
	// VariantHasSufficientStock reports whether count units of the variant can
	// be covered by unreserved kitchen stock. Variants with no recipe lines
	// are always available.
	VariantHasSufficientStock(ctx context.Context, variantID int64, count int64) (bool, error)
	// IngredientAvailability returns the unreserved total for one ingredient.
	IngredientAvailability(ctx context.Context, ingredientID int64) (decimal.Decimal, error)
}

// ReservationService drives the POS order lifecycle: hold ingredients at
// checkout, deduct at payment, release at abandonment.
type ReservationService interface {
	// ReserveOrder holds ingredients for every line of the order. On any
	// shortfall the whole order is released and domain.ErrInsufficientStock
	// is returned.
	ReserveOrder(ctx context.Context, orderID int64, lines []domain.OrderLine) error
	FinalizeOrder(ctx context.Context, orderID int64) error
	CancelOrder(ctx context.Context, orderID int64) error
}

// RecipeService manages variant-to-ingredient mappings.
type RecipeService interface {
	SaveLine(ctx context.Context, line *domain.RecipeLine) error
	LinesForVariant(ctx context.Context, variantID int64) ([]domain.RecipeLine, error)
	ListAll(ctx context.Context) ([]domain.RecipeLine, error)
	DeleteLine(ctx context.Context, id int64) error
}
