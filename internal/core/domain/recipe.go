// internal/core/domain/recipe.go
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RecipeLine ties a sellable product variant to an ingredient quantity
// consumed per unit sold. IngredientID references the warehouse item the
// kitchen batches were transferred from.
type RecipeLine struct {
	ID               int64           `json:"id"`
	VariantID        int64           `json:"variant_id"`
	IngredientID     int64           `json:"ingredient_id"`
	RequiredQuantity decimal.Decimal `json:"required_quantity"`
	Unit             string          `json:"unit"`
}

func (l *RecipeLine) Validate() error {
	if l.VariantID == 0 {
		return fmt.Errorf("%w: variant_id is required", ErrValidation)
	}
	if l.IngredientID == 0 {
		return fmt.Errorf("%w: ingredient_id is required", ErrValidation)
	}
	if !l.RequiredQuantity.IsPositive() {
		return fmt.Errorf("%w: required_quantity must be positive", ErrValidation)
	}
	return nil
}

// OrderLine is one POS cart line: a variant and how many units of it.
// Orders are transient; reservations tagged by order id are the only
// persisted trace until finalization turns them into deductions.
type OrderLine struct {
	VariantID int64 `json:"variant_id"`
	Quantity  int64 `json:"quantity"`
}

func (l *OrderLine) Validate() error {
	if l.VariantID == 0 {
		return fmt.Errorf("%w: variant_id is required", ErrValidation)
	}
	if l.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	return nil
}
