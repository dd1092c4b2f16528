// internal/core/domain/recipe_test.go
package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

func TestRecipeLine_Validate(t *testing.T) {
	valid := func() domain.RecipeLine {
		return domain.RecipeLine{
			VariantID:        101,
			IngredientID:     1,
			RequiredQuantity: decimal.NewFromFloat(0.25),
			Unit:             "liter",
		}
	}

	t.Run("valid_line", func(t *testing.T) {
		line := valid()
		assert.NoError(t, line.Validate())
	})

	t.Run("missing_variant", func(t *testing.T) {
		line := valid()
		line.VariantID = 0
		assert.ErrorIs(t, line.Validate(), domain.ErrValidation)
	})

	t.Run("missing_ingredient", func(t *testing.T) {
		line := valid()
		line.IngredientID = 0
		assert.ErrorIs(t, line.Validate(), domain.ErrValidation)
	})

	t.Run("non_positive_quantity", func(t *testing.T) {
		line := valid()
		line.RequiredQuantity = decimal.Zero
		assert.ErrorIs(t, line.Validate(), domain.ErrValidation)
	})
}

func TestOrderLine_Validate(t *testing.T) {
	t.Run("valid_line", func(t *testing.T) {
		line := domain.OrderLine{VariantID: 101, Quantity: 2}
		assert.NoError(t, line.Validate())
	})

	t.Run("missing_variant", func(t *testing.T) {
		line := domain.OrderLine{Quantity: 2}
		assert.ErrorIs(t, line.Validate(), domain.ErrValidation)
	})

	t.Run("zero_quantity", func(t *testing.T) {
		line := domain.OrderLine{VariantID: 101}
		assert.ErrorIs(t, line.Validate(), domain.ErrValidation)
	})

	t.Run("negative_quantity", func(t *testing.T) {
		line := domain.OrderLine{VariantID: 101, Quantity: -1}
		assert.ErrorIs(t, line.Validate(), domain.ErrValidation)
	})
}
