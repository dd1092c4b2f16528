// internal/core/services/availability_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/services"
	"github.com/brewline/stockroom-be/test/helpers"
	"github.com/brewline/stockroom-be/test/mocks"
)

func newAvailabilityService(t *testing.T) (*services.AvailabilityService, *mocks.MockRecipeRepository, *mocks.MockKitchenRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	recipes := mocks.NewMockRecipeRepository(ctrl)
	kitchen := mocks.NewMockKitchenRepository(ctrl)
	service := services.NewAvailabilityService(recipes, kitchen, nil, helpers.TestLogger())
	return service, recipes, kitchen
}

func TestAvailabilityService_VariantHasSufficientStock(t *testing.T) {
	t.Run("sufficient_stock", func(t *testing.T) {
		service, recipes, kitchen := newAvailabilityService(t)

		recipes.EXPECT().FindByVariant(gomock.Any(), int64(101)).
			Return([]domain.RecipeLine{recipeLine(101, 1, "0.25")}, nil)
		kitchen.EXPECT().AvailableForIngredient(gomock.Any(), int64(1)).
			Return(decimal.NewFromInt(10), nil)

		available, err := service.VariantHasSufficientStock(context.Background(), 101, 3)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("short_on_one_ingredient", func(t *testing.T) {
		service, recipes, kitchen := newAvailabilityService(t)

		recipes.EXPECT().FindByVariant(gomock.Any(), int64(101)).
			Return([]domain.RecipeLine{recipeLine(101, 1, "0.25")}, nil)
		kitchen.EXPECT().AvailableForIngredient(gomock.Any(), int64(1)).
			Return(decimal.RequireFromString("0.5"), nil)

		available, err := service.VariantHasSufficientStock(context.Background(), 101, 3)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("exact_stock_is_sufficient", func(t *testing.T) {
		service, recipes, kitchen := newAvailabilityService(t)

		recipes.EXPECT().FindByVariant(gomock.Any(), int64(101)).
			Return([]domain.RecipeLine{recipeLine(101, 1, "0.25")}, nil)
		kitchen.EXPECT().AvailableForIngredient(gomock.Any(), int64(1)).
			Return(decimal.RequireFromString("0.75"), nil)

		available, err := service.VariantHasSufficientStock(context.Background(), 101, 3)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("no_recipe_lines_always_available", func(t *testing.T) {
		service, recipes, _ := newAvailabilityService(t)

		recipes.EXPECT().FindByVariant(gomock.Any(), int64(303)).
			Return([]domain.RecipeLine{}, nil)

		available, err := service.VariantHasSufficientStock(context.Background(), 303, 100)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("stops_at_first_short_ingredient", func(t *testing.T) {
		service, recipes, kitchen := newAvailabilityService(t)

		recipes.EXPECT().FindByVariant(gomock.Any(), int64(101)).
			Return([]domain.RecipeLine{
				recipeLine(101, 1, "0.25"),
				recipeLine(101, 2, "0.02"),
			}, nil)
		// The second ingredient is never checked.
		kitchen.EXPECT().AvailableForIngredient(gomock.Any(), int64(1)).
			Return(decimal.Zero, nil)

		available, err := service.VariantHasSufficientStock(context.Background(), 101, 1)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("rejects_non_positive_count", func(t *testing.T) {
		service, _, _ := newAvailabilityService(t)

		_, err := service.VariantHasSufficientStock(context.Background(), 101, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAvailabilityService_IngredientAvailability(t *testing.T) {
	t.Run("without_cache_hits_repository", func(t *testing.T) {
		service, _, kitchen := newAvailabilityService(t)

		kitchen.EXPECT().AvailableForIngredient(gomock.Any(), int64(1)).
			Return(decimal.RequireFromString("7.5"), nil)

		available, err := service.IngredientAvailability(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, available.Equal(decimal.RequireFromString("7.5")))
	})

	t.Run("cache_failure_falls_back_to_repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		recipes := mocks.NewMockRecipeRepository(ctrl)
		kitchen := mocks.NewMockKitchenRepository(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		service := services.NewAvailabilityService(recipes, kitchen, cache, helpers.TestLogger())

		cache.EXPECT().
			GetOrSet(gomock.Any(), "availability:ingredient:1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))
		kitchen.EXPECT().AvailableForIngredient(gomock.Any(), int64(1)).
			Return(decimal.NewFromInt(3), nil)

		available, err := service.IngredientAvailability(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, available.Equal(decimal.NewFromInt(3)))
	})

	t.Run("configured_ttl_reaches_the_cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		recipes := mocks.NewMockRecipeRepository(ctrl)
		kitchen := mocks.NewMockKitchenRepository(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		service := services.NewAvailabilityService(recipes, kitchen, cache, helpers.TestLogger()).
			WithCacheTTL(5 * time.Minute)

		cache.EXPECT().
			GetOrSet(gomock.Any(), "availability:ingredient:1", gomock.Any(), gomock.Any(), 5*time.Minute).
			Return(nil)

		_, err := service.IngredientAvailability(context.Background(), 1)
		require.NoError(t, err)
	})

	t.Run("non_positive_ttl_keeps_default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		recipes := mocks.NewMockRecipeRepository(ctrl)
		kitchen := mocks.NewMockKitchenRepository(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		service := services.NewAvailabilityService(recipes, kitchen, cache, helpers.TestLogger()).
			WithCacheTTL(0)

		cache.EXPECT().
			GetOrSet(gomock.Any(), "availability:ingredient:1", gomock.Any(), gomock.Any(), 30*time.Second).
			Return(nil)

		_, err := service.IngredientAvailability(context.Background(), 1)
		require.NoError(t, err)
	})

	t.Run("repository_failure", func(t *testing.T) {
		service, _, kitchen := newAvailabilityService(t)

		kitchen.EXPECT().AvailableForIngredient(gomock.Any(), int64(1)).
			Return(decimal.Zero, errors.New("connection refused"))

		_, err := service.IngredientAvailability(context.Background(), 1)
		assert.ErrorContains(t, err, "failed to sum ingredient availability")
	})
}
