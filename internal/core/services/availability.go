// internal/core/services/availability.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

const defaultAvailabilityCacheTTL = 30 * time.Second

// AvailabilityService answers the POS question "can this variant be sold",
// summing unreserved kitchen stock against recipe requirements.
type AvailabilityService struct {
	recipes  ports.RecipeRepository
	kitchen  ports.KitchenRepository
	cache    ports.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

var _ ports.AvailabilityService = (*AvailabilityService)(nil)

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(recipes ports.RecipeRepository, kitchen ports.KitchenRepository, cache ports.CacheRepository, logger *slog.Logger) *AvailabilityService {
	return &AvailabilityService{
		recipes:  recipes,
		kitchen:  kitchen,
		cache:    cache,
		cacheTTL: defaultAvailabilityCacheTTL,
		logger:   logger.With(slog.String("service", "availability")),
	}
}

// WithCacheTTL overrides how long per-ingredient sums are cached, trading POS
// staleness against database load. Non-positive values keep the default.
func (s *AvailabilityService) WithCacheTTL(ttl time.Duration) *AvailabilityService {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
	return s
}

// VariantHasSufficientStock reports whether count units of the variant can be
// covered by unreserved kitchen stock. A variant with no recipe lines does not
// draw on tracked ingredients and is always available. The check stops at the
// first short ingredient.
func (s *AvailabilityService) VariantHasSufficientStock(ctx context.Context, variantID int64, count int64) (bool, error) {
	if count <= 0 {
		return false, fmt.Errorf("%w: count must be positive", domain.ErrValidation)
	}

	lines, err := s.recipes.FindByVariant(ctx, variantID)
	if err != nil {
		return false, fmt.Errorf("failed to load recipe lines: %w", err)
	}
	if len(lines) == 0 {
		return true, nil
	}

	factor := decimal.NewFromInt(count)
	for _, line := range lines {
		available, err := s.IngredientAvailability(ctx, line.IngredientID)
		if err != nil {
			return false, err
		}
		needed := line.RequiredQuantity.Mul(factor)
		if available.LessThan(needed) {
			s.logger.DebugContext(ctx, "variant short on ingredient",
				slog.Int64("variant_id", variantID),
				slog.Int64("ingredient_id", line.IngredientID),
				slog.String("needed", needed.String()),
				slog.String("available", available.String()))
			return false, nil
		}
	}

	return true, nil
}

// IngredientAvailability returns the unreserved total for one ingredient,
// cached briefly because the POS polls it per menu render.
func (s *AvailabilityService) IngredientAvailability(ctx context.Context, ingredientID int64) (decimal.Decimal, error) {
	fetch := func() (interface{}, error) {
		return s.kitchen.AvailableForIngredient(ctx, ingredientID)
	}

	if s.cache == nil {
		available, err := s.kitchen.AvailableForIngredient(ctx, ingredientID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to sum ingredient availability: %w", err)
		}
		return available, nil
	}

	key := availabilityCacheKey(ingredientID)
	var available decimal.Decimal
	if err := s.cache.GetOrSet(ctx, key, &available, fetch, s.cacheTTL); err != nil {
		// Cache trouble must not block selling; fall through to the database.
		s.logger.WarnContext(ctx, "availability cache unavailable",
			slog.String("key", key), slog.String("error", err.Error()))
		available, err = s.kitchen.AvailableForIngredient(ctx, ingredientID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to sum ingredient availability: %w", err)
		}
	}
	return available, nil
}

func availabilityCacheKey(ingredientID int64) string {
	return fmt.Sprintf("availability:ingredient:%d", ingredientID)
}
