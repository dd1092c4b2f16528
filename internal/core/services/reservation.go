// internal/core/services/reservation.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/core/ports"
)

// ReservationService drives the POS order lifecycle. Quantities are held per
// ingredient at checkout, deducted at payment, and returned when an order is
// cancelled or fails part-way through reservation.
type ReservationService struct {
	recipes      ports.RecipeRepository
	reservations ports.ReservationRepository
	cache        ports.CacheRepository
	logger       *slog.Logger
}

var _ ports.ReservationService = (*ReservationService)(nil)

// NewReservationService creates a new reservation service
func NewReservationService(
	recipes ports.RecipeRepository,
	reservations ports.ReservationRepository,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *ReservationService {
	return &ReservationService{
		recipes:      recipes,
		reservations: reservations,
		cache:        cache,
		logger:       logger.With(slog.String("service", "reservation")),
	}
}

// ReserveOrder holds ingredients for every line of the order. Demands for the
// same ingredient across lines are summed before reserving, so an order is
// checked against total need rather than line by line. On any shortfall every
// hold already taken for this order is released and ErrInsufficientStock is
// returned.
func (s *ReservationService) ReserveOrder(ctx context.Context, orderID int64, lines []domain.OrderLine) error {
	if orderID == 0 {
		return fmt.Errorf("%w: order_id is required", domain.ErrValidation)
	}
	if len(lines) == 0 {
		return fmt.Errorf("%w: order has no lines", domain.ErrValidation)
	}
	for i := range lines {
		if err := lines[i].Validate(); err != nil {
			return fmt.Errorf("order line %d: %w", i, err)
		}
	}

	demands, err := s.aggregateDemand(ctx, lines)
	if err != nil {
		return err
	}
	if len(demands) == 0 {
		// Nothing on the order draws on tracked ingredients.
		return nil
	}

	for _, d := range demands {
		if err := s.reservations.ReserveLine(ctx, orderID, d.ingredientID, d.quantity); err != nil {
			if relErr := s.reservations.ReleaseOrder(ctx, orderID); relErr != nil {
				s.logger.ErrorContext(ctx, "failed to release partial reservation",
					slog.Int64("order_id", orderID),
					slog.String("error", relErr.Error()))
			}
			if errors.Is(err, domain.ErrInsufficientStock) {
				s.logger.InfoContext(ctx, "order rejected for insufficient stock",
					slog.Int64("order_id", orderID),
					slog.Int64("ingredient_id", d.ingredientID),
					slog.String("needed", d.quantity.String()))
				return fmt.Errorf("ingredient %d: %w", d.ingredientID, err)
			}
			return fmt.Errorf("failed to reserve ingredient %d: %w", d.ingredientID, err)
		}
	}

	s.invalidateAvailability(ctx)

	s.logger.InfoContext(ctx, "reserved order ingredients",
		slog.Int64("order_id", orderID),
		slog.Int("ingredients", len(demands)))

	return nil
}

// FinalizeOrder converts the order's holds into deductions. Calling it again
// for the same order is a no-op, so payment retries are safe.
func (s *ReservationService) FinalizeOrder(ctx context.Context, orderID int64) error {
	if orderID == 0 {
		return fmt.Errorf("%w: order_id is required", domain.ErrValidation)
	}

	if err := s.reservations.FinalizeOrder(ctx, orderID); err != nil {
		return fmt.Errorf("failed to finalize order %d: %w", orderID, err)
	}

	s.invalidateAvailability(ctx)

	s.logger.InfoContext(ctx, "finalized order deduction", slog.Int64("order_id", orderID))
	return nil
}

// CancelOrder returns everything the order holds. Unknown orders cancel
// cleanly because abandoned carts may never have reserved anything.
func (s *ReservationService) CancelOrder(ctx context.Context, orderID int64) error {
	if orderID == 0 {
		return fmt.Errorf("%w: order_id is required", domain.ErrValidation)
	}

	if err := s.reservations.ReleaseOrder(ctx, orderID); err != nil {
		return fmt.Errorf("failed to cancel order %d: %w", orderID, err)
	}

	s.invalidateAvailability(ctx)

	s.logger.InfoContext(ctx, "cancelled order reservation", slog.Int64("order_id", orderID))
	return nil
}

type ingredientDemand struct {
	ingredientID int64
	quantity     decimal.Decimal
}

// aggregateDemand expands order lines through their recipes and sums the
// demand per ingredient. Ingredients come back in a stable order so two
// concurrent orders lock batches in the same sequence.
func (s *ReservationService) aggregateDemand(ctx context.Context, lines []domain.OrderLine) ([]ingredientDemand, error) {
	totals := make(map[int64]decimal.Decimal)
	for _, line := range lines {
		recipeLines, err := s.recipes.FindByVariant(ctx, line.VariantID)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipe for variant %d: %w", line.VariantID, err)
		}
		factor := decimal.NewFromInt(line.Quantity)
		for _, rl := range recipeLines {
			totals[rl.IngredientID] = totals[rl.IngredientID].Add(rl.RequiredQuantity.Mul(factor))
		}
	}

	demands := make([]ingredientDemand, 0, len(totals))
	for id, qty := range totals {
		demands = append(demands, ingredientDemand{ingredientID: id, quantity: qty})
	}
	sort.Slice(demands, func(i, j int) bool {
		return demands[i].ingredientID < demands[j].ingredientID
	})
	return demands, nil
}

func (s *ReservationService) invalidateAvailability(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, availabilityCachePattern); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate availability cache",
			slog.String("error", err.Error()))
	}
}
