// internal/core/ports/kitchen_repository.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brewline/stockroom-be/internal/core/domain"
)

// KitchenQueryParams filters kitchen batch listings.
type KitchenQueryParams struct {
	Search        string
	CategoryType  string
	Status        string
	ExpiringUntil *time.Time
	SortBy        string
	SortOrder     string
	Limit         int
	Offset        int
}

// KitchenRepository is the persistence port for kitchen batches.
type KitchenRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.KitchenBatch, error)
	FindAll(ctx context.Context, params KitchenQueryParams) ([]domain.KitchenBatch, int64, error)
	// FindAvailableByIngredient returns reservable batches for one ingredient
	// in allocation order (earliest expiry first, no-expiry last, then oldest
	// transfer).
	FindAvailableByIngredient(ctx context.Context, ingredientID int64) ([]domain.KitchenBatch, error)
	// AvailableForIngredient sums current - reserved across reservable batches.
	AvailableForIngredient(ctx context.Context, ingredientID int64) (decimal.Decimal, error)
	// Adjust applies current/reserved deltas to a batch only if the result
	// keeps 0 <= reserved <= current <= original. Returns
	// domain.ErrInvariantViolation when the guarded update matches no row.
	Adjust(ctx context.Context, id uuid.UUID, currentDelta, reservedDelta decimal.Decimal) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error
	// MarkExpired flips available batches whose calculated expiry has passed.
	// Returns the ids it transitioned.
	MarkExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
