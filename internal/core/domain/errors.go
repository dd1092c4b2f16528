// internal/core/domain/errors.go
package domain

import "errors"

// Error kinds surfaced by the stock engines. Callers classify failures with
// errors.Is; lower layers wrap these with context via fmt.Errorf and %w.
var (
	// ErrValidation marks malformed input: negative quantities, blank
	// required fields. Not retryable.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup miss for an id that was expected to exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientSourceStock is returned when a transfer asks for more
	// than the warehouse batch holds. The caller must re-read source state
	// before retrying.
	ErrInsufficientSourceStock = errors.New("insufficient source stock")

	// ErrInsufficientStock is returned when a reservation cannot be covered
	// by available kitchen stock. No partial reservation is left behind.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvariantViolation is returned when an adjustment would break
	// 0 <= reserved <= current <= original. Indicates a programming error
	// or a lost race; never retried automatically.
	ErrInvariantViolation = errors.New("stock invariant violation")

	// ErrStoreUnavailable wraps transport-level failures from the backing
	// store. Never swallowed, only translated.
	ErrStoreUnavailable = errors.New("store unavailable")
)
