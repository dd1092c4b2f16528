// internal/core/ports/batch_number.go
package ports

import "context"

// BatchNumberSource issues unique kitchen batch numbers.
type BatchNumberSource interface {
	Next(ctx context.Context) (string, error)
}
