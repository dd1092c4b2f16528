// internal/adapters/db/batch_number.go
package db

import (
	"context"
	"fmt"

	"github.com/brewline/stockroom-be/internal/core/ports"
)

// batchNumberSource issues batch numbers from a monotonic database sequence,
// so concurrent transfers can never collide the way random suffixes could.
// Values are zero-padded to six digits and simply grow wider past 999999.
type batchNumberSource struct {
	db *Database
}

// NewBatchNumberSource creates a sequence-backed batch number source
func NewBatchNumberSource(db *Database) ports.BatchNumberSource {
	return &batchNumberSource{db: db}
}

func (s *batchNumberSource) Next(ctx context.Context) (string, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT nextval('kitchen_batch_number_seq')`).Scan(&n); err != nil {
		return "", fmt.Errorf("failed to fetch next batch number: %w", err)
	}
	return fmt.Sprintf("BATCH-%06d", n), nil
}
