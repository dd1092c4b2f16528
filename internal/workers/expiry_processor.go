// internal/workers/expiry_processor.go
package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/brewline/stockroom-be/internal/core/ports"
)

// ExpiryProcessor moves kitchen batches past their calculated expiry out of
// the available pool. It runs on a periodic schedule; the ledger itself never
// changes status on read.
type ExpiryProcessor struct {
	kitchen ports.KitchenRepository
	cache   ports.CacheRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewExpiryProcessor creates a new expiry processor
func NewExpiryProcessor(kitchen ports.KitchenRepository, cache ports.CacheRepository, logger *slog.Logger) *ExpiryProcessor {
	return &ExpiryProcessor{
		kitchen: kitchen,
		cache:   cache,
		logger:  logger.With(slog.String("processor", "expiry")),
		now:     time.Now,
	}
}

// SweepExpired flips every available batch whose expiry has passed. Expired
// batches drop out of availability sums and allocation immediately.
func (p *ExpiryProcessor) SweepExpired(ctx context.Context, t *asynq.Task) error {
	ids, err := p.kitchen.MarkExpired(ctx, p.now())
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		p.logger.DebugContext(ctx, "no batches to expire")
		return nil
	}

	if p.cache != nil {
		if err := p.cache.DeletePattern(ctx, "availability:*"); err != nil {
			p.logger.WarnContext(ctx, "failed to invalidate availability cache",
				slog.String("error", err.Error()))
		}
	}

	p.logger.InfoContext(ctx, "expiry sweep completed",
		slog.Int("batches_expired", len(ids)))
	return nil
}
