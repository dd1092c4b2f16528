// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"

	"github.com/brewline/stockroom-be/internal/adapters/db"
	"github.com/brewline/stockroom-be/internal/core/ports"
	"github.com/brewline/stockroom-be/internal/pkg/config"
)

// CleanupProcessor handles retention and hygiene tasks.
type CleanupProcessor struct {
	db           *db.Database
	reservations ports.ReservationRepository
	cache        ports.CacheRepository
	config       *config.Config
	logger       *slog.Logger
	now          func() time.Time
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(database *db.Database, reservations ports.ReservationRepository, cache ports.CacheRepository, cfg *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		db:           database,
		reservations: reservations,
		cache:        cache,
		config:       cfg,
		logger:       logger.With(slog.String("processor", "cleanup")),
		now:          time.Now,
	}
}

// CleanupOldData trims the transfer audit log past its retention window.
func (p *CleanupProcessor) CleanupOldData(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up old data")

	cutoff := p.now().Add(-p.config.Stock.HistoryRetention)
	result, err := p.db.Exec(ctx,
		`DELETE FROM transfer_history WHERE transferred_at < $1`, cutoff)
	if err != nil {
		return fmt.Errorf("failed to cleanup transfer history: %w", err)
	}

	p.logger.InfoContext(ctx, "old data cleaned up",
		slog.Int64("rows_deleted", result.RowsAffected()))

	return nil
}

// ReleaseStaleHolds returns reservations from orders that were never
// finalized or cancelled, e.g. abandoned carts. Without this, reserved
// quantities would leak and availability would drift down forever.
func (p *CleanupProcessor) ReleaseStaleHolds(ctx context.Context, t *asynq.Task) error {
	cutoff := p.now().Add(-p.config.Stock.ReservationHoldTTL)
	orderIDs, err := p.reservations.StaleOrders(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale orders: %w", err)
	}
	if len(orderIDs) == 0 {
		p.logger.DebugContext(ctx, "no stale holds to release")
		return nil
	}

	var released int
	for _, orderID := range orderIDs {
		if err := p.reservations.ReleaseOrder(ctx, orderID); err != nil {
			p.logger.ErrorContext(ctx, "failed to release stale hold",
				slog.Int64("order_id", orderID),
				slog.String("error", err.Error()))
			continue
		}
		released++
	}

	if released > 0 && p.cache != nil {
		if err := p.cache.DeletePattern(ctx, "availability:*"); err != nil {
			p.logger.WarnContext(ctx, "failed to invalidate availability cache",
				slog.String("error", err.Error()))
		}
	}

	p.logger.InfoContext(ctx, "stale holds released",
		slog.Int("orders", released),
		slog.Int("failed", len(orderIDs)-released))

	return nil
}

// CleanupTempFiles removes old temporary files
func (p *CleanupProcessor) CleanupTempFiles(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up temp files")

	tempDir := p.config.FileProcessing.TempDir
	maxAge := 24 * time.Hour

	var deletedCount int
	err := filepath.Walk(tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err != nil {
				p.logger.WarnContext(ctx, "failed to delete temp file",
					slog.String("file", path),
					slog.String("error", err.Error()))
			} else {
				deletedCount++
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to walk temp directory: %w", err)
	}

	p.logger.InfoContext(ctx, "temp files cleaned up",
		slog.Int("files_deleted", deletedCount))

	return nil
}
