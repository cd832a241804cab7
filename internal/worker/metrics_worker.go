package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rafaelmelo2/maonamassa/internal/service"
)

// StartMetricsWorker periodically folds pending profile-view counters into
// the stored professional metrics. Stops when ctx is cancelled.
func StartMetricsWorker(ctx context.Context, professionals *service.ProfessionalService, interval time.Duration, logger *zap.Logger) {
	if professionals == nil || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := professionals.FlushProfileViews(ctx); err != nil {
					logger.Warn("profile view flush failed", zap.Error(err))
				}
			}
		}
	}()
}
