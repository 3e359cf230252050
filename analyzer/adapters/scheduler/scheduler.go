package scheduler

import (
	"context"
	"errors"
	"keyword-service/analyzer/core"
	"log/slog"
	"time"
)

// PruneScheduler evicts stale transcripts from the cache on a fixed interval.
type PruneScheduler struct {
	log      *slog.Logger
	cache    core.CacheManager
	interval time.Duration
}

func NewPruneScheduler(log *slog.Logger, cache core.CacheManager, interval time.Duration) *PruneScheduler {
	return &PruneScheduler{
		log:      log,
		cache:    cache,
		interval: interval,
	}
}

func (s *PruneScheduler) Start(ctx context.Context) error {
	s.log.Info("start cache prune scheduler", "interval", s.interval)
	if err := s.cache.PruneCache(ctx); err != nil && !errors.Is(err, core.ErrAlreadyExists) {
		return err
	}
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				err := s.cache.PruneCache(ctx)
				switch {
				case errors.Is(err, core.ErrAlreadyExists):
					s.log.Debug("cache maintenance in progress, prune skipped")
				case err != nil:
					s.log.Error("failed to prune cache", "error", err)
				}
			case <-ctx.Done():
				s.log.Info("cache prune scheduler stopped")
				return
			}
		}
	}()
	return nil
}
