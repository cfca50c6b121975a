package store

import (
	"context"
	"time"

	"quotation-engine/internal/common/logger"
	"quotation-engine/internal/common/metrics"
)

// Sweeper periodically removes idle conversations. It replaces a sleep-loop
// thread with a ticker-driven task that stops when its context is cancelled.
// A missed or failed sweep is not retried; the next tick covers it.
type Sweeper struct {
	store    Store
	idleTTL  time.Duration
	interval time.Duration
	logger   logger.Logger
}

// NewSweeper configures an eviction sweeper over the given store.
func NewSweeper(s Store, idleTTL, interval time.Duration, log logger.Logger) *Sweeper {
	return &Sweeper{
		store:    s,
		idleTTL:  idleTTL,
		interval: interval,
		logger:   log.WithFields(map[string]interface{}{"component": "sweeper"}),
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. Intended to
// be launched on its own goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped", nil)
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.store.EvictOlderThan(ctx, s.idleTTL)
	if err != nil {
		s.logger.Error("eviction sweep failed", map[string]interface{}{"error": err.Error()})
		return
	}

	metrics.ConversationsEvicted.Add(float64(removed))
	if remaining, err := s.store.Len(ctx); err == nil {
		metrics.ActiveConversations.Set(float64(remaining))
	}

	s.logger.Info("cleaned up inactive conversations", map[string]interface{}{
		"removed": removed,
	})
}
