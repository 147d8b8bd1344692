package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/edugames-catalog/internal/config"
	"github.com/edugames-catalog/internal/store"
)

// StatsWorker periodically reports aggregate catalog counts through
// the structured logger
type StatsWorker struct {
	store   store.Storage
	config  *config.StatsConfig
	logger  *slog.Logger
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewStatsWorker creates a new stats reporter worker
func NewStatsWorker(store store.Storage, cfg *config.StatsConfig, logger *slog.Logger) *StatsWorker {
	return &StatsWorker{
		store:  store,
		config: cfg,
		logger: logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start begins the background reporting process
func (w *StatsWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info("stats worker started", "interval", w.config.Interval)

	go w.run(ctx)
	return nil
}

// Stop stops the background reporting process
func (w *StatsWorker) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()

	w.logger.Info("stats worker stopped")
	return nil
}

// run is the main worker loop
func (w *StatsWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.report(ctx)
		}
	}
}

// report logs a single stats snapshot
func (w *StatsWorker) report(ctx context.Context) {
	stats, err := w.store.Stats(ctx)
	if err != nil {
		w.logger.Error("failed to collect catalog stats", "error", err)
		return
	}

	w.logger.Info("catalog stats",
		"games", stats.Games,
		"categories", stats.Categories,
		"users", stats.Users,
		"leaderboard_entries", stats.LeaderboardEntries,
		"contact_messages", stats.ContactMessages,
		"total_plays", stats.TotalPlays,
	)
}

// IsRunning returns whether the worker is currently running
func (w *StatsWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// RunOnce reports a single stats snapshot (useful for manual triggers)
func (w *StatsWorker) RunOnce(ctx context.Context) {
	w.report(ctx)
}
