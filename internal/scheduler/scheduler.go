// Package scheduler wires up the cron job that periodically runs a full
// scrape cycle.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"jobseek/market-service/internal/scraper"
)

// CycleRunner runs one ingestion cycle, normally *scraper.Worker.
type CycleRunner interface {
	Run(ctx context.Context, categories []scraper.Category) (scraper.RunStats, error)
}

// Scheduler wraps robfig/cron around the scrape cycle.
type Scheduler struct {
	cron       *cron.Cron
	runner     CycleRunner
	categories []scraper.Category
	spec       string
	onSuccess  func() // corpus cache invalidation hook
}

// New creates a Scheduler firing every intervalHours. onSuccess runs after
// each cycle that inserted at least one posting; nil is allowed.
func New(runner CycleRunner, categories []scraper.Category, intervalHours int, onSuccess func()) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLogger(cron.DefaultLogger)),
		runner:     runner,
		categories: categories,
		spec:       fmt.Sprintf("@every %dh", intervalHours),
		onSuccess:  onSuccess,
	}
}

// Start registers the job and starts the scheduler. One cycle runs
// immediately so the corpus is populated without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	slog.Info("scheduler started", "spec", s.spec)

	go s.runCycle(ctx)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) runCycle(ctx context.Context) {
	stats, err := s.runner.Run(ctx, s.categories)
	if err != nil {
		slog.Error("scrape cycle failed", "error", err)
		return
	}
	if stats.Inserted > 0 && s.onSuccess != nil {
		s.onSuccess()
	}
}
