// market-service is the BDJobs market-intelligence backend.
//
// Ingests raw postings from the BDJobs list API on a cron schedule,
// deduplicates and normalizes them into Postgres, and serves the derived
// market analytics over HTTP.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"jobseek/market-service/internal/api"
	"jobseek/market-service/internal/config"
	"jobseek/market-service/internal/insight"
	"jobseek/market-service/internal/scheduler"
	"jobseek/market-service/internal/scraper"
	"jobseek/market-service/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("postgres setup failed", "error", err)
		os.Exit(1)
	}
	defer pg.Close()

	keys, err := store.NewRedisKeySet(ctx, cfg.RedisURL, pg)
	if err != nil {
		slog.Error("redis setup failed", "error", err)
		os.Exit(1)
	}
	defer keys.Close()
	if err := keys.Warm(ctx); err != nil {
		slog.Warn("key set warm-up failed, cycles will scan the store", "error", err)
	}

	cache := store.NewCorpusCache(pg, cfg.CorpusCacheTTL, nil)

	parser := scraper.NewParser(cfg.FallbackLocation, nil)
	fetcher := scraper.NewFetcher(cfg.ScrapeMaxPages)
	worker := scraper.NewWorker(fetcher, pg, keys, parser)

	sched := scheduler.New(worker, scraper.Categories, cfg.ScrapeIntervalHours, cache.Invalidate)
	if err := sched.Start(ctx); err != nil {
		slog.Error("scheduler start failed", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	var llm insight.Completer
	if cfg.GroqAPIKey != "" {
		llm = insight.NewGroqClient(cfg.GroqAPIKey)
	} else {
		slog.Warn("GROQ_API_KEY not set, insight endpoints disabled")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutdown signal received")
		// os.Exit skips deferred calls, so release everything here. The
		// scheduler stops first so no cycle runs against closed pools.
		cancel()
		sched.Stop()
		keys.Close()
		pg.Close()
		os.Exit(0)
	}()

	server := api.NewServer(cache, llm)
	slog.Info("market-service listening", "port", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		slog.Error("http server failed", "error", err)
		os.Exit(1)
	}
}
