package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"jobseek/market-service/internal/model"
)

// Sourcer fetches raw postings for one category. A partial batch may be
// returned alongside an error when pagination aborted mid-category.
type Sourcer interface {
	Fetch(ctx context.Context, cat Category) ([]model.RawPosting, error)
}

// CorpusAppender persists accepted postings.
type CorpusAppender interface {
	Append(ctx context.Context, postings []model.JobPosting) error
}

// KeySet tracks the identity keys already known to the datastore.
type KeySet interface {
	Existing(ctx context.Context) (map[string]struct{}, error)
	Add(ctx context.Context, keys []string) error
}

// RunStats counts every outcome of one scrape cycle. Each degradation
// (dropped record, skipped category, duplicate) is independently observable.
type RunStats struct {
	Fetched          int
	Inserted         int
	Duplicates       int
	Rejected         map[RejectReason]int
	FailedCategories int
}

// Worker runs the full ingestion cycle: fetch per category, normalize,
// deduplicate against the store and within the run, append.
type Worker struct {
	source Sourcer
	store  CorpusAppender
	keys   KeySet
	parser *Parser
}

// NewWorker constructs a Worker.
func NewWorker(source Sourcer, store CorpusAppender, keys KeySet, parser *Parser) *Worker {
	return &Worker{source: source, store: store, keys: keys, parser: parser}
}

// Run executes one scrape cycle over the given categories. A transport error
// terminates only that category; the cycle continues and the error is
// reflected in RunStats.FailedCategories. The only fatal errors are failures
// to read the existing key set or to persist accepted postings.
func (w *Worker) Run(ctx context.Context, categories []Category) (RunStats, error) {
	runID := uuid.New().String()[:8]
	stats := RunStats{Rejected: make(map[RejectReason]int)}

	existing, err := w.keys.Existing(ctx)
	if err != nil {
		return stats, fmt.Errorf("load existing keys: %w", err)
	}
	slog.Info("scrape cycle started", "run", runID, "existing_keys", len(existing), "categories", len(categories))

	var newPostings []model.JobPosting
	for _, cat := range categories {
		raws, err := w.source.Fetch(ctx, cat)
		if err != nil {
			// Keep whatever pages arrived before the failure.
			stats.FailedCategories++
			slog.Warn("category aborted", "run", runID, "category", cat.Name, "error", err)
		}
		stats.Fetched += len(raws)

		accepted, rejected := w.parser.Parse(raws)
		for _, r := range rejected {
			stats.Rejected[r.Reason]++
		}

		unique := Dedupe(accepted, existing)
		stats.Duplicates += len(accepted) - len(unique)
		newPostings = append(newPostings, unique...)
	}

	if len(newPostings) > 0 {
		if err := w.store.Append(ctx, newPostings); err != nil {
			return stats, fmt.Errorf("append postings: %w", err)
		}
		keys := make([]string, len(newPostings))
		for i, p := range newPostings {
			keys[i] = p.Key()
		}
		if err := w.keys.Add(ctx, keys); err != nil {
			// The store insert already landed; the key set self-heals on the
			// next warm-up scan.
			slog.Warn("key set update failed", "run", runID, "error", err)
		}
	}
	stats.Inserted = len(newPostings)

	totalRejected := 0
	for _, n := range stats.Rejected {
		totalRejected += n
	}
	slog.Info("scrape cycle done",
		"run", runID,
		"fetched", stats.Fetched,
		"inserted", stats.Inserted,
		"duplicates", stats.Duplicates,
		"rejected", totalRejected,
		"failed_categories", stats.FailedCategories,
	)
	return stats, nil
}
