package store

import (
	"context"
	"sync"
	"time"

	"jobseek/market-service/internal/model"
)

// CorpusLoader loads the full normalized corpus, normally *Postgres.
type CorpusLoader interface {
	Load(ctx context.Context) ([]model.JobPosting, error)
}

// CorpusCache memoizes the corpus load with a TTL: an explicit (data,
// fetchedAt) pair and an injectable clock, not a process-wide singleton.
// Queries within the TTL share one snapshot, so analytics stay consistent
// between refreshes.
type CorpusCache struct {
	loader CorpusLoader
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	data      []model.JobPosting
	fetchedAt time.Time
}

// NewCorpusCache wraps loader with a TTL cache. A nil now defaults to
// time.Now.
func NewCorpusCache(loader CorpusLoader, ttl time.Duration, now func() time.Time) *CorpusCache {
	if now == nil {
		now = time.Now
	}
	return &CorpusCache{loader: loader, ttl: ttl, now: now}
}

// Get returns the cached corpus, reloading when the snapshot is older than
// the TTL. A reload failure with a previous snapshot in hand serves the
// stale data rather than failing the query.
func (c *CorpusCache) Get(ctx context.Context) ([]model.JobPosting, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.data, nil
	}
	data, err := c.loader.Load(ctx)
	if err != nil {
		if !c.fetchedAt.IsZero() {
			return c.data, nil
		}
		return nil, err
	}
	c.data = data
	c.fetchedAt = c.now()
	return c.data, nil
}

// Invalidate drops the snapshot so the next Get reloads. The worker calls
// this after appending new postings.
func (c *CorpusCache) Invalidate() {
	c.mu.Lock()
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}
