// Package store persists and caches the normalized corpus. Postgres is the
// tabular datastore; Redis carries the dedup key set between runs.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobseek/market-service/internal/model"
)

// schema mirrors the tabular corpus layout: ordered columns, the identity
// key derived from job_title + company rather than stored.
const schema = `
CREATE TABLE IF NOT EXISTS job_postings (
	id           BIGSERIAL PRIMARY KEY,
	job_title    TEXT NOT NULL,
	company      TEXT NOT NULL DEFAULT '',
	salary_min   DOUBLE PRECISION,
	salary_max   DOUBLE PRECISION,
	skills       TEXT NOT NULL DEFAULT '',
	industry     TEXT NOT NULL DEFAULT '',
	location     TEXT NOT NULL DEFAULT '',
	date_scraped DATE NOT NULL,
	posting_key  TEXT GENERATED ALWAYS AS (lower(trim(job_title) || '|' || trim(company))) STORED,
	UNIQUE (posting_key)
)`

// Postgres is the corpus store backed by a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects, verifies connectivity and ensures the schema.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Postgres) Close() { s.pool.Close() }

// Append inserts postings row-wise, skipping rows whose derived identity key
// already exists. The worker deduplicates first; the ON CONFLICT guard only
// covers races between overlapping cycles.
func (s *Postgres) Append(ctx context.Context, postings []model.JobPosting) error {
	batch := &pgx.Batch{}
	for _, p := range postings {
		batch.Queue(
			`INSERT INTO job_postings
			   (job_title, company, salary_min, salary_max, skills, industry, location, date_scraped)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (posting_key) DO NOTHING`,
			p.Title, p.Company, p.SalaryMin, p.SalaryMax,
			p.SkillsText, p.Industry, p.Location, p.DateScraped,
		)
	}
	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range postings {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert: %w", err)
		}
	}
	return nil
}

// Load reads the full corpus in insertion order. The salary min/max swap is
// applied here, once per load; it is the one mutation the corpus ever sees.
func (s *Postgres) Load(ctx context.Context) ([]model.JobPosting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT job_title, company, salary_min, salary_max, skills, industry, location, date_scraped
		 FROM job_postings
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query job_postings: %w", err)
	}
	defer rows.Close()

	var corpus []model.JobPosting
	for rows.Next() {
		var p model.JobPosting
		var scraped time.Time
		if err := rows.Scan(
			&p.Title, &p.Company, &p.SalaryMin, &p.SalaryMax,
			&p.SkillsText, &p.Industry, &p.Location, &scraped,
		); err != nil {
			return nil, fmt.Errorf("scan posting: %w", err)
		}
		p.DateScraped = scraped.UTC()
		NormalizeSalary(&p)
		corpus = append(corpus, p)
	}
	return corpus, rows.Err()
}

// Keys returns every identity key known to the store.
func (s *Postgres) Keys(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.pool.Query(ctx, `SELECT job_title, company FROM job_postings`)
	if err != nil {
		return nil, fmt.Errorf("query keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var title, company string
		if err := rows.Scan(&title, &company); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys[model.PostingKey(title, company)] = struct{}{}
	}
	return keys, rows.Err()
}

// NormalizeSalary swaps inverted salary bounds so min never exceeds max.
// Bad source data is corrected, never surfaced.
func NormalizeSalary(p *model.JobPosting) {
	if p.SalaryMin != nil && p.SalaryMax != nil && *p.SalaryMin > *p.SalaryMax {
		p.SalaryMin, p.SalaryMax = p.SalaryMax, p.SalaryMin
	}
}
