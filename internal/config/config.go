// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the market service.
type Config struct {
	Port                string
	DatabaseURL         string
	RedisURL            string
	GroqAPIKey          string // empty disables the insight endpoints
	ScrapeIntervalHours int
	ScrapeMaxPages      int
	FallbackLocation    string // replaces absent/"None" posting locations
	CorpusCacheTTL      time.Duration
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	interval := 6
	if s := os.Getenv("SCRAPE_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SCRAPE_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		interval = v
	}

	maxPages := 2
	if s := os.Getenv("SCRAPE_MAX_PAGES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SCRAPE_MAX_PAGES must be a positive integer, got %q", s)
		}
		maxPages = v
	}

	cacheTTL := 60 * time.Minute
	if s := os.Getenv("CORPUS_CACHE_TTL_MINUTES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("CORPUS_CACHE_TTL_MINUTES must be a positive integer, got %q", s)
		}
		cacheTTL = time.Duration(v) * time.Minute
	}

	fallbackLocation := os.Getenv("FALLBACK_LOCATION")
	if fallbackLocation == "" {
		fallbackLocation = "Dhaka"
	}

	port := os.Getenv("MARKET_PORT")
	if port == "" {
		port = "8082"
	}

	return &Config{
		Port:                port,
		DatabaseURL:         dbURL,
		RedisURL:            redisURL,
		GroqAPIKey:          os.Getenv("GROQ_API_KEY"),
		ScrapeIntervalHours: interval,
		ScrapeMaxPages:      maxPages,
		FallbackLocation:    fallbackLocation,
		CorpusCacheTTL:      cacheTTL,
	}, nil
}
