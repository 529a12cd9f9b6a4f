package analytics

import (
	"time"

	"jobseek/market-service/internal/model"
)

// Freshness status values.
const (
	FreshnessFresh   = "fresh"   // latest posting ≤ 6h old
	FreshnessStale   = "stale"   // ≤ 24h
	FreshnessOld     = "old"     // > 24h
	FreshnessUnknown = "unknown" // no date data
)

// FreshnessReport describes how recently the corpus was updated, relative to
// an explicit "now". Pure function of the corpus and the clock.
type FreshnessReport struct {
	Status           string    `json:"status"`
	HoursSinceLatest float64   `json:"hours_since_latest"`
	LatestDate       time.Time `json:"latest_date"`
}

// Freshness buckets the age of the newest posting: ≤6h fresh, ≤24h stale,
// >24h old, no data unknown.
func Freshness(corpus []model.JobPosting, now time.Time) FreshnessReport {
	var latest time.Time
	for _, p := range corpus {
		if p.DateScraped.After(latest) {
			latest = p.DateScraped
		}
	}
	if latest.IsZero() {
		return FreshnessReport{Status: FreshnessUnknown}
	}

	hours := now.Sub(latest).Hours()
	report := FreshnessReport{HoursSinceLatest: hours, LatestDate: latest}
	switch {
	case hours <= 6:
		report.Status = FreshnessFresh
	case hours <= 24:
		report.Status = FreshnessStale
	default:
		report.Status = FreshnessOld
	}
	return report
}

// utcDay truncates t to its UTC day boundary.
func utcDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// JobsToday counts postings scraped on now's UTC day.
func JobsToday(corpus []model.JobPosting, now time.Time) int {
	today := utcDay(now)
	n := 0
	for _, p := range corpus {
		if utcDay(p.DateScraped).Equal(today) {
			n++
		}
	}
	return n
}

// DailyDelta is jobs scraped today minus jobs scraped yesterday, on UTC day
// boundaries.
func DailyDelta(corpus []model.JobPosting, now time.Time) int {
	today := utcDay(now)
	yesterday := today.AddDate(0, 0, -1)
	var nToday, nYesterday int
	for _, p := range corpus {
		switch d := utcDay(p.DateScraped); {
		case d.Equal(today):
			nToday++
		case d.Equal(yesterday):
			nYesterday++
		}
	}
	return nToday - nYesterday
}

// NewCompaniesToday returns companies whose first posting appeared on now's
// UTC day: the set difference between companies seen today and companies
// seen on any earlier day. First-seen order is preserved.
func NewCompaniesToday(corpus []model.JobPosting, now time.Time) []string {
	today := utcDay(now)
	before := make(map[string]struct{})
	seenToday := make(map[string]struct{})
	var order []string
	for _, p := range corpus {
		if p.Company == "" {
			continue
		}
		if utcDay(p.DateScraped).Before(today) {
			before[p.Company] = struct{}{}
			continue
		}
		if utcDay(p.DateScraped).Equal(today) {
			if _, dup := seenToday[p.Company]; !dup {
				seenToday[p.Company] = struct{}{}
				order = append(order, p.Company)
			}
		}
	}
	fresh := order[:0]
	for _, co := range order {
		if _, old := before[co]; !old {
			fresh = append(fresh, co)
		}
	}
	return fresh
}
