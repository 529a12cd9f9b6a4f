package analytics

import (
	"time"

	"jobseek/market-service/internal/classify"
	"jobseek/market-service/internal/model"
)

// Trend classifications for a company's week-over-week posting volume.
const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendStable  = "stable"
	TrendUnknown = "unknown"
)

// CompanyIntel is the derived per-company hiring profile. It is computed
// fresh on each call and has no independent lifecycle.
type CompanyIntel struct {
	Company       string       `json:"company"`
	TotalPostings int          `json:"total_postings"`
	Roles         []LabelCount `json:"roles"`
	Locations     []LabelCount `json:"locations"`
	Industries    []LabelCount `json:"industries"`
	Experience    []LabelCount `json:"experience"`
	DominantRole  string       `json:"dominant_role"`
	DominantCity  string       `json:"dominant_location"`
	Trend         string       `json:"trend"`
	TrendDelta    int          `json:"trend_delta"`
}

// weeklyTrend compares postings in [now-7d, now) against [now-14d, now-7d).
// The zero handling is asymmetric: prior=0 with recent>0 is "up" with
// delta=recent, and prior=0 with recent=0 is "unknown", not "stable".
func weeklyTrend(recent, prior int) (string, int) {
	switch {
	case prior == 0 && recent == 0:
		return TrendUnknown, 0
	case prior == 0:
		return TrendUp, recent
	case recent > prior:
		return TrendUp, recent - prior
	case recent < prior:
		return TrendDown, prior - recent
	default:
		return TrendStable, 0
	}
}

// Company builds the intelligence profile for one company (exact name
// match). Returns ok=false when the corpus has no postings for it.
func Company(corpus []model.JobPosting, name string, now time.Time) (CompanyIntel, bool) {
	roles := newCounter()
	locations := newCounter()
	industries := newCounter()
	experience := newCounter()

	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)
	var total, recent, prior int

	for _, p := range corpus {
		if p.Company != name {
			continue
		}
		total++
		roles.add(p.Title)
		locations.add(p.Location)
		industries.add(p.Industry)
		if b := classify.ExperienceBucket(p.SkillsText); b != classify.NotSpecified {
			experience.add(b)
		}
		switch d := p.DateScraped; {
		case !d.Before(weekAgo) && d.Before(now):
			recent++
		case !d.Before(twoWeeksAgo) && d.Before(weekAgo):
			prior++
		}
	}
	if total == 0 {
		return CompanyIntel{}, false
	}

	intel := CompanyIntel{
		Company:       name,
		TotalPostings: total,
		Roles:         roles.table(),
		Locations:     locations.table(),
		Industries:    industries.table(),
		Experience:    experience.table(),
	}
	intel.DominantRole = intel.Roles[0].Label
	intel.DominantCity = intel.Locations[0].Label
	intel.Trend, intel.TrendDelta = weeklyTrend(recent, prior)
	return intel, true
}
