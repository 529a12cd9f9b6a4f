package scraper

import (
	"strings"
	"time"

	"jobseek/market-service/internal/classify"
	"jobseek/market-service/internal/model"
)

// RejectReason explains why a raw record was dropped during normalization.
// Dropping is data-quality filtering, not a fault, but every drop is
// returned so callers can count and log it.
type RejectReason string

const (
	RejectEmptyTitle RejectReason = "empty_title"
)

// Rejected pairs a dropped record with its reason.
type Rejected struct {
	Raw    model.RawPosting
	Reason RejectReason
}

// Parser normalizes raw vendor records into JobPostings.
type Parser struct {
	fallbackLocation string
	now              func() time.Time
}

// NewParser returns a Parser. fallbackLocation replaces absent/"None"
// locations; now supplies the scrape date when the vendor omits a publish
// date (injectable for tests).
func NewParser(fallbackLocation string, now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{fallbackLocation: fallbackLocation, now: now}
}

// Parse normalizes a batch, returning accepted postings in input order plus
// the rejected records with reasons.
func (p *Parser) Parse(raws []model.RawPosting) ([]model.JobPosting, []Rejected) {
	accepted := make([]model.JobPosting, 0, len(raws))
	var rejected []Rejected
	for _, raw := range raws {
		posting, reason := p.parseOne(raw)
		if reason != "" {
			rejected = append(rejected, Rejected{Raw: raw, Reason: reason})
			continue
		}
		accepted = append(accepted, posting)
	}
	return accepted, rejected
}

func (p *Parser) parseOne(raw model.RawPosting) (model.JobPosting, RejectReason) {
	title := cleanField(raw.JobTitle)
	if title == "" {
		return model.JobPosting{}, RejectEmptyTitle
	}

	company := cleanField(raw.CompanyName)
	experience := cleanField(raw.Experience)
	education := cleanField(raw.Education)

	// The skills column is a composite of the labelled free-text fragments
	// the list API exposes; degree and experience extraction reparse it.
	var skillsParts []string
	if experience != "" {
		skillsParts = append(skillsParts, "Experience: "+experience)
	}
	if education != "" {
		skillsParts = append(skillsParts, "Education: "+education)
	}

	location := cleanField(raw.Location)
	if location == "" {
		location = p.fallbackLocation
	}

	// Content-driven classification wins; the fetch category only fills in
	// when no keyword rule matched.
	industry := classify.Industry(title, education, company)
	if industry == classify.FallbackIndustry && raw.Category != "" {
		industry = raw.Category
	}

	return model.JobPosting{
		Title:       title,
		Company:     company,
		SkillsText:  strings.Join(skillsParts, ", "),
		Industry:    industry,
		Location:    location,
		DateScraped: p.scrapeDate(raw.PublishDate),
	}, ""
}

// scrapeDate prefers the vendor publish date, falling back to today (UTC)
// when absent or unparseable.
func (p *Parser) scrapeDate(publishDate string) time.Time {
	today := p.now().UTC().Truncate(24 * time.Hour)
	pd := cleanField(publishDate)
	if pd == "" {
		return today
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, pd); err == nil {
			return t.UTC().Truncate(24 * time.Hour)
		}
	}
	return today
}

// cleanField trims a vendor string and maps the "None" sentinel to empty.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return ""
	}
	return s
}
