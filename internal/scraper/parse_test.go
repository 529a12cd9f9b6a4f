package scraper_test

import (
	"testing"
	"time"

	"jobseek/market-service/internal/model"
	"jobseek/market-service/internal/scraper"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func newTestParser() *scraper.Parser {
	return scraper.NewParser("Dhaka", fixedNow)
}

// ── Required fields ────────────────────────────────────────────────────────

func TestParse_DropsEmptyTitle(t *testing.T) {
	raws := []model.RawPosting{
		{JobTitle: "", CompanyName: "Acme"},
		{JobTitle: "None", CompanyName: "Acme"},
		{JobTitle: "   ", CompanyName: "Acme"},
		{JobTitle: "Data Analyst", CompanyName: "Acme"},
	}
	accepted, rejected := newTestParser().Parse(raws)
	if len(accepted) != 1 {
		t.Fatalf("accepted %d postings, want 1", len(accepted))
	}
	if len(rejected) != 3 {
		t.Fatalf("rejected %d postings, want 3", len(rejected))
	}
	for _, r := range rejected {
		if r.Reason != scraper.RejectEmptyTitle {
			t.Errorf("reject reason = %q, want %q", r.Reason, scraper.RejectEmptyTitle)
		}
	}
}

// ── Skills composite ───────────────────────────────────────────────────────

func TestParse_SkillsComposite(t *testing.T) {
	cases := []struct {
		experience string
		education  string
		want       string
	}{
		{"2 years", "BSc CSE", "Experience: 2 years, Education: BSc CSE"},
		{"2 years", "", "Experience: 2 years"},
		{"", "BSc CSE", "Education: BSc CSE"},
		{"None", "None", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		accepted, _ := newTestParser().Parse([]model.RawPosting{
			{JobTitle: "Engineer", Experience: c.experience, Education: c.education},
		})
		if len(accepted) != 1 {
			t.Fatalf("accepted %d, want 1", len(accepted))
		}
		if got := accepted[0].SkillsText; got != c.want {
			t.Errorf("skills for (%q, %q) = %q, want %q", c.experience, c.education, got, c.want)
		}
	}
}

// ── Location fallback ──────────────────────────────────────────────────────

func TestParse_LocationFallback(t *testing.T) {
	cases := []struct {
		location string
		want     string
	}{
		{"Chattogram", "Chattogram"},
		{"", "Dhaka"},
		{"None", "Dhaka"},
		{"none", "Dhaka"},
	}
	for _, c := range cases {
		accepted, _ := newTestParser().Parse([]model.RawPosting{
			{JobTitle: "Engineer", Location: c.location},
		})
		if got := accepted[0].Location; got != c.want {
			t.Errorf("location %q → %q, want %q", c.location, got, c.want)
		}
	}
}

// ── Dates ──────────────────────────────────────────────────────────────────

func TestParse_PublishDate(t *testing.T) {
	cases := []struct {
		publish string
		want    time.Time
	}{
		{"2025-03-08T09:30:00Z", time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)},
		{"2025-03-08", time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)},
		{"", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"None", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"not a date", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		accepted, _ := newTestParser().Parse([]model.RawPosting{
			{JobTitle: "Engineer", PublishDate: c.publish},
		})
		if got := accepted[0].DateScraped; !got.Equal(c.want) {
			t.Errorf("publish %q → %v, want %v", c.publish, got, c.want)
		}
	}
}

// ── Industry assignment ────────────────────────────────────────────────────

func TestParse_ClassifierOverridesCategory(t *testing.T) {
	accepted, _ := newTestParser().Parse([]model.RawPosting{
		{JobTitle: "Software Engineer", Education: "BSc CSE", Category: "NGO/Development"},
	})
	if got := accepted[0].Industry; got != "IT/Telecommunication" {
		t.Errorf("industry = %q, want IT/Telecommunication", got)
	}
}

func TestParse_CategoryFallbackWhenUnclassified(t *testing.T) {
	accepted, _ := newTestParser().Parse([]model.RawPosting{
		{JobTitle: "Chef de Partie", CompanyName: "Roadside Bistro", Category: "NGO/Development"},
	})
	if got := accepted[0].Industry; got != "NGO/Development" {
		t.Errorf("industry = %q, want the fetch-category fallback", got)
	}
}
