package analytics_test

import (
	"testing"
	"time"

	"jobseek/market-service/internal/analytics"
	"jobseek/market-service/internal/model"
)

func p(title, company, skills, industry, location string, scraped time.Time) model.JobPosting {
	return model.JobPosting{
		Title: title, Company: company, SkillsText: skills,
		Industry: industry, Location: location, DateScraped: scraped,
	}
}

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

// ── Skill frequency ────────────────────────────────────────────────────────

func TestSkillFrequency_RankingAndTies(t *testing.T) {
	corpus := []model.JobPosting{
		p("A", "x", "python, sql", "", "", day),
		p("B", "y", "python, golang", "", "", day),
		p("C", "z", "sql", "", "", day),
	}
	got := analytics.SkillFrequency(corpus, 0)
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	if got[0].Label != "python" || got[0].Count != 2 {
		t.Errorf("row 0 = %+v, want python(2)", got[0])
	}
	// sql and golang both count 1; sql was seen first and must stay ahead.
	if got[1].Label != "sql" || got[2].Label != "golang" {
		t.Errorf("tie-break violated first-seen order: %+v", got)
	}
}

func TestSkillFrequency_TopN(t *testing.T) {
	corpus := []model.JobPosting{
		p("A", "x", "python, sql, golang, excel", "", "", day),
	}
	if got := analytics.SkillFrequency(corpus, 2); len(got) != 2 {
		t.Errorf("topN=2 returned %d rows", len(got))
	}
}

// ── Sentinel exclusion ─────────────────────────────────────────────────────

// The sum of table counts must equal the number of rows with a real value:
// "Not Specified" never enters the table.
func TestDegreeCounts_ExcludesNotSpecified(t *testing.T) {
	corpus := []model.JobPosting{
		p("A", "x", "Education: BSc CSE", "", "", day),
		p("B", "y", "Education: MBA", "", "", day),
		p("C", "z", "no degree mentioned", "", "", day),
	}
	got := analytics.DegreeCounts(corpus)
	total := 0
	for _, row := range got {
		if row.Label == "Not Specified" {
			t.Fatal("Not Specified leaked into the table")
		}
		total += row.Count
	}
	if total != 2 {
		t.Errorf("total count = %d, want 2", total)
	}
}

func TestExperienceCounts_ExcludesNotSpecified(t *testing.T) {
	corpus := []model.JobPosting{
		p("A", "x", "Experience: 2 years", "", "", day),
		p("B", "y", "Experience: 7 years", "", "", day),
		p("C", "z", "Fresher welcome", "", "", day),
	}
	got := analytics.ExperienceCounts(corpus)
	total := 0
	for _, row := range got {
		if row.Label == "Not Specified" {
			t.Fatal("Not Specified leaked into the table")
		}
		total += row.Count
	}
	if total != 2 {
		t.Errorf("total count = %d, want 2", total)
	}
}

// ── Determinism ────────────────────────────────────────────────────────────

func TestDegreeCounts_StableAcrossReads(t *testing.T) {
	corpus := []model.JobPosting{
		p("A", "x", "Education: BSc CSE", "", "", day),
		p("B", "y", "Education: BSc EEE", "", "", day),
		p("C", "z", "Education: MBA", "", "", day),
	}
	first := analytics.DegreeCounts(corpus)
	for i := 0; i < 10; i++ {
		again := analytics.DegreeCounts(corpus)
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("read %d row %d: %+v != %+v", i, j, again[j], first[j])
			}
		}
	}
}

// ── Company ranking ────────────────────────────────────────────────────────

func TestTopCompanies(t *testing.T) {
	corpus := []model.JobPosting{
		p("A", "Acme", "", "", "", day),
		p("B", "Acme", "", "", "", day),
		p("C", "Globex", "", "", "", day),
	}
	got := analytics.TopCompanies(corpus, 1)
	if len(got) != 1 || got[0].Label != "Acme" || got[0].Count != 2 {
		t.Errorf("TopCompanies = %+v, want [Acme(2)]", got)
	}
}
