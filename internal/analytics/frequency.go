// Package analytics computes market-intelligence aggregates over the
// normalized corpus: frequency tables, cross tables, freshness and trend
// deltas, and per-company hiring profiles. Everything here is a pure
// function of the corpus (and, where time matters, an explicit "now").
package analytics

import (
	"sort"

	"jobseek/market-service/internal/classify"
	"jobseek/market-service/internal/model"
)

// LabelCount is one row of a frequency table.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// counter counts labels while remembering first-seen order, so that ties in
// the sorted output break by first occurrence rather than alphabetically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// table returns rows sorted by count descending; ties keep first-seen order.
func (c *counter) table() []LabelCount {
	rows := make([]LabelCount, 0, len(c.order))
	for _, label := range c.order {
		rows = append(rows, LabelCount{Label: label, Count: c.counts[label]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	return rows
}

func truncate(rows []LabelCount, topN int) []LabelCount {
	if topN > 0 && len(rows) > topN {
		return rows[:topN]
	}
	return rows
}

// SkillFrequency ranks skill tokens across the corpus, most frequent first.
// topN ≤ 0 returns the full table.
func SkillFrequency(corpus []model.JobPosting, topN int) []LabelCount {
	c := newCounter()
	for _, p := range corpus {
		for _, tok := range classify.SkillTokens(p.SkillsText) {
			c.add(tok)
		}
	}
	return truncate(c.table(), topN)
}

// DegreeCounts ranks degree tags recomputed from the skills text. The
// "Not Specified" sentinel never appears in the table.
func DegreeCounts(corpus []model.JobPosting) []LabelCount {
	c := newCounter()
	for _, p := range corpus {
		if tag := classify.Degree(p.SkillsText); tag != classify.NotSpecified {
			c.add(tag)
		}
	}
	return c.table()
}

// ExperienceCounts ranks experience buckets, excluding "Not Specified".
func ExperienceCounts(corpus []model.JobPosting) []LabelCount {
	c := newCounter()
	for _, p := range corpus {
		if b := classify.ExperienceBucket(p.SkillsText); b != classify.NotSpecified {
			c.add(b)
		}
	}
	return c.table()
}

// RoleCounts ranks job titles.
func RoleCounts(corpus []model.JobPosting) []LabelCount {
	c := newCounter()
	for _, p := range corpus {
		if p.Title != "" {
			c.add(p.Title)
		}
	}
	return c.table()
}

// IndustryCounts ranks the stored industry labels.
func IndustryCounts(corpus []model.JobPosting) []LabelCount {
	c := newCounter()
	for _, p := range corpus {
		if p.Industry != "" {
			c.add(p.Industry)
		}
	}
	return c.table()
}

// LocationCounts ranks posting locations.
func LocationCounts(corpus []model.JobPosting) []LabelCount {
	c := newCounter()
	for _, p := range corpus {
		if p.Location != "" {
			c.add(p.Location)
		}
	}
	return c.table()
}

// TopCompanies returns the n companies with the most open postings.
func TopCompanies(corpus []model.JobPosting, n int) []LabelCount {
	c := newCounter()
	for _, p := range corpus {
		if p.Company != "" {
			c.add(p.Company)
		}
	}
	return truncate(c.table(), n)
}
