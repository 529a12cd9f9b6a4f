package analytics

import (
	"jobseek/market-service/internal/classify"
	"jobseek/market-service/internal/model"
)

// Cross-table restriction: only the top industries and degree tags by
// marginal frequency enter the matrix. Everything outside is excluded, not
// bucketed into an "other" row.
const (
	DefaultTopIndustries = 8
	DefaultTopDegrees    = 6
)

// CrossTable is a count matrix over a restricted industry × degree index.
// Counts[i][j] is the number of postings in Industries[i] requiring
// Degrees[j].
type CrossTable struct {
	Industries []string `json:"industries"`
	Degrees    []string `json:"degrees"`
	Counts     [][]int  `json:"counts"`
}

// Empty reports whether the matrix has no rows or columns.
func (t CrossTable) Empty() bool {
	return len(t.Industries) == 0 || len(t.Degrees) == 0
}

// IndustryDegreeMatrix cross-tabulates industry against recomputed degree
// tags, restricted to the topIndustries × topDegrees most frequent labels
// (≤ 0 selects the defaults). Postings with an unspecified degree are
// excluded before the marginals are taken.
func IndustryDegreeMatrix(corpus []model.JobPosting, topIndustries, topDegrees int) CrossTable {
	if topIndustries <= 0 {
		topIndustries = DefaultTopIndustries
	}
	if topDegrees <= 0 {
		topDegrees = DefaultTopDegrees
	}

	type pair struct{ industry, degree string }
	pairs := make([]pair, 0, len(corpus))
	industries := newCounter()
	degrees := newCounter()
	for _, p := range corpus {
		tag := classify.Degree(p.SkillsText)
		if tag == classify.NotSpecified || p.Industry == "" {
			continue
		}
		industries.add(p.Industry)
		degrees.add(tag)
		pairs = append(pairs, pair{p.Industry, tag})
	}

	table := CrossTable{}
	indexOf := func(rows []LabelCount) map[string]int {
		idx := make(map[string]int, len(rows))
		for i, r := range rows {
			idx[r.Label] = i
		}
		return idx
	}
	indRows := truncate(industries.table(), topIndustries)
	degRows := truncate(degrees.table(), topDegrees)
	indIdx, degIdx := indexOf(indRows), indexOf(degRows)

	for _, r := range indRows {
		table.Industries = append(table.Industries, r.Label)
	}
	for _, r := range degRows {
		table.Degrees = append(table.Degrees, r.Label)
	}
	table.Counts = make([][]int, len(indRows))
	for i := range table.Counts {
		table.Counts[i] = make([]int, len(degRows))
	}
	for _, pr := range pairs {
		i, okI := indIdx[pr.industry]
		j, okJ := degIdx[pr.degree]
		if okI && okJ {
			table.Counts[i][j]++
		}
	}
	return table
}
