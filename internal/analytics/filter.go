package analytics

import (
	"sort"

	"jobseek/market-service/internal/model"
)

// Selection holds the user-chosen filter values per dimension. An empty
// slice on a dimension means "no constraint", never "exclude all".
type Selection struct {
	Industries []string `json:"industries"`
	Roles      []string `json:"roles"`
	Locations  []string `json:"locations"`
}

// FilterOptions lists the distinct filterable values per dimension, sorted.
type FilterOptions struct {
	Industries []string `json:"industries"`
	Roles      []string `json:"roles"`
	Locations  []string `json:"locations"`
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func member(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}

// Filter returns the postings matching every non-empty dimension of the
// selection. Pure set intersection, no side effects; input order preserved.
func Filter(corpus []model.JobPosting, sel Selection) []model.JobPosting {
	industries := toSet(sel.Industries)
	roles := toSet(sel.Roles)
	locations := toSet(sel.Locations)

	out := make([]model.JobPosting, 0, len(corpus))
	for _, p := range corpus {
		if member(industries, p.Industry) && member(roles, p.Title) && member(locations, p.Location) {
			out = append(out, p)
		}
	}
	return out
}

// Options extracts the sorted distinct values per filterable dimension.
func Options(corpus []model.JobPosting) FilterOptions {
	distinct := func(get func(model.JobPosting) string) []string {
		seen := make(map[string]struct{})
		var vals []string
		for _, p := range corpus {
			v := get(p)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				vals = append(vals, v)
			}
		}
		sort.Strings(vals)
		return vals
	}
	return FilterOptions{
		Industries: distinct(func(p model.JobPosting) string { return p.Industry }),
		Roles:      distinct(func(p model.JobPosting) string { return p.Title }),
		Locations:  distinct(func(p model.JobPosting) string { return p.Location }),
	}
}
