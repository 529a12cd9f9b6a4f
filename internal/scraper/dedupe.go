package scraper

import "jobseek/market-service/internal/model"

// Dedupe filters candidates whose identity key is already in existingKeys or
// duplicates an earlier candidate in the same batch. existingKeys is mutated:
// each accepted key is added, so within-batch and against-store dedup share
// one mechanism and a second pass over the same batch accepts nothing.
//
// The pass is strictly sequential and order-preserving: given the same input
// order and key set, the accepted slice is identical across runs.
func Dedupe(candidates []model.JobPosting, existingKeys map[string]struct{}) []model.JobPosting {
	accepted := make([]model.JobPosting, 0, len(candidates))
	for _, c := range candidates {
		key := c.Key()
		if _, seen := existingKeys[key]; seen {
			continue
		}
		existingKeys[key] = struct{}{}
		accepted = append(accepted, c)
	}
	return accepted
}
