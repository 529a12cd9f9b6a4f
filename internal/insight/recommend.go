package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"jobseek/market-service/internal/model"
)

const (
	catalogueLimit  = 80 // keeps the prompt within context budget
	skillsTextLimit = 120
)

const recommendSystem = "You are a precise career-matching engine. " +
	"Always reply with a valid JSON array only, no prose, no markdown fences."

// Recommendation is one matched posting, enriched from the corpus sample the
// model picked from.
type Recommendation struct {
	Rank       int    `json:"rank"`
	JobTitle   string `json:"job_title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Industry   string `json:"industry"`
	MatchScore int    `json:"match_score"`
	Reason     string `json:"reason"`
}

// buildCataloguePrompt renders the candidate profile and a compact job
// catalogue. IDs index into the sample slice, so replies map back to real
// postings.
func buildCataloguePrompt(profile string, sample []model.JobPosting, topN int) string {
	lines := make([]string, 0, len(sample))
	for i, p := range sample {
		skills := p.SkillsText
		if runes := []rune(skills); len(runes) > skillsTextLimit {
			skills = string(runes[:skillsTextLimit])
		}
		lines = append(lines, fmt.Sprintf("ID:%d | %s @ %s | Loc:%s | Industry:%s | Skills/Info:%s",
			i, p.Title, p.Company, p.Location, p.Industry, skills))
	}

	return fmt.Sprintf(`You are a career advisor specialising in the Bangladesh job market.

CANDIDATE PROFILE:
"""%s"""

AVAILABLE JOBS (format: ID | Title @ Company | Location | Industry | Skills/Info):
%s

TASK:
Select the TOP %d jobs that best match this candidate.
For each match return:
  - job_id   : the exact integer ID from the list above
  - match_score : integer 0-100
  - reason   : 1-2 sentences explaining the match

Return ONLY a valid JSON array, no markdown, no explanation outside the JSON.`,
		profile, strings.Join(lines, "\n"), topN)
}

// Recommend matches a free-text candidate profile against a corpus sample.
// The model reply may be malformed or fenced; parsing is lenient and matches
// pointing at nonexistent IDs are skipped rather than failing the call.
func Recommend(ctx context.Context, llm Completer, profile string, corpus []model.JobPosting, topN int) ([]Recommendation, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("no postings to match against")
	}
	sample := corpus
	if len(sample) > catalogueLimit {
		sample = sample[:catalogueLimit]
	}

	raw, err := llm.Complete(ctx, recommendSystem, buildCataloguePrompt(profile, sample, topN), matchLimit)
	if err != nil {
		return nil, err
	}

	matches := ParseMatches(raw)
	if len(matches) == 0 {
		return nil, fmt.Errorf("could not parse model reply as a match array")
	}

	recs := make([]Recommendation, 0, topN)
	for _, m := range matches {
		if len(recs) == topN {
			break
		}
		id := int(m.Get("job_id").Int())
		if id < 0 || id >= len(sample) || !m.Get("job_id").Exists() {
			continue // hallucinated ID
		}
		p := sample[id]
		recs = append(recs, Recommendation{
			Rank:       len(recs) + 1,
			JobTitle:   p.Title,
			Company:    p.Company,
			Location:   p.Location,
			Industry:   p.Industry,
			MatchScore: int(m.Get("match_score").Int()),
			Reason:     m.Get("reason").String(),
		})
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("model returned matches but none mapped to real postings")
	}
	return recs, nil
}

// ParseMatches extracts the JSON array from a raw model reply, tolerating
// markdown fences and leading prose around the array.
func ParseMatches(raw string) []gjson.Result {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```") {
		parts := strings.SplitN(clean, "```", 3)
		if len(parts) >= 2 {
			clean = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[1]), "json"))
		}
	}
	if i := strings.IndexByte(clean, '['); i > 0 {
		clean = clean[i:]
	}
	parsed := gjson.Parse(clean)
	if !parsed.IsArray() {
		return nil
	}
	return parsed.Array()
}
