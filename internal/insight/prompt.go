package insight

import (
	"context"
	"fmt"
	"strings"

	"jobseek/market-service/internal/analytics"
)

// MarketSnapshot carries the analytics scalars the summary prompt is built
// from. The analytics engine supplies it; this package never recomputes.
type MarketSnapshot struct {
	TopSkills   []analytics.LabelCount
	Salaries    analytics.SalaryMetrics
	TopRole     string
	TopIndustry string
}

const summarySystem = "You are a concise, data-driven labour-market analyst. " +
	"Respond only with the requested brief, no preamble."

// buildSummaryPrompt renders the snapshot into the executive-brief prompt.
func buildSummaryPrompt(snap MarketSnapshot) string {
	skillParts := make([]string, 0, len(snap.TopSkills))
	for _, s := range snap.TopSkills {
		skillParts = append(skillParts, fmt.Sprintf("%s (%d)", s.Label, s.Count))
	}

	salaryLine := "• Salary data: Most employers list salary as 'Negotiable'"
	if snap.Salaries.Count > 0 {
		salaryLine = fmt.Sprintf("• Average offered salary: BDT %.0f/month", snap.Salaries.Mean)
	}

	var b strings.Builder
	b.WriteString("You are a senior labour-market analyst specialising in the\nBangladesh job market.\n\n")
	b.WriteString("Based on the following real data extracted from recent job postings on\n")
	b.WriteString("BDJobs.com (the largest job portal in Bangladesh), write a concise (~200 words)\n")
	b.WriteString("executive market intelligence brief.\n\n")
	b.WriteString("DATA SNAPSHOT\n─────────────\n")
	fmt.Fprintf(&b, "- Top in-demand roles/requirements (with frequency): %s\n", strings.Join(skillParts, ", "))
	b.WriteString(salaryLine + "\n")
	fmt.Fprintf(&b, "- Most common job role: %s\n", snap.TopRole)
	fmt.Fprintf(&b, "- Dominant industry: %s\n\n", snap.TopIndustry)
	b.WriteString("REQUIREMENTS\n")
	b.WriteString("1. Open with a one-sentence market headline about Bangladesh job market.\n")
	b.WriteString("2. Highlight 2-3 key hiring trends visible in this data.\n")
	b.WriteString("3. Comment on which industries are hiring most aggressively.\n")
	b.WriteString("4. Provide 2 actionable recommendations for job seekers in Bangladesh.\n")
	b.WriteString("5. Close with a forward-looking outlook (1-2 sentences).\n\n")
	b.WriteString("Write in a professional, data-driven tone suitable for an executive\ndashboard. Avoid filler phrases. Be specific to Bangladesh context.")
	return b.String()
}

// MarketSummary asks the model for the executive brief. The reply is raw
// text; the caller renders it as-is.
func MarketSummary(ctx context.Context, llm Completer, snap MarketSnapshot) (string, error) {
	return llm.Complete(ctx, summarySystem, buildSummaryPrompt(snap), summaryLimit)
}
