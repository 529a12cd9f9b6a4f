package insight_test

import (
	"context"
	"strings"
	"testing"

	"jobseek/market-service/internal/analytics"
	"jobseek/market-service/internal/insight"
)

func TestMarketSummary_PromptCarriesSnapshot(t *testing.T) {
	llm := &fakeCompleter{reply: "The market is hot."}
	snap := insight.MarketSnapshot{
		TopSkills: []analytics.LabelCount{
			{Label: "python", Count: 12},
			{Label: "sql", Count: 9},
		},
		Salaries:    analytics.SalaryMetrics{Mean: 45000, Count: 8},
		TopRole:     "Software Engineer",
		TopIndustry: "IT/Telecommunication",
	}
	brief, err := insight.MarketSummary(context.Background(), llm, snap)
	if err != nil {
		t.Fatalf("MarketSummary: %v", err)
	}
	if brief != "The market is hot." {
		t.Errorf("brief = %q, want raw model reply", brief)
	}
	for _, want := range []string{"python (12)", "sql (9)", "BDT 45000/month", "Software Engineer", "IT/Telecommunication"} {
		if !strings.Contains(llm.lastUser, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestMarketSummary_NegotiableWithoutSalaryData(t *testing.T) {
	llm := &fakeCompleter{reply: "brief"}
	snap := insight.MarketSnapshot{TopRole: "Engineer", TopIndustry: "General/Other"}
	if _, err := insight.MarketSummary(context.Background(), llm, snap); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(llm.lastUser, "Negotiable") {
		t.Error("prompt should fall back to the negotiable salary line")
	}
}
