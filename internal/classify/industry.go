// Package classify derives structured labels (industry, degree, experience,
// skill tokens) from the free-text fields of a posting.
package classify

import "strings"

// FallbackIndustry is returned when no keyword rule matches.
const FallbackIndustry = "General/Other"

// IndustryRule pairs an industry label with its trigger keywords.
type IndustryRule struct {
	Label    string
	Keywords []string
}

// industryRules is an ordered list, not a map: keywords overlap across
// industries ("engineer" appears in IT titles and civil engineering alike),
// so the first rule whose keyword matches wins. Reordering this table
// changes classification results.
var industryRules = []IndustryRule{
	{"IT/Telecommunication", []string{
		"software", "developer", "programmer", "devops", "frontend", "backend",
		"full stack", "fullstack", "database", "sysadmin", "computer", "cse",
		"telecom", "network", "data analyst", "data scientist", "machine learning", "qa engineer",
	}},
	{"Bank/Financial", []string{
		"bank", "finance", "financial", "accountant", "accounts", "audit",
		"insurance", "microfinance", "treasury", "credit",
	}},
	{"Marketing/Sales", []string{
		"marketing", "sales", "brand", "seo", "business development",
		"merchandiser", "digital media", "e-commerce",
	}},
	{"HR/Admin", []string{
		"human resource", "hr ", "recruitment", "admin", "administrative",
		"office manager", "payroll",
	}},
	{"NGO/Development", []string{
		"ngo", "humanitarian", "donor", "advocacy", "social welfare",
		"livelihood", "unicef", "development programme",
	}},
	{"Engineering", []string{
		"engineer", "civil", "mechanical", "electrical", "architect",
		"construction", "site supervisor",
	}},
	{"Garments/Textile", []string{
		"garments", "textile", "knitwear", "apparel", "fabric",
	}},
	{"Healthcare/Pharma", []string{
		"medical", "pharma", "hospital", "nurse", "doctor", "clinical",
	}},
	{"Education/Training", []string{
		"teacher", "lecturer", "trainer", "tutor", "academic", "school",
	}},
}

// Industry assigns one industry label to a posting by substring-matching the
// ordered keyword rules against lowercase(title + education + company). The
// fetch category is ignored here; classification is content-driven.
func Industry(title, education, company string) string {
	text := strings.ToLower(title + " " + education + " " + company)
	for _, rule := range industryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Label
			}
		}
	}
	return FallbackIndustry
}

// IndustryLabels returns the closed label set in rule order, fallback last.
func IndustryLabels() []string {
	labels := make([]string, 0, len(industryRules)+1)
	for _, rule := range industryRules {
		labels = append(labels, rule.Label)
	}
	return append(labels, FallbackIndustry)
}
