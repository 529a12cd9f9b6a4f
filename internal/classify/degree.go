package classify

import "strings"

// NotSpecified marks text that matched no extraction rule. Frequency tables
// must exclude it.
const NotSpecified = "Not Specified"

// DegreeRule pairs a degree tag with its trigger patterns.
type DegreeRule struct {
	Tag      string
	Patterns []string
}

// degreeRules is tried top to bottom, first match wins. Higher degrees come
// first so that e.g. "MSc preferred, BSc acceptable" tags as MSc and
// "post graduate" never falls through to the bachelor rule.
var degreeRules = []DegreeRule{
	{"PhD / Doctorate", []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{"MBA", []string{"mba"}},
	{"MSc / MS", []string{"msc", "m.sc", "master", "post graduate", "postgraduate"}},
	{"BBA", []string{"bba"}},
	{"BSc / BS", []string{"bsc", "b.sc", "bachelor of science", "b.s in"}},
	{"B.Com", []string{"bcom", "b.com"}},
	{"Bachelor / Honours", []string{"bachelor", "honours", "honors", "graduation"}},
	{"Diploma", []string{"diploma"}},
	{"HSC / A-Level", []string{"hsc", "a-level", "a level"}},
	{"SSC / O-Level", []string{"ssc", "o-level", "o level"}},
}

// Degree extracts a degree tag from free text (typically the education
// fragment of the skills column). Unmatched text yields NotSpecified.
func Degree(text string) string {
	lower := strings.ToLower(text)
	if lower == "" {
		return NotSpecified
	}
	for _, rule := range degreeRules {
		for _, pat := range rule.Patterns {
			if strings.Contains(lower, pat) {
				return rule.Tag
			}
		}
	}
	return NotSpecified
}
