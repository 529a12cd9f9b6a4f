package classify

import (
	"regexp"
	"strconv"
	"strings"
)

// Experience bucket labels, ordered from junior to senior.
const (
	BucketEntry  = "Entry Level (0–2 yrs)"
	BucketMid    = "Mid Level (3–5 yrs)"
	BucketSenior = "Senior Level (6+ yrs)"
)

// yearsPattern captures the first integer that precedes "year"/"years",
// optionally as the lower bound of a range ("3-5 years", "3 to 5 years").
var yearsPattern = regexp.MustCompile(`(\d+)\s*(?:[-–—~]|to\s+\d+|\+)?\s*(?:\d+\s*)?years?`)

// ExperienceYears extracts the required years of experience from free text,
// case-insensitively. For a range the lower bound drives the result. The
// second return is false when no figure could be extracted.
func ExperienceYears(text string) (int, bool) {
	m := yearsPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExperienceBucket maps free text to a seniority bucket:
// 0-2 is Entry, 3-5 is Mid, 6+ is Senior. Text with no extractable years
// yields NotSpecified, which frequency tables exclude.
func ExperienceBucket(text string) string {
	years, ok := ExperienceYears(text)
	if !ok {
		return NotSpecified
	}
	switch {
	case years <= 2:
		return BucketEntry
	case years <= 5:
		return BucketMid
	default:
		return BucketSenior
	}
}
