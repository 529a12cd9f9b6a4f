package classify_test

import (
	"testing"

	"jobseek/market-service/internal/classify"
)

// ── Years extraction ───────────────────────────────────────────────────────

func TestExperienceYears(t *testing.T) {
	cases := []struct {
		text  string
		years int
		ok    bool
	}{
		{"2 years", 2, true},
		{"At least 1 year", 1, true},
		{"3-5 years", 3, true},
		{"3 to 5 years", 3, true},
		{"10+ years of experience", 10, true},
		{"Experience: 6 years in banking", 6, true},
		{"Experience: 5 Years", 5, true},
		{"2 YEARS experience", 2, true},
		{"Minimum 4 Years of experience", 4, true},
		{"Fresher", 0, false},
		{"", 0, false},
		{"5 team members", 0, false},
	}
	for _, c := range cases {
		years, ok := classify.ExperienceYears(c.text)
		if ok != c.ok || years != c.years {
			t.Errorf("ExperienceYears(%q) = (%d, %v), want (%d, %v)", c.text, years, ok, c.years, c.ok)
		}
	}
}

// Range extraction takes the lower bound.
func TestExperienceYears_RangeLowerBound(t *testing.T) {
	years, ok := classify.ExperienceYears("3-5 years")
	if !ok || years != 3 {
		t.Errorf("ExperienceYears(3-5 years) = (%d, %v), want (3, true)", years, ok)
	}
}

// ── Bucketing ──────────────────────────────────────────────────────────────

func TestExperienceBucket(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"0 years", classify.BucketEntry},
		{"2 years", classify.BucketEntry},
		{"3 years", classify.BucketMid},
		{"5 years", classify.BucketMid},
		{"6 years", classify.BucketSenior},
		{"15+ years", classify.BucketSenior},
		{"Experience: 5 Years", classify.BucketMid},
		{"2 YEARS experience", classify.BucketEntry},
		{"no figure here", classify.NotSpecified},
	}
	for _, c := range cases {
		if got := classify.ExperienceBucket(c.text); got != c.want {
			t.Errorf("ExperienceBucket(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExperienceBucket_Deterministic(t *testing.T) {
	const text = "Experience: 3-5 years"
	first := classify.ExperienceBucket(text)
	for i := 0; i < 10; i++ {
		if got := classify.ExperienceBucket(text); got != first {
			t.Fatalf("run %d: got %q, want %q", i, got, first)
		}
	}
}
