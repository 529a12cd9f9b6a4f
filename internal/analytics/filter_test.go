package analytics_test

import (
	"reflect"
	"testing"

	"jobseek/market-service/internal/analytics"
	"jobseek/market-service/internal/model"
)

func filterCorpus() []model.JobPosting {
	return []model.JobPosting{
		p("Backend Developer", "Acme", "", "IT/Telecommunication", "Dhaka", day),
		p("Backend Developer", "Globex", "", "IT/Telecommunication", "Chattogram", day),
		p("Account Officer", "Globex", "", "Bank/Financial", "Dhaka", day),
		p("Field Officer", "Initech", "", "NGO/Development", "Sylhet", day),
	}
}

func TestFilter_EmptySelectionIncludesAll(t *testing.T) {
	corpus := filterCorpus()
	got := analytics.Filter(corpus, analytics.Selection{})
	if !reflect.DeepEqual(got, corpus) {
		t.Errorf("empty selection changed the corpus: got %d postings, want %d", len(got), len(corpus))
	}
}

func TestFilter_SingleDimension(t *testing.T) {
	got := analytics.Filter(filterCorpus(), analytics.Selection{
		Industries: []string{"IT/Telecommunication"},
	})
	if len(got) != 2 {
		t.Fatalf("got %d postings, want 2", len(got))
	}
	for _, p := range got {
		if p.Industry != "IT/Telecommunication" {
			t.Errorf("posting %q leaked through industry filter", p.Title)
		}
	}
}

func TestFilter_Intersection(t *testing.T) {
	got := analytics.Filter(filterCorpus(), analytics.Selection{
		Industries: []string{"IT/Telecommunication"},
		Locations:  []string{"Dhaka"},
	})
	if len(got) != 1 || got[0].Company != "Acme" {
		t.Errorf("intersection = %+v, want the single Acme posting", got)
	}
}

func TestFilter_MultipleValuesPerDimension(t *testing.T) {
	got := analytics.Filter(filterCorpus(), analytics.Selection{
		Locations: []string{"Dhaka", "Sylhet"},
	})
	if len(got) != 3 {
		t.Errorf("got %d postings, want 3", len(got))
	}
}

func TestFilter_NoMatch(t *testing.T) {
	got := analytics.Filter(filterCorpus(), analytics.Selection{
		Roles: []string{"Pilot"},
	})
	if len(got) != 0 {
		t.Errorf("got %d postings, want 0", len(got))
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	corpus := filterCorpus()
	got := analytics.Filter(corpus, analytics.Selection{Locations: []string{"Dhaka"}})
	if len(got) != 2 || got[0].Company != "Acme" || got[1].Company != "Globex" {
		t.Errorf("filtered order = %+v", got)
	}
}

func TestOptions_SortedDistinct(t *testing.T) {
	opts := analytics.Options(filterCorpus())
	wantIndustries := []string{"Bank/Financial", "IT/Telecommunication", "NGO/Development"}
	if !reflect.DeepEqual(opts.Industries, wantIndustries) {
		t.Errorf("industries = %v, want %v", opts.Industries, wantIndustries)
	}
	wantLocations := []string{"Chattogram", "Dhaka", "Sylhet"}
	if !reflect.DeepEqual(opts.Locations, wantLocations) {
		t.Errorf("locations = %v, want %v", opts.Locations, wantLocations)
	}
	if len(opts.Roles) != 3 {
		t.Errorf("roles = %v, want 3 distinct values", opts.Roles)
	}
}
