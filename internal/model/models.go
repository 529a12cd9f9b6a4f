// Package model defines shared data structures for the market service.
package model

import (
	"strings"
	"time"
)

// RawPosting mirrors one record of the BDJobs list API response.
// Vendor fields arrive as strings; absent values may be "" or the literal
// "None", both of which are treated as empty downstream.
type RawPosting struct {
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	Experience  string `json:"experience"`
	Education   string `json:"eduRec"`
	Deadline    string `json:"deadline"`
	PublishDate string `json:"publishDate"`

	// Category is the human-readable name of the category the record was
	// fetched under. It is only a fallback industry label; the classifier
	// overrides it once normalization runs.
	Category string `json:"-"`
}

// JobPosting is the normalized, persisted unit of the corpus.
// SalaryMin/SalaryMax are nil when the source listed no figures; the empty
// sentinel strings live only at the store boundary.
type JobPosting struct {
	Title       string    `json:"job_title"`
	Company     string    `json:"company"`
	SalaryMin   *float64  `json:"salary_min,omitempty"`
	SalaryMax   *float64  `json:"salary_max,omitempty"`
	SkillsText  string    `json:"skills"`
	Industry    string    `json:"industry"`
	Location    string    `json:"location"`
	DateScraped time.Time `json:"date_scraped"`
}

// PostingKey builds the identity key used for deduplication and upserts:
// lowercase "title|company". Two postings are the same entity iff their
// keys match; nothing else factors into uniqueness.
func PostingKey(title, company string) string {
	return strings.ToLower(strings.TrimSpace(title) + "|" + strings.TrimSpace(company))
}

// Key returns the posting's identity key.
func (p JobPosting) Key() string {
	return PostingKey(p.Title, p.Company)
}
