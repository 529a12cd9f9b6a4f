// Package scraper implements posting ingestion: fetching, normalization,
// deduplication and corpus insertion.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobseek/market-service/internal/model"
)

const (
	listURL         = "https://gateway.bdjobs.com/recruitment-account-test/api/JobSearch/GetJobSearch"
	pageSize        = 50
	defaultMaxPages = 2
	httpTimeout     = 15 * time.Second

	// interPageDelay is a fixed sleep, not adaptive backoff: the upstream
	// gateway rate-limits aggressively, and a 429/5xx short-circuits the
	// category anyway.
	interPageDelay = 500 * time.Millisecond
)

// Category is one BDJobs functional category to scrape.
type Category struct {
	ID   int
	Name string
}

// Categories lists the scraped BDJobs categories. The name doubles as the
// fallback industry label before classification runs.
var Categories = []Category{
	{8, "IT/Telecommunication"},
	{2, "Bank/Financial"},
	{10, "Engineering"},
	{3, "Marketing/Sales"},
	{12, "NGO/Development"},
}

// Fetcher pulls paginated raw postings from the BDJobs list API.
type Fetcher struct {
	baseURL  string
	maxPages int
	client   *http.Client
	sleep    func(time.Duration) // injectable for tests
}

// NewFetcher constructs a Fetcher with a shared HTTP client.
func NewFetcher(maxPages int) *Fetcher {
	if maxPages < 1 {
		maxPages = defaultMaxPages
	}
	return &Fetcher{
		baseURL:  listURL,
		maxPages: maxPages,
		client:   &http.Client{Timeout: httpTimeout},
		sleep:    time.Sleep,
	}
}

// listResponse covers both response shapes the gateway serves: a bare JSON
// array, or an object wrapping the array under "data".
type listResponse struct {
	Data []model.RawPosting `json:"data"`
}

// Fetch retrieves up to maxPages pages for one category. Pagination stops
// early on an empty page (end of results) or on a transport/HTTP error: the
// pages fetched so far are returned and the error is reported so the caller
// can log it and continue with other categories.
func (f *Fetcher) Fetch(ctx context.Context, cat Category) ([]model.RawPosting, error) {
	var all []model.RawPosting

	for page := 1; page <= f.maxPages; page++ {
		batch, err := f.fetchPage(ctx, cat.ID, page)
		if err != nil {
			return all, fmt.Errorf("category %q page %d: %w", cat.Name, page, err)
		}
		if len(batch) == 0 {
			break
		}
		for i := range batch {
			batch[i].Category = cat.Name
		}
		all = append(all, batch...)
		slog.Debug("fetched page", "category", cat.Name, "page", page, "records", len(batch))

		if len(batch) < pageSize {
			break
		}
		if page < f.maxPages {
			f.sleep(interPageDelay)
		}
	}

	return all, nil
}

func (f *Fetcher) fetchPage(ctx context.Context, categoryID, page int) ([]model.RawPosting, error) {
	params := url.Values{}
	params.Set("isPro", "1")
	params.Set("rpp", strconv.Itoa(pageSize))
	params.Set("pg", strconv.Itoa(page))
	params.Set("fcatId", strconv.Itoa(categoryID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36")
	req.Header.Set("Referer", "https://bdjobs.com/")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned %d", resp.StatusCode)
	}

	return decodeList(body)
}

// decodeList accepts either a bare array or a {"data": [...]} wrapper.
func decodeList(body []byte) ([]model.RawPosting, error) {
	var postings []model.RawPosting
	if err := json.Unmarshal(body, &postings); err == nil {
		return postings, nil
	}
	var wrapped listResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return wrapped.Data, nil
}
