package scraper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobseek/market-service/internal/model"
)

func newServerFetcher(ts *httptest.Server, maxPages int) *Fetcher {
	return &Fetcher{
		baseURL:  ts.URL,
		maxPages: maxPages,
		client:   ts.Client(),
		sleep:    func(time.Duration) {}, // no real delays in tests
	}
}

func page(titles ...string) []model.RawPosting {
	raws := make([]model.RawPosting, len(titles))
	for i, t := range titles {
		raws[i] = model.RawPosting{JobTitle: t}
	}
	return raws
}

// ── Response shapes ────────────────────────────────────────────────────────

func TestDecodeList_BareArray(t *testing.T) {
	body, _ := json.Marshal(page("Engineer"))
	got, err := decodeList(body)
	if err != nil || len(got) != 1 {
		t.Fatalf("decodeList(array) = (%v, %v), want 1 record", got, err)
	}
}

func TestDecodeList_WrappedObject(t *testing.T) {
	body, _ := json.Marshal(listResponse{Data: page("Engineer", "Analyst")})
	got, err := decodeList(body)
	if err != nil || len(got) != 2 {
		t.Fatalf("decodeList(wrapped) = (%v, %v), want 2 records", got, err)
	}
}

func TestDecodeList_Garbage(t *testing.T) {
	if _, err := decodeList([]byte("<html>rate limited</html>")); err == nil {
		t.Error("decodeList(garbage) expected error")
	}
}

// ── Pagination ─────────────────────────────────────────────────────────────

// A short page signals the end of results: no further page is requested.
func TestFetch_StopsOnShortPage(t *testing.T) {
	var requests int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(page("Engineer")) // 1 < pageSize
	}))
	defer ts.Close()

	f := newServerFetcher(ts, 5)
	got, err := f.Fetch(context.Background(), Category{ID: 8, Name: "IT/Telecommunication"})
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if requests != 1 {
		t.Errorf("made %d requests, want 1", requests)
	}
	if len(got) != 1 || got[0].Category != "IT/Telecommunication" {
		t.Errorf("got %+v, want one record tagged with the category", got)
	}
}

func TestFetch_StopsOnEmptyPage(t *testing.T) {
	var requests int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			json.NewEncoder(w).Encode(page(make([]string, pageSize)...))
			return
		}
		json.NewEncoder(w).Encode([]model.RawPosting{})
	}))
	defer ts.Close()

	f := newServerFetcher(ts, 5)
	got, err := f.Fetch(context.Background(), Category{ID: 8, Name: "IT/Telecommunication"})
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if requests != 2 {
		t.Errorf("made %d requests, want 2", requests)
	}
	if len(got) != pageSize {
		t.Errorf("got %d records, want %d", len(got), pageSize)
	}
}

// An HTTP error mid-pagination returns the pages fetched so far together
// with the error, so the worker can keep the partial batch.
func TestFetch_PartialOnHTTPError(t *testing.T) {
	var requests int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			json.NewEncoder(w).Encode(page(make([]string, pageSize)...))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	f := newServerFetcher(ts, 5)
	got, err := f.Fetch(context.Background(), Category{ID: 8, Name: "IT/Telecommunication"})
	if err == nil {
		t.Fatal("expected error from 429 page")
	}
	if len(got) != pageSize {
		t.Errorf("kept %d records from before the failure, want %d", len(got), pageSize)
	}
}
