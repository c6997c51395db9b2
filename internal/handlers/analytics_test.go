package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func fetchSummary(t *testing.T, h *Handler, target string) (int, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.AnalyticsSummary(rec, req)

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	return rec.Code, body
}

func TestAnalyticsSummaryAfterSeed(t *testing.T) {
	h := newTestHandler(t, true)

	code, body := fetchSummary(t, h, "/api/analytics/summary")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	var volume int
	if err := json.Unmarshal(body["volume"], &volume); err != nil {
		t.Fatal(err)
	}
	if volume != 7 {
		t.Fatalf("expected volume 7, got %d", volume)
	}

	var trend struct {
		Pos int `json:"pos"`
		Neg int `json:"neg"`
		Neu int `json:"neu"`
	}
	if err := json.Unmarshal(body["sentiment_trend"], &trend); err != nil {
		t.Fatal(err)
	}
	if trend.Pos != 3 || trend.Neg != 2 || trend.Neu != 2 {
		t.Fatalf("unexpected trend: %+v", trend)
	}

	var churn struct {
		ByCustomer []struct {
			CustomerID string  `json:"customer_id"`
			Risk       float64 `json:"risk"`
		} `json:"by_customer"`
	}
	if err := json.Unmarshal(body["churn"], &churn); err != nil {
		t.Fatal(err)
	}
	if len(churn.ByCustomer) != 2 {
		t.Fatalf("expected 2 churn entries, got %+v", churn.ByCustomer)
	}
	if churn.ByCustomer[0].CustomerID != "cust_001" || churn.ByCustomer[0].Risk != 0.3 {
		t.Fatalf("unexpected churn entry: %+v", churn.ByCustomer[0])
	}

	// top_issues serializes as ["keyword", count] pairs.
	var issues [][2]json.RawMessage
	if err := json.Unmarshal(body["top_issues"], &issues); err != nil {
		t.Fatal(err)
	}
	if len(issues) != 5 {
		t.Fatalf("expected 5 top issues, got %d", len(issues))
	}
}

func TestAnalyticsSummarySinceIsIgnored(t *testing.T) {
	h := newTestHandler(t, true)

	_, plain := fetchSummary(t, h, "/api/analytics/summary")
	_, filtered := fetchSummary(t, h, "/api/analytics/summary?since=2026-01-01")

	plainJSON, _ := json.Marshal(plain)
	filteredJSON, _ := json.Marshal(filtered)
	if string(plainJSON) != string(filteredJSON) {
		t.Fatalf("since must not change the summary:\n%s\n%s", plainJSON, filteredJSON)
	}
}

func TestAnalyticsSummaryEmptyStore(t *testing.T) {
	h := newTestHandler(t, false)

	code, body := fetchSummary(t, h, "/api/analytics/summary")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if string(body["volume"]) != "0" {
		t.Fatalf("expected zero volume, got %s", body["volume"])
	}
	if string(body["top_issues"]) != "[]" {
		t.Fatalf("expected empty issue list, got %s", body["top_issues"])
	}
}
