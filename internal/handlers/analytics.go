package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aura-labs/aura/internal/analytics"
)

// AnalyticsSummary computes the manager dashboard from a full scan of
// the store. The "since" query parameter is accepted for client
// compatibility but is not applied as a filter: results always cover
// all stored data. A short-lived Redis cache fronts the scan when
// configured; it is invalidated on every write.
func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	_ = r.URL.Query().Get("since") // accepted, not applied

	if h.cache != nil {
		if payload, ok := h.cache.GetCachedSummary(r.Context()); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(payload)
			return
		}
	}

	customerMsgs, err := h.db.ListCustomerMessages(r.Context())
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "database error")
		return
	}
	sentiments, err := h.db.ListSentiments(r.Context())
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "database error")
		return
	}
	rows, err := h.db.ListCustomerSentiments(r.Context())
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "database error")
		return
	}

	summary := analytics.Compute(customerMsgs, sentiments, rows)

	payload, err := json.Marshal(summary)
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "failed to encode summary")
		return
	}

	if h.cache != nil {
		h.cache.CacheSummary(r.Context(), payload)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
