package handlers

import (
	"net/http"
	"time"
)

// ConversationSummaryOut is one row of the manager conversation list.
type ConversationSummaryOut struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	LastText   string    `json:"last_text"`
	LastTS     time.Time `json:"last_ts"`
}

// ListConversations returns one summary per conversation, most recent
// message first. Manager-only; the auth middleware runs before this.
func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.db.ListConversationSummaries(r.Context())
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "database error")
		return
	}

	out := make([]ConversationSummaryOut, len(summaries))
	for i, cs := range summaries {
		out[i] = ConversationSummaryOut{
			ID:         cs.ID,
			CustomerID: cs.CustomerID,
			LastText:   cs.LastText,
			LastTS:     cs.LastTS,
		}
	}

	h.JSON(w, http.StatusOK, out)
}
