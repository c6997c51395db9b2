package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aura-labs/aura/internal/metrics"
	"github.com/aura-labs/aura/internal/models"
)

// FAQItem represents an FAQ entry in API requests and responses.
type FAQItem struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags"`
}

// CreateFAQ persists a new FAQ entry and echoes it back. Manager-only.
func (h *Handler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var item FAQItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item.ID = sanitizeID(item.ID)
	if item.ID == "" {
		h.Error(w, http.StatusBadRequest, "id is required")
		return
	}
	if strings.TrimSpace(item.Question) == "" {
		h.Error(w, http.StatusBadRequest, "question is required")
		return
	}
	if strings.TrimSpace(item.Answer) == "" {
		h.Error(w, http.StatusBadRequest, "answer is required")
		return
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}

	faq := models.FAQ{
		ID:       item.ID,
		Question: item.Question,
		Answer:   item.Answer,
		Tags:     item.Tags,
	}
	if err := h.db.CreateFAQ(r.Context(), faq); err != nil {
		h.Error(w, http.StatusInternalServerError, "failed to store FAQ entry")
		return
	}

	metrics.FAQCreated.Inc()

	if h.cache != nil {
		h.cache.InvalidateSummary(r.Context())
	}

	h.JSON(w, http.StatusCreated, item)
}

// ListFAQ returns all FAQ entries in insertion order. Manager-only.
func (h *Handler) ListFAQ(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.db.ListFAQs(r.Context())
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "database error")
		return
	}

	out := make([]FAQItem, len(faqs))
	for i, faq := range faqs {
		tags := faq.Tags
		if tags == nil {
			tags = []string{}
		}
		out[i] = FAQItem{ID: faq.ID, Question: faq.Question, Answer: faq.Answer, Tags: tags}
	}

	h.JSON(w, http.StatusOK, out)
}
