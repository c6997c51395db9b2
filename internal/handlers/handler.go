package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode"

	"github.com/aura-labs/aura/internal/store"
)

const maxMessageLength = 4096

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	db    store.DataStore
	cache *store.RedisStore // optional, nil when Redis is not configured
}

// NewHandler creates a new Handler with the given stores.
func NewHandler(db store.DataStore, cache *store.RedisStore) *Handler {
	return &Handler{db: db, cache: cache}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends a JSON error response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, map[string]string{"error": message})
}

// sanitizeID trims and limits identifiers, removing control characters.
func sanitizeID(id string) string {
	id = strings.TrimSpace(id)

	id = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, id)

	if len(id) > 100 {
		id = id[:100]
	}

	return id
}
