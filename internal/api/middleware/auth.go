package middleware

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// APIKeyHeader carries the shared agent credential.
const APIKeyHeader = "X-API-Key"

// AuthMiddleware guards manager-only endpoints with a single shared
// secret. It is a placeholder trust mechanism: swap this middleware,
// not the handlers, when real access control arrives.
type AuthMiddleware struct {
	keyHash []byte
}

// NewAuthMiddleware hashes the configured agent key once; requests
// are verified against the hash so the plaintext secret is not kept
// around for comparison.
func NewAuthMiddleware(agentKey string) (*AuthMiddleware, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(agentKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthMiddleware{keyHash: hash}, nil
}

// RequireAgent rejects requests whose X-API-Key header is missing or
// does not match the shared secret. Rejection happens before any
// handler logic runs, so an unauthorized call never touches data.
func (m *AuthMiddleware) RequireAgent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(APIKeyHeader)
		if key == "" {
			jsonError(w, http.StatusUnauthorized, "missing API key")
			return
		}
		if err := bcrypt.CompareHashAndPassword(m.keyHash, []byte(key)); err != nil {
			jsonError(w, http.StatusUnauthorized, "invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func jsonError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
