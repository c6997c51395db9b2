package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newGuardedHandler(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	auth, err := NewAuthMiddleware("manager-demo-key")
	if err != nil {
		t.Fatal(err)
	}
	called := false
	h := auth.RequireAgent(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	return h, &called
}

func TestRequireAgentMissingKey(t *testing.T) {
	h, called := newGuardedHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if *called {
		t.Fatal("handler must not run without a key")
	}
}

func TestRequireAgentWrongKey(t *testing.T) {
	h, called := newGuardedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	req.Header.Set(APIKeyHeader, "not-the-key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if *called {
		t.Fatal("handler must not run with a wrong key")
	}
}

func TestRequireAgentCorrectKey(t *testing.T) {
	h, called := newGuardedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	req.Header.Set(APIKeyHeader, "manager-demo-key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !*called {
		t.Fatal("handler should run with the correct key")
	}
}
