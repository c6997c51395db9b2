package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/aura-labs/aura/internal/api/middleware"
	"github.com/aura-labs/aura/internal/handlers"
	"github.com/aura-labs/aura/internal/store"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(logger zerolog.Logger, db store.DataStore, cache *store.RedisStore, auth *middleware.AuthMiddleware) *chi.Mux {
	r := chi.NewRouter()

	// Metrics middleware (first to capture all requests)
	r.Use(middleware.Metrics)

	// Security middleware
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.MaxBodySize(8 * 1024)) // 8KB max body
	r.Use(middleware.RequireJSON)

	// Standard middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	// CORS - permissive, the web widget is served from anywhere in dev
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.APIKeyHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	h := handlers.NewHandler(db, cache)

	// Metrics endpoint (for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Public routes (no auth required)
	r.Get("/health", h.Health)
	r.Post("/api/chat/send", h.SendMessage)
	r.Get("/api/chat/history", h.History)

	// Manager routes (require the shared agent key)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAgent)

		r.Get("/api/conversations", h.ListConversations)
		r.Get("/api/analytics/summary", h.AnalyticsSummary)
		r.Post("/api/faq", h.CreateFAQ)
		r.Get("/api/faq", h.ListFAQ)
	})

	return r
}
