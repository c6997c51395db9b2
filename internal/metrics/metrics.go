package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aura_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aura_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// Business metrics
	MessagesReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aura_messages_received_total",
			Help: "Total customer messages received",
		},
	)

	RepliesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aura_replies_generated_total",
			Help: "Total bot replies generated",
		},
		[]string{"source"}, // "faq", "intent" or "fallback"
	)

	SentimentsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aura_sentiments_scored_total",
			Help: "Total sentiment records created",
		},
		[]string{"label"},
	)

	UrgentMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aura_urgent_messages_total",
			Help: "Total messages flagged urgent",
		},
	)

	FAQCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aura_faq_created_total",
			Help: "Total FAQ entries created via the API",
		},
	)
)
