package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Board-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "internhub",
			Subsystem: "board_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "internhub",
			Subsystem: "board_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// Application submissions by outcome (created, duplicate, not_found, forbidden, error)
	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "internhub",
			Subsystem: "board_api",
			Name:      "applications_submitted_total",
			Help:      "Application submissions by outcome",
		},
		[]string{"outcome"},
	)

	// Application status changes by target state
	ApplicationStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "internhub",
			Subsystem: "board_api",
			Name:      "application_status_changes_total",
			Help:      "Application status transitions by target state",
		},
		[]string{"status"},
	)

	// Authorization denials by stage (unauthenticated, role, ownership)
	AuthDenials = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "internhub",
			Subsystem: "board_api",
			Name:      "auth_denials_total",
			Help:      "Requests denied by the auth pipeline, by stage",
		},
		[]string{"stage"},
	)
)

// RecordRequest records one completed HTTP request.
func RecordRequest(method, endpoint, status string, seconds float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(seconds)
}
