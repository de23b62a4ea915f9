// Package metrics provides Prometheus metrics for the PortalWatch service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the Prometheus registry and the service's instruments.
type Manager struct {
	registry *prometheus.Registry

	evaluations     prometheus.Counter
	scoringLatency  prometheus.Histogram
	sourceFailures  *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	resolutionFails prometheus.Counter
}

// New creates a metrics manager with its own registry.
func New() *Manager {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Manager{
		registry: registry,
		evaluations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "portalwatch",
			Name:      "evaluations_total",
			Help:      "Completed transfer probability evaluations.",
		}),
		scoringLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "portalwatch",
			Name:      "evaluation_duration_seconds",
			Help:      "End-to-end aggregate+score latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		sourceFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portalwatch",
			Name:      "source_failures_total",
			Help:      "External source fetches that degraded to an empty result.",
		}, []string{"source"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portalwatch",
			Name:      "http_requests_total",
			Help:      "API requests by path and status.",
		}, []string{"path", "status"}),
		resolutionFails: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "portalwatch",
			Name:      "resolution_failures_total",
			Help:      "Player name lookups that could not resolve a team.",
		}),
	}
}

// RecordEvaluation counts a completed evaluation and its latency.
func (m *Manager) RecordEvaluation(d time.Duration) {
	m.evaluations.Inc()
	m.scoringLatency.Observe(d.Seconds())
}

// RecordSourceFailure counts a degraded source fetch.
func (m *Manager) RecordSourceFailure(source string) {
	m.sourceFailures.WithLabelValues(source).Inc()
}

// RecordHTTPRequest counts an API request.
func (m *Manager) RecordHTTPRequest(path, status string) {
	m.httpRequests.WithLabelValues(path, status).Inc()
}

// RecordResolutionFailure counts a failed player-to-team resolution.
func (m *Manager) RecordResolutionFailure() {
	m.resolutionFails.Inc()
}

// Handler returns the scrape endpoint handler for this registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
