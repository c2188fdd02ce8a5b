package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RouterMetrics holds metrics for proxied requests.
type RouterMetrics struct {
	// LatencyHistogram tracks end-to-end route latencies by kind and status.
	// Buckets cover inference-scale latencies (tens of milliseconds to a minute).
	// Labels: kind (lmstudio, ollama), status (success, failure)
	LatencyHistogram *prometheus.HistogramVec

	// RequestsTotal tracks routed requests by kind and status.
	RequestsTotal *prometheus.CounterVec

	// RetriesTotal counts forward attempts beyond the first.
	RetriesTotal prometheus.Counter
}

// DefaultRouteLatencyBuckets are latency buckets for proxied requests. Model
// inference answers routinely take seconds, so the range extends to a minute.
var DefaultRouteLatencyBuckets = []float64{
	0.025, // 25ms
	0.05,  // 50ms
	0.1,   // 100ms
	0.25,  // 250ms
	0.5,   // 500ms
	1.0,   // 1s
	2.5,   // 2.5s
	5.0,   // 5s
	10.0,  // 10s
	30.0,  // 30s
	60.0,  // 1m
}

// StatusSuccess is the label value for requests that got an upstream response.
const StatusSuccess = "success"

// StatusFailure is the label value for requests that exhausted every attempt.
const StatusFailure = "failure"

// NewRouterMetrics creates and registers router metrics.
// Uses promauto for automatic registration with the default registry.
func NewRouterMetrics() *RouterMetrics {
	return &RouterMetrics{
		LatencyHistogram: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "lmserver",
				Subsystem: "route",
				Name:      "latency_seconds",
				Help:      "Route latency in seconds, broken down by kind and status.",
				Buckets:   DefaultRouteLatencyBuckets,
			},
			[]string{"kind", "status"},
		),
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lmserver",
				Subsystem: "route",
				Name:      "requests_total",
				Help:      "Total number of routed requests, broken down by kind and status.",
			},
			[]string{"kind", "status"},
		),
		RetriesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "lmserver",
				Subsystem: "route",
				Name:      "retries_total",
				Help:      "Total number of forward attempts beyond the first.",
			},
		),
	}
}

// NewRouterMetricsWithRegistry creates router metrics registered with a custom registry.
// Useful for testing to avoid conflicts with the default registry.
func NewRouterMetricsWithRegistry(reg prometheus.Registerer) *RouterMetrics {
	latencyHist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lmserver",
			Subsystem: "route",
			Name:      "latency_seconds",
			Help:      "Route latency in seconds, broken down by kind and status.",
			Buckets:   DefaultRouteLatencyBuckets,
		},
		[]string{"kind", "status"},
	)

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lmserver",
			Subsystem: "route",
			Name:      "requests_total",
			Help:      "Total number of routed requests, broken down by kind and status.",
		},
		[]string{"kind", "status"},
	)

	retriesTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lmserver",
			Subsystem: "route",
			Name:      "retries_total",
			Help:      "Total number of forward attempts beyond the first.",
		},
	)

	reg.MustRegister(latencyHist)
	reg.MustRegister(requestsTotal)
	reg.MustRegister(retriesTotal)

	return &RouterMetrics{
		LatencyHistogram: latencyHist,
		RequestsTotal:    requestsTotal,
		RetriesTotal:     retriesTotal,
	}
}

// RecordLatency records one routed request.
// durationSeconds is the full route duration including retries.
func (m *RouterMetrics) RecordLatency(kind string, durationSeconds float64, success bool) {
	if m == nil || m.LatencyHistogram == nil || m.RequestsTotal == nil {
		return
	}
	status := StatusFailure
	if success {
		status = StatusSuccess
	}
	m.LatencyHistogram.WithLabelValues(kind, status).Observe(durationSeconds)
	m.RequestsTotal.WithLabelValues(kind, status).Inc()
}

// RecordRetry counts one forward attempt beyond the first.
func (m *RouterMetrics) RecordRetry() {
	if m == nil || m.RetriesTotal == nil {
		return
	}
	m.RetriesTotal.Inc()
}
