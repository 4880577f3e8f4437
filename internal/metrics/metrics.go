// Package metrics exposes Prometheus instrumentation for the HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics collects request counts and latencies, labeled by method,
// route pattern and status code.
type HTTPMetrics struct {
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewHTTPMetrics creates the HTTP metrics collectors under the given
// namespace.
func NewHTTPMetrics(namespace string) *HTTPMetrics {
	return &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Register registers all collectors with the given registry.
func (m *HTTPMetrics) Register(registry prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.requestsTotal, m.requestLatency} {
		if err := registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Observe records one completed request.
func (m *HTTPMetrics) Observe(method, route string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}
