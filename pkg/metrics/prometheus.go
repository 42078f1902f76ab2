// Package metrics provides Prometheus metrics for the users API.
package metrics

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var invalidNameChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// Manager owns the HTTP metrics of the service.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics. Characters that are not
// valid in a metric name are replaced with underscores.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		ns := invalidNameChars.ReplaceAllString(namespace, "_")
		if ns == "" {
			return
		}
		if ns[0] >= '0' && ns[0] <= '9' {
			ns = "_" + ns
		}
		m.namespace = ns
	}
}

// NewManager creates a metrics manager backed by its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "users_api",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status code",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	m.httpErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "http_errors_total",
			Help:      "Total number of HTTP error responses by endpoint and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	return m
}

// RecordHTTPRequest records one served request.
func (m *Manager) RecordHTTPRequest(endpoint, method string, statusCode int, duration time.Duration) {
	m.httpRequests.WithLabelValues(endpoint, method, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method).Observe(duration.Seconds())

	if statusCode >= http.StatusBadRequest {
		m.httpErrors.WithLabelValues(endpoint, method, ErrorType(statusCode)).Inc()
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ErrorType returns a standardized error type for an HTTP status code.
func ErrorType(statusCode int) string {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return "server_error"
	case statusCode == http.StatusTooManyRequests:
		return "rate_limit"
	case statusCode == http.StatusNotFound:
		return "not_found"
	case statusCode >= http.StatusBadRequest:
		return "client_error"
	default:
		return "unknown"
	}
}
