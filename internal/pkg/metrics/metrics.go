// Package metrics owns the service's Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exported at /metrics
type Metrics struct {
	registry *prometheus.Registry
	failures *prometheus.CounterVec
}

// New creates a registry with process and Go runtime collectors
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "user_service_failures_total",
		Help: "Failed requests by status code and HTTP status.",
	}, []string{"code", "http_status"})
	registry.MustRegister(failures)

	return &Metrics{registry: registry, failures: failures}
}

// RecordFailure counts one failed request
func (m *Metrics) RecordFailure(code string, httpStatus int) {
	m.failures.WithLabelValues(code, strconv.Itoa(httpStatus)).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
