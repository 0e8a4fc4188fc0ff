// Package metrics exposes Prometheus collectors for ls-sofa.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ls_sofa"

// Collector holds the application's metrics on its own registry.
type Collector struct {
	registry *prometheus.Registry

	computeDuration prometheus.Histogram
	snapshotsTotal  *prometheus.CounterVec
	visibleTargets  prometheus.Gauge

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	rateLimited     *prometheus.CounterVec
	wsClients       prometheus.Gauge
}

// NewCollector creates and registers the collectors, plus the Go and
// process collectors.
func NewCollector() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		computeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "snapshot_compute_seconds",
				Help:      "Time spent computing a sky snapshot",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
		),
		snapshotsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "snapshots_total",
				Help:      "Snapshots computed, by result",
			},
			[]string{"result"},
		),
		visibleTargets: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "visible_targets",
				Help:      "Watched stars and bodies above the horizon",
			},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Time spent serving HTTP requests",
			},
			[]string{"path"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"path", "code"},
		),
		rateLimited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the per-client rate limiter",
			},
			[]string{"path"},
		),
		wsClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "websocket_clients",
				Help:      "Connected websocket clients",
			},
		),
	}

	m.registry.MustRegister(
		m.computeDuration,
		m.snapshotsTotal,
		m.visibleTargets,
		m.requestDuration,
		m.requestsTotal,
		m.rateLimited,
		m.wsClients,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordSnapshot records one snapshot computation.
func (m *Collector) RecordSnapshot(duration time.Duration, visible int, err error) {
	if err != nil {
		m.snapshotsTotal.WithLabelValues("error").Inc()
		return
	}
	m.computeDuration.Observe(duration.Seconds())
	m.snapshotsTotal.WithLabelValues("ok").Inc()
	m.visibleTargets.Set(float64(visible))
}

// RecordRequest records one served HTTP request.
func (m *Collector) RecordRequest(path string, code int, duration time.Duration) {
	m.requestDuration.WithLabelValues(path).Observe(duration.Seconds())
	m.requestsTotal.WithLabelValues(path, strconv.Itoa(code)).Inc()
}

// RecordRateLimited counts a request turned away by the limiter.
func (m *Collector) RecordRateLimited(path string) {
	m.rateLimited.WithLabelValues(path).Inc()
}

// WSConnected and WSDisconnected track live websocket clients.
func (m *Collector) WSConnected()    { m.wsClients.Inc() }
func (m *Collector) WSDisconnected() { m.wsClients.Dec() }

// Handler serves the registry in the Prometheus text format.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Collector) Registry() *prometheus.Registry {
	return m.registry
}
