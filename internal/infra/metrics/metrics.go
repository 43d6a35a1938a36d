// Package metrics exposes Prometheus counters for sessions, media orchestration and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vidtube"

// Rotation outcomes.
const (
	RotationIssued  = "issued"
	RotationReused  = "reused"
	RotationStale   = "stale"
	RotationInvalid = "invalid"
	RotationFailed  = "failed"
)

// Metrics holds all application metrics on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	uploads              *prometheus.CounterVec
	uploadFailures       *prometheus.CounterVec
	compensations        *prometheus.CounterVec
	compensationFailures *prometheus.CounterVec
	orphanedArtifacts    *prometheus.CounterVec
	rotations            *prometheus.CounterVec
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
}

// New creates and registers every metric.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "uploads_total",
			Help:      "Artifacts uploaded to remote storage",
		}, []string{"resource_type"}),
		uploadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "upload_failures_total",
			Help:      "Uploads to remote storage that failed",
		}, []string{"field"}),
		compensations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "compensations_total",
			Help:      "Remote artifacts deleted to undo a failed step",
		}, []string{"flow"}),
		compensationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "compensation_failures_total",
			Help:      "Compensating deletes that failed",
		}, []string{"flow"}),
		orphanedArtifacts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "orphaned_artifacts_total",
			Help:      "Remote artifacts left behind with no database reference",
		}, []string{"flow"}),
		rotations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "rotations_total",
			Help:      "Refresh token rotations by outcome",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.uploads,
		m.uploadFailures,
		m.compensations,
		m.compensationFailures,
		m.orphanedArtifacts,
		m.rotations,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) UploadSucceeded(resourceType string) {
	m.uploads.WithLabelValues(resourceType).Inc()
}

func (m *Metrics) UploadFailed(field string) {
	m.uploadFailures.WithLabelValues(field).Inc()
}

// Compensated records one compensating delete and whether it failed.
func (m *Metrics) Compensated(flow string, err error) {
	m.compensations.WithLabelValues(flow).Inc()
	if err != nil {
		m.compensationFailures.WithLabelValues(flow).Inc()
		m.orphanedArtifacts.WithLabelValues(flow).Inc()
	}
}

// Orphaned records an artifact left behind outside of compensation, e.g. after a replace.
func (m *Metrics) Orphaned(flow string) {
	m.orphanedArtifacts.WithLabelValues(flow).Inc()
}

func (m *Metrics) Rotation(outcome string) {
	m.rotations.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
