package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Location lookup outcomes.
const (
	LookupOK         = "ok"
	LookupShortQuery = "short_query"
	LookupDegraded   = "degraded"
)

// Skill extraction outcomes.
const (
	ExtractionMatched = "matched"
	ExtractionEmpty   = "empty"
	ExtractionFailed  = "failed"
)

// Manager owns every Prometheus collector of the service. A nil *Manager is
// valid and records nothing.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	locationLookups  *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	skillExtractions *prometheus.CounterVec
	skillsDetected   prometheus.Histogram
}

// NewManager creates a metrics manager on its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "insiderjobs",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})

	m.locationLookups = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "locations",
		Name:      "lookups_total",
		Help:      "Location suggestion lookups by outcome",
	}, []string{"outcome"})

	m.providerLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "locations",
		Name:      "provider_duration_seconds",
		Help:      "Latency of calls to the place-name provider",
		Buckets:   m.histogramBuckets,
	}, []string{"result"})

	m.skillExtractions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "resume",
		Name:      "skill_extractions_total",
		Help:      "Resume skill extractions by outcome",
	}, []string{"outcome"})

	m.skillsDetected = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "resume",
		Name:      "skills_detected",
		Help:      "Number of known skills detected per resume",
		Buckets:   prometheus.LinearBuckets(0, 2, 8),
	})
}

// Registry returns the registry the collectors live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest records one served request.
func (m *Manager) RecordHTTPRequest(route, method, statusCode string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// RecordLocationLookup counts a location lookup by outcome.
func (m *Manager) RecordLocationLookup(outcome string) {
	if m == nil {
		return
	}
	m.locationLookups.WithLabelValues(outcome).Inc()
}

// ObserveProvider records the latency of one provider call.
func (m *Manager) ObserveProvider(err error, d time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.providerLatency.WithLabelValues(result).Observe(d.Seconds())
}

// RecordSkillExtraction counts one extraction and how many skills it found.
func (m *Manager) RecordSkillExtraction(outcome string, skills int) {
	if m == nil {
		return
	}
	m.skillExtractions.WithLabelValues(outcome).Inc()
	m.skillsDetected.Observe(float64(skills))
}
