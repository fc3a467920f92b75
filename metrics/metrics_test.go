package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerOptions(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewManager(
		WithNamespace("test"),
		WithHistogramBuckets([]float64{0.1, 1}),
		WithRegistry(registry),
	)

	assert.Same(t, registry, m.Registry())
	assert.Equal(t, "test", m.namespace)
	assert.Equal(t, []float64{0.1, 1}, m.histogramBuckets)
}

func TestRecordLocationLookup(t *testing.T) {
	m := NewManager()

	m.RecordLocationLookup(LookupOK)
	m.RecordLocationLookup(LookupOK)
	m.RecordLocationLookup(LookupDegraded)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.locationLookups.WithLabelValues(LookupOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.locationLookups.WithLabelValues(LookupDegraded)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.locationLookups.WithLabelValues(LookupShortQuery)))
}

func TestObserveProviderAndSkills(t *testing.T) {
	m := NewManager()

	m.ObserveProvider(nil, 20*time.Millisecond)
	m.ObserveProvider(errors.New("boom"), time.Second)
	m.RecordSkillExtraction(ExtractionMatched, 3)

	assert.Equal(t, 2, testutil.CollectAndCount(m.providerLatency))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.skillExtractions.WithLabelValues(ExtractionMatched)))
}

func TestNilManagerIsNoop(t *testing.T) {
	var m *Manager
	assert.NotPanics(t, func() {
		m.RecordLocationLookup(LookupOK)
		m.ObserveProvider(nil, time.Millisecond)
		m.RecordSkillExtraction(ExtractionEmpty, 0)
		m.RecordHTTPRequest("/", "GET", "200", time.Millisecond)
	})
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewManager()

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/jobs/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/jobs/42", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/jobs/:id", "GET", "204")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "insiderjobs_http_requests_total")
}
