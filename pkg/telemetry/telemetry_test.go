package telemetry

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordAndServe(t *testing.T) {
	m := NewMetrics("test")

	m.RecordIntegrationRequest("twitter", 200, 120*time.Millisecond)
	m.RecordIntegrationRequest("twitter", 200, 80*time.Millisecond)
	m.RecordIntegrationRequest("meta", 0, time.Second)
	m.RecordAggregationFailure("youtube")
	m.RecordCredentialRemoval("meta", "auth_error")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.IntegrationRequests.WithLabelValues("twitter", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IntegrationRequests.WithLabelValues("meta", "network_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AggregationFailures.WithLabelValues("youtube")))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "test_integration_request_duration_seconds")
	assert.Contains(t, w.Body.String(), "test_credential_removals_total")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordIntegrationRequest("meta", 500, time.Second)
		m.RecordAggregationFailure("meta")
		m.RecordCredentialRemoval("meta", "expired")
	})
}
