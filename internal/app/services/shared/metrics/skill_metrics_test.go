package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSkillMetrics(t *testing.T) {
	m := NewSkillMetrics("duty")

	m.ObserveIntent("date")
	m.ObserveIntent("date")
	m.ObserveIntent("week")
	m.ObserveDuration(15 * time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Requests.WithLabelValues("date")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues("week")))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `duty_skill_requests_total{intent="date"} 2`)
	assert.Contains(t, rr.Body.String(), "duty_skill_request_duration_seconds_count 1")
}

func TestSkillMetrics_NilIsNoop(t *testing.T) {
	var m *SkillMetrics

	assert.NotPanics(t, func() {
		m.ObserveIntent("help")
		m.ObserveDuration(time.Second)
	})

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
