package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SkillMetrics registers its collectors on a private registry. A nil
// *SkillMetrics is a no-op.
type SkillMetrics struct {
	registry        *prometheus.Registry
	Requests        *prometheus.CounterVec
	RequestDuration prometheus.Histogram
}

func NewSkillMetrics(namespace string) *SkillMetrics {
	registry := prometheus.NewRegistry()

	m := &SkillMetrics{
		registry: registry,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "skill",
			Name:      "requests_total",
			Help:      "Total number of chatbot skill requests by resolved intent",
		}, []string{"intent"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "skill",
			Name:      "request_duration_seconds",
			Help:      "Duration of chatbot skill requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(m.Requests)
	registry.MustRegister(m.RequestDuration)
	registry.MustRegister(collectors.NewGoCollector())
	return m
}

func (m *SkillMetrics) ObserveIntent(intent string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(intent).Inc()
}

func (m *SkillMetrics) ObserveDuration(duration time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.Observe(duration.Seconds())
}

func (m *SkillMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
