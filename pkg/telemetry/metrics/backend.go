package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BackendMetrics tracks outbound calls to the backend service.
//
// Metrics:
//   - frontend_backend_calls_total: call count by outcome and error code
//   - frontend_backend_call_duration_seconds: call duration
type BackendMetrics struct {
	callsTotal   *prometheus.CounterVec
	callDuration prometheus.Histogram
}

// NewBackendMetrics creates and registers backend metrics with the provided registry.
func NewBackendMetrics(registry *prometheus.Registry) *BackendMetrics {
	bm := &BackendMetrics{
		callsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "backend_calls_total",
				Help:      "Total number of backend calls by outcome",
			},
			[]string{"outcome", "code"},
		),

		callDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "backend_call_duration_seconds",
				Help:      "Duration of backend calls in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
	}

	registry.MustRegister(bm.callsTotal, bm.callDuration)

	return bm
}

// RecordCall records one backend call. code is empty on success.
func (bm *BackendMetrics) RecordCall(outcome, code string, duration time.Duration) {
	bm.callsTotal.WithLabelValues(outcome, code).Inc()
	bm.callDuration.Observe(duration.Seconds())
}
