package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// TLSMetrics tracks the state of the TLS material.
//
// Metrics:
//   - frontend_certificate_expiry_days: days until the server certificate expires
//   - frontend_tls_material_changes_total: changes seen in the TLS directory
type TLSMetrics struct {
	expiryDays     prometheus.Gauge
	materialChange prometheus.Counter
}

// NewTLSMetrics creates and registers TLS metrics with the provided registry.
func NewTLSMetrics(registry *prometheus.Registry) *TLSMetrics {
	tm := &TLSMetrics{
		expiryDays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "certificate_expiry_days",
			Help:      "Days until the server certificate expires",
		}),
		materialChange: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "tls_material_changes_total",
			Help:      "Changes seen in the TLS material directory since startup",
		}),
	}

	registry.MustRegister(tm.expiryDays, tm.materialChange)

	return tm
}

// SetExpiryDays sets the expiry gauge.
func (tm *TLSMetrics) SetExpiryDays(days int) {
	tm.expiryDays.Set(float64(days))
}

// RecordChange increments the change counter.
func (tm *TLSMetrics) RecordChange() {
	tm.materialChange.Inc()
}
