package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Namespace prefixes every metric name.
const Namespace = "frontend"

// Collector owns the registry and every metric the frontend exports.
type Collector struct {
	registry *prometheus.Registry

	requestMetrics *RequestMetrics
	backendMetrics *BackendMetrics
	tlsMetrics     *TLSMetrics
}

// NewCollector creates a collector registering into registry. If registry is
// nil a new one is created with the Go runtime and process collectors.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return &Collector{
		registry:       registry,
		requestMetrics: NewRequestMetrics(registry),
		backendMetrics: NewBackendMetrics(registry),
		tlsMetrics:     NewTLSMetrics(registry),
	}
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordRequest records a served inbound request.
func (c *Collector) RecordRequest(route string, status int, duration time.Duration) {
	c.requestMetrics.RecordRequest(route, status, duration)
}

// ObserveBackendCall records the outcome of a backend call.
func (c *Collector) ObserveBackendCall(outcome, code string, duration time.Duration) {
	c.backendMetrics.RecordCall(outcome, code, duration)
}

// SetCertificateExpiryDays sets the days remaining on the server certificate.
func (c *Collector) SetCertificateExpiryDays(days int) {
	c.tlsMetrics.SetExpiryDays(days)
}

// RecordMaterialChange counts a change seen in the TLS directory.
func (c *Collector) RecordMaterialChange(string) {
	c.tlsMetrics.RecordChange()
}
