// Package metrics exports Prometheus metrics for the frontend.
//
// A single Collector is created at startup and shared by the request
// middleware, the backend caller (as its Observer) and the TLS monitors:
//
//	collector := metrics.NewCollector(nil)
//	caller := backend.NewCaller(target, policy, backend.WithObserver(collector))
//	opsMux.Handle("/metrics", collector.Handler())
package metrics
