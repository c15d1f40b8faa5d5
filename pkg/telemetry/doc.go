// Package telemetry groups the observability packages of the frontend.
//
// # Components
//
//   - logging: slog JSON or text logs carrying request, client and trace ids
//   - metrics: Prometheus request, backend call and certificate metrics
//   - tracing: OpenTelemetry spans exported over OTLP gRPC
//   - health: readiness and version endpoints for the ops listener
//
// Metrics and health endpoints are served on the optional ops listener
// (FRONTEND_OPS_ADDRESS), never on the TLS listener, so the public route
// table stays exactly the five frontend routes.
package telemetry
