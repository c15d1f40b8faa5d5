package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/propagation"
)

// propagator reads W3C traceparent and tracestate headers.
var propagator = propagation.TraceContext{}

// Extract returns ctx carrying the remote span context found in headers,
// or ctx unchanged when there is none. Outbound requests are never
// annotated; the frontend only continues traces started upstream.
func Extract(ctx context.Context, headers http.Header) context.Context {
	return propagator.Extract(ctx, propagation.HeaderCarrier(headers))
}
