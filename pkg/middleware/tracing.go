package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"sampleapp/frontend/pkg/telemetry/logging"
	"sampleapp/frontend/pkg/telemetry/tracing"
)

// Tracing starts a server span for every request, continuing the trace in
// an incoming traceparent header. 5xx responses mark the span as failed.
func Tracing(tracer trace.Tracer, route RouteFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := "unknown"
			if route != nil {
				name = route(r)
			}

			ctx := tracing.Extract(r.Context(), r.Header)
			ctx, span := tracer.Start(ctx, "frontend."+name,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(tracing.RequestAttributes(
					r.Method, name, r.URL.Path,
					logging.GetRequestID(ctx), logging.GetClient(ctx),
				)...),
			)
			defer span.End()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			span.SetAttributes(attribute.Int(tracing.AttrHTTPStatusCode, rw.statusCode))
			if rw.statusCode >= 500 {
				span.SetStatus(codes.Error, http.StatusText(rw.statusCode))
			}
		})
	}
}
