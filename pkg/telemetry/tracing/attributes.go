package tracing

import (
	"go.opentelemetry.io/otel/attribute"
)

// Attribute keys set on frontend spans. HTTP keys follow OpenTelemetry
// semantic conventions; the rest use the "frontend." namespace.
const (
	AttrHTTPMethod     = "http.request.method"
	AttrHTTPRoute      = "http.route"
	AttrHTTPStatusCode = "http.response.status_code"
	AttrURLPath        = "url.path"
	AttrURLFull        = "url.full"
	AttrServerAddress  = "server.address"
	AttrServerPort     = "server.port"

	AttrRequestID   = "frontend.request_id"
	AttrClient      = "frontend.client"
	AttrBackendCode = "frontend.backend.error_code"
)

// RequestAttributes returns the attributes of an inbound request span.
func RequestAttributes(method, route, path, requestID, client string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(AttrHTTPMethod, method),
		attribute.String(AttrHTTPRoute, route),
		attribute.String(AttrURLPath, path),
	}
	if requestID != "" {
		attrs = append(attrs, attribute.String(AttrRequestID, requestID))
	}
	if client != "" {
		attrs = append(attrs, attribute.String(AttrClient, client))
	}
	return attrs
}

// BackendAttributes returns the attributes of an outbound call span.
func BackendAttributes(url, host string, port int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrHTTPMethod, "GET"),
		attribute.String(AttrURLFull, url),
		attribute.String(AttrServerAddress, host),
		attribute.Int(AttrServerPort, port),
	}
}
