package logging

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestContextKeys(t *testing.T) {
	ctx := context.Background()

	if got := GetRequestID(ctx); got != "" {
		t.Errorf("GetRequestID() on empty context = %q", got)
	}

	ctx = WithRequestID(ctx, "req-123")
	if got := GetRequestID(ctx); got != "req-123" {
		t.Errorf("GetRequestID() = %q, want %q", got, "req-123")
	}

	ctx = WithClient(ctx, "backend")
	if got := GetClient(ctx); got != "backend" {
		t.Errorf("GetClient() = %q, want %q", got, "backend")
	}
}

func TestExtractContextFields(t *testing.T) {
	if fields := extractContextFields(context.Background()); len(fields) != 0 {
		t.Errorf("expected no fields, got %v", fields)
	}

	ctx := WithRequestID(context.Background(), "req-1")
	fields := extractContextFields(ctx)
	if len(fields) != 1 || fields[0].Key != "request_id" || fields[0].Value.String() != "req-1" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestExtractContextFieldsTrace(t *testing.T) {
	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	got := map[string]string{}
	for _, attr := range extractContextFields(ctx) {
		got[attr.Key] = attr.Value.String()
	}

	if got["trace_id"] != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace_id = %q", got["trace_id"])
	}
	if got["span_id"] != "00f067aa0ba902b7" {
		t.Errorf("span_id = %q", got["span_id"])
	}
}
