// Package tracing provides OpenTelemetry tracing for the frontend.
//
// Spans are exported over OTLP gRPC when an endpoint is configured;
// otherwise every span is a non-recording noop. Inbound requests continue a
// trace when they carry a W3C traceparent header. Calls to the backend get
// a client span, but no trace headers are added to them.
//
//	tracer, err := tracing.New(tracing.Config{
//		Endpoint:    "otel-collector:4317",
//		Insecure:    true,
//		Sampler:     tracing.SamplerRatio,
//		SampleRatio: 0.1,
//		ServiceName: "sample-app-frontend",
//	})
//	if err != nil {
//		return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Tracer().Start(ctx, "backend.call")
//	defer span.End()
package tracing
