package backend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	frontendtls "sampleapp/frontend/pkg/security/tls"
	"sampleapp/frontend/pkg/telemetry/tracing"
)

// Target is where backend calls go.
type Target struct {
	Host     string
	Port     int
	BasePath string
}

// URL returns the https URL for BasePath+suffix on the target.
func (t Target) URL(suffix string) string {
	return "https://" + net.JoinHostPort(t.Host, strconv.Itoa(t.Port)) + t.BasePath + suffix
}

// State is the lifecycle stage of a single call.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateReceiving
	StateDone
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateReceiving:
		return "receiving"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Observer receives the outcome of every call. outcome is "success" or
// "error"; code is the CallError code or "".
type Observer interface {
	ObserveBackendCall(outcome, code string, duration time.Duration)
}

// Option configures a Caller.
type Option func(*Caller)

// WithTimeout bounds every call. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Caller) { c.timeout = d }
}

// WithLogger sets the logger used for call state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Caller) { c.logger = logger }
}

// WithTracer sets the tracer client spans are started from.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Caller) { c.tracer = tracer }
}

// WithObserver registers an observer for call outcomes.
func WithObserver(o Observer) Option {
	return func(c *Caller) { c.observer = o }
}

// Caller issues GET requests to the backend. It holds no connection state
// between calls and is safe for concurrent use.
type Caller struct {
	target   Target
	policy   frontendtls.TrustPolicy
	timeout  time.Duration
	logger   *slog.Logger
	tracer   trace.Tracer
	observer Observer
}

// NewCaller creates a caller for target using policy to verify the peer.
func NewCaller(target Target, policy frontendtls.TrustPolicy, opts ...Option) *Caller {
	c := &Caller{
		target: target,
		policy: policy,
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer(tracing.InstrumentationName),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "backend")
	return c
}

// Target returns the caller's target.
func (c *Caller) Target() Target {
	return c.target
}

// Call performs one GET of BasePath+suffix and returns the whole body. The
// response status is not inspected, so error pages are returned as bodies.
// Failures are returned as *CallError and never retried.
func (c *Caller) Call(ctx context.Context, suffix string) (string, error) {
	start := time.Now()
	url := c.target.URL(suffix)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctx, span := c.tracer.Start(ctx, "backend.call",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(tracing.BackendAttributes(url, c.target.Host, c.target.Port)...),
	)
	defer span.End()

	c.logger.DebugContext(ctx, "backend call", "state", StateConnecting, "url", url, "trust", c.policy)

	// A fresh transport per call: no pooled connections are shared.
	transport := &http.Transport{
		TLSClientConfig:   c.policy.ClientConfig(),
		DisableKeepAlives: true,
	}
	defer transport.CloseIdleConnections()

	client := &http.Client{
		Transport: transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", c.fail(ctx, span, start, url, classify(err, c.target))
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", c.fail(ctx, span, start, url, classify(err, c.target))
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "backend call", "state", StateReceiving, "url", url, "status", resp.StatusCode)
	span.SetAttributes(attribute.Int(tracing.AttrHTTPStatusCode, resp.StatusCode))

	var body strings.Builder
	if _, err := io.Copy(&body, resp.Body); err != nil {
		return "", c.fail(ctx, span, start, url, classify(err, c.target))
	}

	duration := time.Since(start)
	tracing.SetStatus(span, nil)
	c.logger.DebugContext(ctx, "backend call",
		"state", StateDone,
		"url", url,
		"status", resp.StatusCode,
		"bytes", body.Len(),
		"duration_ms", duration.Milliseconds(),
	)
	if c.observer != nil {
		c.observer.ObserveBackendCall("success", "", duration)
	}

	return body.String(), nil
}

func (c *Caller) fail(ctx context.Context, span trace.Span, start time.Time, url string, ce *CallError) error {
	duration := time.Since(start)
	span.SetAttributes(attribute.String(tracing.AttrBackendCode, ce.Code))
	tracing.SetStatus(span, ce)
	c.logger.DebugContext(ctx, "backend call",
		"state", StateFailed,
		"url", url,
		"code", ce.Code,
		"duration_ms", duration.Milliseconds(),
	)
	if c.observer != nil {
		c.observer.ObserveBackendCall("error", ce.Code, duration)
	}
	return ce
}
