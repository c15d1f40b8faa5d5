package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Settings is the process-wide configuration of the frontend. It is built once
// at startup from environment variables and is read-only afterwards.
type Settings struct {
	// Environment is the deployment environment name (VPC_NAME).
	// It selects the TLS material files and the outbound trust policy.
	// Default: "development"
	Environment string `yaml:"environment"`

	// Port is the TCP port the TLS listener binds on all interfaces (PORT).
	// Default: 3000
	Port int `yaml:"port"`

	// ContextPath is the URL base path every route hangs off (CONTEXT_PATH).
	// Default: "/sample-app-frontend"
	ContextPath string `yaml:"context_path"`

	// InternalALBURL is the internal load balancer the backend is reached
	// through (INTERNAL_ALB_URL). Only the host part is used; the port always
	// comes from BackendPort.
	// Default: "localhost:<Port>"
	InternalALBURL string `yaml:"internal_alb_url"`

	// BackendPort is the port of the backend service (BACKEND_PORT).
	// Default: 80
	BackendPort int `yaml:"backend_port"`

	// BackendPath is the base path of the backend service.
	// Default: "/sample-app-backend"
	BackendPath string `yaml:"backend_path"`

	// BackendTimeout bounds a single outbound call. Zero means no timeout,
	// so a hung backend hangs the request that triggered the call.
	// Default: 0
	BackendTimeout time.Duration `yaml:"backend_timeout"`

	// TLS contains the location of TLS material and inbound client auth mode.
	TLS TLSSettings `yaml:"tls"`

	// Telemetry contains logging, ops listener and certificate monitoring settings.
	Telemetry TelemetrySettings `yaml:"telemetry"`
}

// TLSSettings describes where TLS material lives and how client certificates
// presented to the listener are treated.
type TLSSettings struct {
	// Dir holds ca-<env>.crt.pem, cert-<env>.crt.pem and
	// internal-alb-<env>-ca.pem.
	// Default: "tls"
	Dir string `yaml:"dir"`

	// ClientAuth is one of "none", "request", "verify_if_given", "require".
	// Default: "none"
	ClientAuth string `yaml:"client_auth"`

	// Watch enables the TLS directory watcher.
	// Default: false
	Watch bool `yaml:"watch"`
}

// TelemetrySettings contains observability configuration.
type TelemetrySettings struct {
	// LogLevel is "debug", "info", "warn" or "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat is "json" or "text".
	// Default: "json"
	LogFormat string `yaml:"log_format"`

	// OpsAddress is the listen address of the ops listener serving
	// /metrics, /ready and /version. Empty disables it.
	OpsAddress string `yaml:"ops_address"`

	// CertCheckSchedule is a cron spec for server certificate expiry checks.
	// Default: "@hourly"
	CertCheckSchedule string `yaml:"cert_check_schedule"`

	// Tracing configures span export.
	Tracing TracingSettings `yaml:"tracing"`
}

// TracingSettings configures OpenTelemetry tracing.
type TracingSettings struct {
	// Endpoint is the host:port of an OTLP gRPC collector. Empty disables
	// tracing.
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS towards the collector.
	// Default: false
	Insecure bool `yaml:"insecure"`

	// Sampler is "always", "never" or "ratio".
	// Default: "always"
	Sampler string `yaml:"sampler"`

	// SampleRatio is used by the "ratio" sampler.
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio"`
}

// AppConfig is the static application configuration read from the file
// named on the command line.
type AppConfig struct {
	// Greeting is served verbatim on the greeting route.
	Greeting string `json:"greeting" yaml:"greeting"`
}

// ListenAddress returns the address the TLS listener binds to.
func (s *Settings) ListenAddress() string {
	return net.JoinHostPort(DefaultListenHost, strconv.Itoa(s.Port))
}

// BackendHost returns the host part of InternalALBURL with any scheme, port
// and path removed.
func (s *Settings) BackendHost() string {
	host := s.InternalALBURL
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return strings.Trim(host, "[]")
}
