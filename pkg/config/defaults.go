package config

import (
	"strconv"
	"time"
)

// Default values for configuration fields.
const (
	// Listener defaults
	DefaultEnvironment = "development"
	DefaultListenHost  = "0.0.0.0"
	DefaultPort        = 3000
	DefaultContextPath = "/sample-app-frontend"

	// Backend defaults
	DefaultBackendPort    = 80
	DefaultBackendPath    = "/sample-app-backend"
	DefaultBackendTimeout = time.Duration(0)

	// TLS defaults
	DefaultTLSDir        = "tls"
	DefaultTLSClientAuth = "none"

	// Telemetry defaults
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
	DefaultCertCheckSchedule = "@hourly"
	DefaultTraceSampler      = "always"
	DefaultTraceSampleRatio  = 1.0
)

// ApplyDefaults fills every unset field of s with its default value.
// InternalALBURL defaults to localhost on the listen port, so Port is
// resolved first.
func ApplyDefaults(s *Settings) {
	if s.Environment == "" {
		s.Environment = DefaultEnvironment
	}
	if s.Port == 0 {
		s.Port = DefaultPort
	}
	if s.ContextPath == "" {
		s.ContextPath = DefaultContextPath
	}
	if s.InternalALBURL == "" {
		s.InternalALBURL = "localhost:" + strconv.Itoa(s.Port)
	}
	if s.BackendPort == 0 {
		s.BackendPort = DefaultBackendPort
	}
	if s.BackendPath == "" {
		s.BackendPath = DefaultBackendPath
	}

	if s.TLS.Dir == "" {
		s.TLS.Dir = DefaultTLSDir
	}
	if s.TLS.ClientAuth == "" {
		s.TLS.ClientAuth = DefaultTLSClientAuth
	}

	if s.Telemetry.LogLevel == "" {
		s.Telemetry.LogLevel = DefaultLogLevel
	}
	if s.Telemetry.LogFormat == "" {
		s.Telemetry.LogFormat = DefaultLogFormat
	}
	if s.Telemetry.CertCheckSchedule == "" {
		s.Telemetry.CertCheckSchedule = DefaultCertCheckSchedule
	}
	if s.Telemetry.Tracing.Sampler == "" {
		s.Telemetry.Tracing.Sampler = DefaultTraceSampler
	}
}
