package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names read by LoadSettings. The first five are the
// deployment contract shared with the rest of the stack; the FRONTEND_ ones
// tune this process only.
const (
	EnvEnvironment       = "VPC_NAME"
	EnvPort              = "PORT"
	EnvContextPath       = "CONTEXT_PATH"
	EnvInternalALBURL    = "INTERNAL_ALB_URL"
	EnvBackendPort       = "BACKEND_PORT"
	EnvBackendPath       = "FRONTEND_BACKEND_PATH"
	EnvBackendTimeout    = "FRONTEND_BACKEND_TIMEOUT"
	EnvTLSDir            = "FRONTEND_TLS_DIR"
	EnvTLSClientAuth     = "FRONTEND_CLIENT_AUTH"
	EnvTLSWatch          = "FRONTEND_WATCH_TLS"
	EnvLogLevel          = "FRONTEND_LOG_LEVEL"
	EnvLogFormat         = "FRONTEND_LOG_FORMAT"
	EnvOpsAddress        = "FRONTEND_OPS_ADDRESS"
	EnvCertCheckSchedule = "FRONTEND_CERT_CHECK_SCHEDULE"
	EnvOTLPEndpoint      = "FRONTEND_OTLP_ENDPOINT"
	EnvOTLPInsecure      = "FRONTEND_OTLP_INSECURE"
	EnvTraceSampler      = "FRONTEND_TRACE_SAMPLER"
	EnvTraceSampleRatio  = "FRONTEND_TRACE_SAMPLE_RATIO"
)

// LoadSettings builds Settings from the process environment.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(os.Getenv)
}

// LoadSettingsFrom builds Settings from the given lookup function.
// An empty value is treated the same as an unset variable.
//
// The loading sequence is:
// 1. Read variables, collecting parse errors
// 2. Apply default values
// 3. Validate final settings
func LoadSettingsFrom(getenv func(string) string) (*Settings, error) {
	var (
		s    Settings
		errs []FieldError
	)

	s.Environment = getenv(EnvEnvironment)
	s.ContextPath = getenv(EnvContextPath)
	s.InternalALBURL = getenv(EnvInternalALBURL)
	s.BackendPath = getenv(EnvBackendPath)
	s.TLS.Dir = getenv(EnvTLSDir)
	s.TLS.ClientAuth = getenv(EnvTLSClientAuth)
	s.Telemetry.LogLevel = getenv(EnvLogLevel)
	s.Telemetry.LogFormat = getenv(EnvLogFormat)
	s.Telemetry.OpsAddress = getenv(EnvOpsAddress)
	s.Telemetry.CertCheckSchedule = getenv(EnvCertCheckSchedule)
	s.Telemetry.Tracing.Endpoint = getenv(EnvOTLPEndpoint)
	s.Telemetry.Tracing.Sampler = getenv(EnvTraceSampler)

	// Zero is a valid ratio, so the default is set before reading.
	s.Telemetry.Tracing.SampleRatio = DefaultTraceSampleRatio

	if val := getenv(EnvPort); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			errs = append(errs, FieldError{Field: EnvPort, Message: fmt.Sprintf("not an integer: %q", val)})
		}
		s.Port = i
	}
	if val := getenv(EnvBackendPort); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			errs = append(errs, FieldError{Field: EnvBackendPort, Message: fmt.Sprintf("not an integer: %q", val)})
		}
		s.BackendPort = i
	}
	if val := getenv(EnvBackendTimeout); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			errs = append(errs, FieldError{Field: EnvBackendTimeout, Message: fmt.Sprintf("not a duration: %q", val)})
		}
		s.BackendTimeout = d
	}
	if val := getenv(EnvTLSWatch); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			errs = append(errs, FieldError{Field: EnvTLSWatch, Message: fmt.Sprintf("not a boolean: %q", val)})
		}
		s.TLS.Watch = b
	}
	if val := getenv(EnvOTLPInsecure); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			errs = append(errs, FieldError{Field: EnvOTLPInsecure, Message: fmt.Sprintf("not a boolean: %q", val)})
		}
		s.Telemetry.Tracing.Insecure = b
	}
	if val := getenv(EnvTraceSampleRatio); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			errs = append(errs, FieldError{Field: EnvTraceSampleRatio, Message: fmt.Sprintf("not a number: %q", val)})
		}
		s.Telemetry.Tracing.SampleRatio = f
	}

	if len(errs) > 0 {
		return nil, ValidationError{Errors: errs}
	}

	ApplyDefaults(&s)

	if err := Validate(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadAppConfig reads the application configuration file at path.
// Files ending in .yaml or .yml are parsed as YAML; anything else must be
// strict JSON. The greeting field must be present.
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	// Pointer field distinguishes a missing greeting from an empty one.
	var raw struct {
		Greeting *string `json:"greeting" yaml:"greeting"`
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	if raw.Greeting == nil {
		return nil, ValidationError{Errors: []FieldError{{Field: "greeting", Message: "field is required"}}}
	}

	return &AppConfig{Greeting: *raw.Greeting}, nil
}
