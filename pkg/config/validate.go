package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific setting.
type FieldError struct {
	// Field is the setting name (e.g., "PORT" or "greeting").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in the settings.
type ValidationError struct {
	// Errors contains all validation errors found.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate checks the settings and returns a ValidationError listing every
// problem, or nil.
func Validate(s *Settings) error {
	var errs []FieldError

	errs = append(errs, validateListener(s)...)
	errs = append(errs, validateBackend(s)...)
	errs = append(errs, validateTLS(&s.TLS)...)
	errs = append(errs, validateTelemetry(&s.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

func validateListener(s *Settings) []FieldError {
	var errs []FieldError

	// The environment name becomes part of TLS file names.
	if strings.ContainsAny(s.Environment, `/\`) || strings.Contains(s.Environment, "..") {
		errs = append(errs, FieldError{
			Field:   EnvEnvironment,
			Message: fmt.Sprintf("must not contain path separators: %q", s.Environment),
		})
	}

	if !validPort(s.Port) {
		errs = append(errs, FieldError{
			Field:   EnvPort,
			Message: fmt.Sprintf("port must be between 1 and 65535, got %d", s.Port),
		})
	}

	if !strings.HasPrefix(s.ContextPath, "/") {
		errs = append(errs, FieldError{
			Field:   EnvContextPath,
			Message: fmt.Sprintf("must start with '/', got %q", s.ContextPath),
		})
	}

	return errs
}

func validateBackend(s *Settings) []FieldError {
	var errs []FieldError

	if s.BackendHost() == "" {
		errs = append(errs, FieldError{
			Field:   EnvInternalALBURL,
			Message: fmt.Sprintf("no host in %q", s.InternalALBURL),
		})
	}

	if !validPort(s.BackendPort) {
		errs = append(errs, FieldError{
			Field:   EnvBackendPort,
			Message: fmt.Sprintf("port must be between 1 and 65535, got %d", s.BackendPort),
		})
	}

	if !strings.HasPrefix(s.BackendPath, "/") {
		errs = append(errs, FieldError{
			Field:   EnvBackendPath,
			Message: fmt.Sprintf("must start with '/', got %q", s.BackendPath),
		})
	}

	if s.BackendTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   EnvBackendTimeout,
			Message: fmt.Sprintf("must not be negative, got %s", s.BackendTimeout.Round(time.Millisecond)),
		})
	}

	return errs
}

func validateTLS(t *TLSSettings) []FieldError {
	var errs []FieldError

	switch t.ClientAuth {
	case "none", "request", "verify_if_given", "require":
	default:
		errs = append(errs, FieldError{
			Field:   EnvTLSClientAuth,
			Message: fmt.Sprintf("must be one of none, request, verify_if_given, require; got %q", t.ClientAuth),
		})
	}

	return errs
}

func validateTelemetry(t *TelemetrySettings) []FieldError {
	var errs []FieldError

	switch strings.ToLower(t.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, FieldError{
			Field:   EnvLogLevel,
			Message: fmt.Sprintf("unknown log level %q", t.LogLevel),
		})
	}

	switch strings.ToLower(t.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   EnvLogFormat,
			Message: fmt.Sprintf("unknown log format %q", t.LogFormat),
		})
	}

	if _, err := cron.ParseStandard(t.CertCheckSchedule); err != nil {
		errs = append(errs, FieldError{
			Field:   EnvCertCheckSchedule,
			Message: fmt.Sprintf("invalid cron schedule %q: %v", t.CertCheckSchedule, err),
		})
	}

	switch t.Tracing.Sampler {
	case "always", "never", "ratio":
	default:
		errs = append(errs, FieldError{
			Field:   EnvTraceSampler,
			Message: fmt.Sprintf("must be one of always, never, ratio; got %q", t.Tracing.Sampler),
		})
	}

	if t.Tracing.SampleRatio < 0 || t.Tracing.SampleRatio > 1 {
		errs = append(errs, FieldError{
			Field:   EnvTraceSampleRatio,
			Message: fmt.Sprintf("must be between 0 and 1, got %g", t.Tracing.SampleRatio),
		})
	}

	return errs
}

func validPort(p int) bool {
	return p >= 1 && p <= 65535
}
