package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// envMap returns a getenv-compatible lookup over a fixed map.
func envMap(m map[string]string) func(string) string {
	return func(key string) string {
		return m[key]
	}
}

func TestLoadSettingsFrom_Defaults(t *testing.T) {
	s, err := LoadSettingsFrom(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Environment != "development" {
		t.Errorf("expected environment %q, got %q", "development", s.Environment)
	}
	if s.Port != 3000 {
		t.Errorf("expected port 3000, got %d", s.Port)
	}
	if s.ContextPath != "/sample-app-frontend" {
		t.Errorf("expected context path %q, got %q", "/sample-app-frontend", s.ContextPath)
	}
	if s.InternalALBURL != "localhost:3000" {
		t.Errorf("expected internal ALB URL %q, got %q", "localhost:3000", s.InternalALBURL)
	}
	if s.BackendPort != 80 {
		t.Errorf("expected backend port 80, got %d", s.BackendPort)
	}
	if s.TLS.ClientAuth != "none" {
		t.Errorf("expected client auth %q, got %q", "none", s.TLS.ClientAuth)
	}
	if s.BackendPath != "/sample-app-backend" {
		t.Errorf("expected backend path %q, got %q", "/sample-app-backend", s.BackendPath)
	}
	if s.BackendTimeout != 0 {
		t.Errorf("expected no backend timeout, got %v", s.BackendTimeout)
	}
	if s.ListenAddress() != "0.0.0.0:3000" {
		t.Errorf("expected listen address %q, got %q", "0.0.0.0:3000", s.ListenAddress())
	}
}

func TestLoadSettingsFrom_Overrides(t *testing.T) {
	s, err := LoadSettingsFrom(envMap(map[string]string{
		"VPC_NAME":                 "staging",
		"PORT":                     "8443",
		"CONTEXT_PATH":             "/front",
		"INTERNAL_ALB_URL":         "internal-alb.staging.local",
		"BACKEND_PORT":             "443",
		"FRONTEND_BACKEND_TIMEOUT": "5s",
		"FRONTEND_TLS_DIR":         "/etc/frontend/tls",
		"FRONTEND_CLIENT_AUTH":     "require",
		"FRONTEND_WATCH_TLS":       "true",
		"FRONTEND_LOG_LEVEL":       "debug",
		"FRONTEND_LOG_FORMAT":      "text",
		"FRONTEND_OPS_ADDRESS":     "127.0.0.1:9090",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Environment != "staging" {
		t.Errorf("expected environment %q, got %q", "staging", s.Environment)
	}
	if s.Port != 8443 {
		t.Errorf("expected port 8443, got %d", s.Port)
	}
	if s.ContextPath != "/front" {
		t.Errorf("expected context path %q, got %q", "/front", s.ContextPath)
	}
	if s.BackendHost() != "internal-alb.staging.local" {
		t.Errorf("expected backend host %q, got %q", "internal-alb.staging.local", s.BackendHost())
	}
	if s.BackendPort != 443 {
		t.Errorf("expected backend port 443, got %d", s.BackendPort)
	}
	if s.BackendTimeout != 5*time.Second {
		t.Errorf("expected backend timeout 5s, got %v", s.BackendTimeout)
	}
	if s.TLS.Dir != "/etc/frontend/tls" {
		t.Errorf("expected TLS dir %q, got %q", "/etc/frontend/tls", s.TLS.Dir)
	}
	if s.TLS.ClientAuth != "require" {
		t.Errorf("expected client auth %q, got %q", "require", s.TLS.ClientAuth)
	}
	if !s.TLS.Watch {
		t.Error("expected TLS watch to be enabled")
	}
	if s.Telemetry.OpsAddress != "127.0.0.1:9090" {
		t.Errorf("expected ops address %q, got %q", "127.0.0.1:9090", s.Telemetry.OpsAddress)
	}
}

func TestLoadSettingsFrom_Tracing(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantEndpoint string
		wantInsecure bool
		wantSampler  string
		wantRatio    float64
	}{
		{
			name:        "disabled by default",
			wantSampler: "always",
			wantRatio:   1.0,
		},
		{
			name: "collector with ratio sampling",
			env: map[string]string{
				"FRONTEND_OTLP_ENDPOINT":      "otel-collector:4317",
				"FRONTEND_OTLP_INSECURE":      "true",
				"FRONTEND_TRACE_SAMPLER":      "ratio",
				"FRONTEND_TRACE_SAMPLE_RATIO": "0",
			},
			wantEndpoint: "otel-collector:4317",
			wantInsecure: true,
			wantSampler:  "ratio",
			wantRatio:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadSettingsFrom(envMap(tt.env))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tr := s.Telemetry.Tracing
			if tr.Endpoint != tt.wantEndpoint || tr.Insecure != tt.wantInsecure ||
				tr.Sampler != tt.wantSampler || tr.SampleRatio != tt.wantRatio {
				t.Errorf("tracing = %+v", tr)
			}
		})
	}
}

func TestLoadSettingsFrom_ALBDefaultFollowsPort(t *testing.T) {
	s, err := LoadSettingsFrom(envMap(map[string]string{"PORT": "4000"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.InternalALBURL != "localhost:4000" {
		t.Errorf("expected internal ALB URL %q, got %q", "localhost:4000", s.InternalALBURL)
	}
	if s.BackendHost() != "localhost" {
		t.Errorf("expected backend host %q, got %q", "localhost", s.BackendHost())
	}
}

func TestLoadSettingsFrom_ParseErrors(t *testing.T) {
	_, err := LoadSettingsFrom(envMap(map[string]string{
		"PORT":                     "abc",
		"BACKEND_PORT":             "eighty",
		"FRONTEND_BACKEND_TIMEOUT": "soon",
	}))
	if err == nil {
		t.Fatal("expected parse errors")
	}

	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if len(validationErr.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(validationErr.Errors), err)
	}
}

func TestSettings_BackendHost(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"localhost:3000", "localhost"},
		{"internal-alb.local", "internal-alb.local"},
		{"https://internal-alb.local", "internal-alb.local"},
		{"https://internal-alb.local:8443/base", "internal-alb.local"},
		{"10.0.0.5", "10.0.0.5"},
		{"[::1]:80", "::1"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			s := &Settings{InternalALBURL: tt.url}
			if got := s.BackendHost(); got != tt.want {
				t.Errorf("BackendHost() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadAppConfig(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		content      string
		wantGreeting string
		wantErr      string
	}{
		{
			name:         "json",
			file:         "config.json",
			content:      `{"greeting": "Hello, World!", "unused": 42}`,
			wantGreeting: "Hello, World!",
		},
		{
			name:         "json keeps bytes verbatim",
			file:         "config.json",
			content:      `{"greeting": "  <b>héllo</b>\n"}`,
			wantGreeting: "  <b>héllo</b>\n",
		},
		{
			name:         "empty greeting is allowed",
			file:         "config.json",
			content:      `{"greeting": ""}`,
			wantGreeting: "",
		},
		{
			name:         "yaml",
			file:         "config.yaml",
			content:      "greeting: Hello from YAML\nother: true\n",
			wantGreeting: "Hello from YAML",
		},
		{
			name:    "malformed json",
			file:    "config.json",
			content: `{"greeting": `,
			wantErr: "failed to parse configuration file",
		},
		{
			name:    "non-string greeting",
			file:    "config.json",
			content: `{"greeting": 5}`,
			wantErr: "failed to parse configuration file",
		},
		{
			name:    "missing greeting",
			file:    "config.json",
			content: `{"salutation": "hi"}`,
			wantErr: "greeting: field is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config file: %v", err)
			}

			cfg, err := LoadAppConfig(path)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Greeting != tt.wantGreeting {
				t.Errorf("expected greeting %q, got %q", tt.wantGreeting, cfg.Greeting)
			}
		})
	}
}

func TestLoadAppConfig_FileNotFound(t *testing.T) {
	_, err := LoadAppConfig("/nonexistent/config.json")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got: %v", err)
	}
}

func TestLoadSettingsFrom_CertCheckSchedule(t *testing.T) {
	tests := []struct {
		schedule string
		wantErr  bool
	}{
		{"", false},
		{"@daily", false},
		{"*/15 * * * *", false},
		{"not a cron", true},
		{"61 * * * *", true},
	}

	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			s, err := LoadSettingsFrom(envMap(map[string]string{
				"FRONTEND_CERT_CHECK_SCHEDULE": tt.schedule,
			}))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for schedule %q", tt.schedule)
				}
				if !strings.Contains(err.Error(), "FRONTEND_CERT_CHECK_SCHEDULE") {
					t.Errorf("error %q does not name the setting", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.schedule == "" && s.Telemetry.CertCheckSchedule != DefaultCertCheckSchedule {
				t.Errorf("expected default schedule, got %q", s.Telemetry.CertCheckSchedule)
			}
		})
	}
}
