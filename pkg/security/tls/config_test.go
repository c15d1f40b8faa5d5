package tls

import (
	"crypto/tls"
	"testing"
)

func TestParseClientAuthType(t *testing.T) {
	tests := []struct {
		mode     string
		expected tls.ClientAuthType
	}{
		{"none", tls.NoClientCert},
		{"request", tls.RequestClientCert},
		{"verify_if_given", tls.VerifyClientCertIfGiven},
		{"require", tls.RequireAndVerifyClientCert},
		{"", tls.NoClientCert},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			if got := ParseClientAuthType(tt.mode); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestServerConfig(t *testing.T) {
	dir := t.TempDir()
	files, err := WriteMaterial(dir, Development, []string{"localhost"})
	if err != nil {
		t.Fatalf("WriteMaterial failed: %v", err)
	}
	m, err := LoadMaterial(dir, Development, files.Key)
	if err != nil {
		t.Fatalf("LoadMaterial failed: %v", err)
	}

	cfg := ServerConfig(m, "require")

	if len(cfg.Certificates) != 1 {
		t.Fatalf("expected 1 certificate, got %d", len(cfg.Certificates))
	}
	if cfg.ClientCAs != m.CAPool {
		t.Error("expected client CAs to be the loaded CA bundle")
	}
	if cfg.ClientAuth != tls.RequireAndVerifyClientCert {
		t.Errorf("unexpected client auth: %v", cfg.ClientAuth)
	}
	if cfg.MinVersion != tls.VersionTLS12 {
		t.Errorf("expected TLS 1.2 minimum, got %x", cfg.MinVersion)
	}
}
