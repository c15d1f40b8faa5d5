package tls

import (
	"crypto/x509"
	"strings"
	"testing"
)

func TestPolicyFor(t *testing.T) {
	pool := x509.NewCertPool()

	tests := []struct {
		name         string
		env          Environment
		pool         *x509.CertPool
		wantInsecure bool
		wantErr      bool
	}{
		{name: "development ignores pool", env: Development, pool: pool, wantInsecure: true},
		{name: "development without pool", env: Development, pool: nil, wantInsecure: true},
		{name: "staging verifies", env: ParseEnvironment("staging"), pool: pool, wantInsecure: false},
		{name: "staging without pool", env: ParseEnvironment("staging"), pool: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := PolicyFor(tt.env, tt.pool)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !strings.Contains(err.Error(), "requires an internal CA") {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if policy.IsInsecure() != tt.wantInsecure {
				t.Errorf("IsInsecure() = %v, want %v", policy.IsInsecure(), tt.wantInsecure)
			}
		})
	}
}

func TestTrustPolicy_ClientConfig(t *testing.T) {
	t.Run("insecure", func(t *testing.T) {
		cfg := Insecure().ClientConfig()
		if !cfg.InsecureSkipVerify {
			t.Error("expected InsecureSkipVerify")
		}
		if cfg.RootCAs != nil {
			t.Error("expected no root CAs")
		}
		if Insecure().String() != "insecure" {
			t.Errorf("unexpected String(): %q", Insecure().String())
		}
	})

	t.Run("verify", func(t *testing.T) {
		pool := x509.NewCertPool()
		policy := VerifyAgainst(pool)
		cfg := policy.ClientConfig()
		if cfg.InsecureSkipVerify {
			t.Error("expected verification enabled")
		}
		if cfg.RootCAs != pool {
			t.Error("expected RootCAs to be the supplied pool")
		}
		if policy.String() != "verify" {
			t.Errorf("unexpected String(): %q", policy.String())
		}
	})

	t.Run("fresh config per call", func(t *testing.T) {
		policy := Insecure()
		if policy.ClientConfig() == policy.ClientConfig() {
			t.Error("expected a new config on every call")
		}
	})
}
