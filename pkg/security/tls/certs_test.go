package tls

import (
	"crypto/tls"
	"strings"
	"testing"
	"time"
)

func mustIssue(t *testing.T, req CertificateRequest, parent *Issued) *Issued {
	t.Helper()
	issued, err := Issue(req, parent)
	if err != nil {
		t.Fatalf("failed to issue certificate: %v", err)
	}
	return issued
}

func TestValidateCertificate(t *testing.T) {
	valid := mustIssue(t, CertificateRequest{CommonName: "localhost"}, nil)
	validPair, err := valid.TLSCertificate()
	if err != nil {
		t.Fatalf("failed to build key pair: %v", err)
	}

	expired := mustIssue(t, CertificateRequest{
		CommonName: "localhost",
		NotBefore:  time.Now().Add(-48 * time.Hour),
		Validity:   24 * time.Hour,
	}, nil)
	expiredPair, err := expired.TLSCertificate()
	if err != nil {
		t.Fatalf("failed to build key pair: %v", err)
	}

	future := mustIssue(t, CertificateRequest{
		CommonName: "localhost",
		NotBefore:  time.Now().Add(24 * time.Hour),
	}, nil)
	futurePair, err := future.TLSCertificate()
	if err != nil {
		t.Fatalf("failed to build key pair: %v", err)
	}

	tests := []struct {
		name     string
		cert     *tls.Certificate
		errorMsg string
	}{
		{name: "valid certificate", cert: &validPair},
		{name: "nil certificate", cert: nil, errorMsg: "certificate is nil"},
		{name: "empty chain", cert: &tls.Certificate{}, errorMsg: "chain is empty"},
		{name: "expired certificate", cert: &expiredPair, errorMsg: "expired on"},
		{name: "not yet valid", cert: &futurePair, errorMsg: "not yet valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCertificate(tt.cert)
			if tt.errorMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got none", tt.errorMsg)
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
			}
		})
	}
}

func TestCheckCertificateExpiration(t *testing.T) {
	tests := []struct {
		name        string
		validity    time.Duration
		wantWarning bool
	}{
		{name: "one year left", validity: 365 * 24 * time.Hour, wantWarning: false},
		{name: "ten days left", validity: 10 * 24 * time.Hour, wantWarning: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issued := mustIssue(t, CertificateRequest{
				CommonName: "localhost",
				NotBefore:  time.Now(),
				Validity:   tt.validity,
			}, nil)

			days, warning := CheckCertificateExpiration(issued.Cert)
			wantDays := int(tt.validity.Hours()/24) - 1
			if days < wantDays || days > wantDays+1 {
				t.Errorf("expected about %d days, got %d", wantDays, days)
			}
			if (warning != "") != tt.wantWarning {
				t.Errorf("warning = %q, wantWarning %v", warning, tt.wantWarning)
			}
		})
	}
}

func TestExtractCertificateInfo(t *testing.T) {
	ca := mustIssue(t, CertificateRequest{CommonName: "test CA", Organization: "sample-app", IsCA: true}, nil)
	leaf := mustIssue(t, CertificateRequest{
		CommonName:   "frontend",
		Organization: "sample-app",
		Hosts:        []string{"frontend.internal", "127.0.0.1"},
	}, ca)

	info := ExtractCertificateInfo(leaf.Cert)

	if !strings.Contains(info.Subject, "CN=frontend") {
		t.Errorf("expected subject to contain CN=frontend, got %q", info.Subject)
	}
	if !strings.Contains(info.Issuer, "CN=test CA") {
		t.Errorf("expected issuer to contain CN=test CA, got %q", info.Issuer)
	}
	if info.SerialNumber == "" {
		t.Error("expected serial number to be set")
	}
	if len(info.DNSNames) != 1 || info.DNSNames[0] != "frontend.internal" {
		t.Errorf("unexpected DNS names: %v", info.DNSNames)
	}
	if len(info.IPAddresses) != 1 || info.IPAddresses[0] != "127.0.0.1" {
		t.Errorf("unexpected IP addresses: %v", info.IPAddresses)
	}
	if info.IsCA {
		t.Error("leaf should not be a CA")
	}
	if info.NotAfter.Before(info.NotBefore) {
		t.Error("NotAfter should be after NotBefore")
	}
}
