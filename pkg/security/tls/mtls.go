package tls

import (
	"crypto/x509"
	"net/http"
)

// ClientIdentity returns the identity carried by a client certificate: the
// subject common name, falling back to the first DNS SAN.
// Returns an empty string if cert is nil or carries neither.
func ClientIdentity(cert *x509.Certificate) string {
	if cert == nil {
		return ""
	}

	if cert.Subject.CommonName != "" {
		return cert.Subject.CommonName
	}

	if len(cert.DNSNames) > 0 {
		return cert.DNSNames[0]
	}

	return ""
}

// GetClientCertificate extracts the client certificate from an HTTP request.
// Returns nil if no client certificate is present or TLS is not used.
func GetClientCertificate(r *http.Request) *x509.Certificate {
	if r.TLS == nil || len(r.TLS.PeerCertificates) == 0 {
		return nil
	}

	// Return the first (leaf) certificate
	return r.TLS.PeerCertificates[0]
}

// GetClientIdentity returns the identity of the client certificate presented
// on r, or "" for anonymous peers.
func GetClientIdentity(r *http.Request) string {
	return ClientIdentity(GetClientCertificate(r))
}
