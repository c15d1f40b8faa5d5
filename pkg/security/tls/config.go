package tls

import (
	"crypto/tls"
)

// ServerConfig builds the listener tls.Config from loaded material.
// The server presents its key pair and verifies client certificates against
// the CA bundle according to clientAuth.
func ServerConfig(m *Material, clientAuth string) *tls.Config {
	return &tls.Config{
		Certificates: []tls.Certificate{m.Certificate},
		ClientCAs:    m.CAPool,
		ClientAuth:   ParseClientAuthType(clientAuth),
		MinVersion:   tls.VersionTLS12,
	}
}

// ParseClientAuthType converts a client auth mode name to a tls.ClientAuthType:
//   - "none": never ask for a client certificate (default)
//   - "request": ask, accept anything
//   - "verify_if_given": ask, verify when one is sent
//   - "require": a verified client certificate is mandatory
func ParseClientAuthType(mode string) tls.ClientAuthType {
	switch mode {
	case "request":
		return tls.RequestClientCert
	case "require":
		return tls.RequireAndVerifyClientCert
	case "verify_if_given":
		return tls.VerifyClientCertIfGiven
	default:
		return tls.NoClientCert
	}
}
