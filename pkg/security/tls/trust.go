package tls

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
)

// TrustPolicy decides how outbound TLS connections verify the server they
// connect to. It is either Insecure (no verification) or VerifyAgainst a
// specific CA pool. The zero value verifies against the system roots.
type TrustPolicy struct {
	insecure bool
	roots    *x509.CertPool
}

// Insecure returns a policy that accepts any peer certificate.
func Insecure() TrustPolicy {
	return TrustPolicy{insecure: true}
}

// VerifyAgainst returns a policy that verifies the peer chain and host name
// against roots.
func VerifyAgainst(roots *x509.CertPool) TrustPolicy {
	return TrustPolicy{roots: roots}
}

// PolicyFor resolves the outbound trust policy for env.
//
// In development the services talk to each other directly using self-signed
// certificates, so verification is disabled. Everywhere else traffic goes
// through the internal load balancer, whose CA is loaded at startup, and the
// peer must chain to it.
func PolicyFor(env Environment, internalCA *x509.CertPool) (TrustPolicy, error) {
	if env.IsDevelopment() {
		return Insecure(), nil
	}
	if internalCA == nil {
		return TrustPolicy{}, fmt.Errorf("environment %q requires an internal CA", env.Name())
	}
	return VerifyAgainst(internalCA), nil
}

// IsInsecure reports whether the policy skips certificate verification.
func (p TrustPolicy) IsInsecure() bool {
	return p.insecure
}

// String implements fmt.Stringer for logging.
func (p TrustPolicy) String() string {
	if p.insecure {
		return "insecure"
	}
	return "verify"
}

// ClientConfig builds a fresh client-side tls.Config for this policy.
// A new value is returned on every call so callers never share state.
func (p TrustPolicy) ClientConfig() *tls.Config {
	if p.insecure {
		// #nosec G402 - verification is disabled only for the development environment
		return &tls.Config{
			InsecureSkipVerify: true,
			MinVersion:         tls.VersionTLS12,
		}
	}

	return &tls.Config{
		RootCAs:    p.roots,
		MinVersion: tls.VersionTLS12,
	}
}
