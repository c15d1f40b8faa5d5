package tls

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"
)

// Files lists the paths of the TLS material for one environment.
type Files struct {
	// CA is the CA bundle used to verify peers of the listener.
	CA string

	// Cert is the server certificate presented by the listener.
	Cert string

	// Key is the server private key, given on the command line.
	Key string

	// InternalCA is the internal load balancer CA. Empty in development.
	InternalCA string
}

// FilesFor returns the material file names for env under dir:
// ca-<env>.crt.pem, cert-<env>.crt.pem and, outside development,
// internal-alb-<env>-ca.pem.
func FilesFor(dir string, env Environment, keyFile string) Files {
	name := env.Name()
	files := Files{
		CA:   filepath.Join(dir, "ca-"+name+".crt.pem"),
		Cert: filepath.Join(dir, "cert-"+name+".crt.pem"),
		Key:  keyFile,
	}
	if !env.IsDevelopment() {
		files.InternalCA = filepath.Join(dir, "internal-alb-"+name+"-ca.pem")
	}
	return files
}

// Material is the TLS material loaded once at startup. It is never modified
// after LoadMaterial returns.
type Material struct {
	Environment Environment
	Files       Files

	// Certificate is the server key pair.
	Certificate tls.Certificate

	// Leaf is the parsed server certificate.
	Leaf *x509.Certificate

	// CAPool is the CA bundle for verifying peers of the listener.
	CAPool *x509.CertPool

	// InternalCAPool verifies the internal load balancer. Nil in development.
	InternalCAPool *x509.CertPool
}

// LoadMaterial reads and validates the TLS material for env from dir.
// keyFile is the PEM private key matching cert-<env>.crt.pem.
func LoadMaterial(dir string, env Environment, keyFile string) (*Material, error) {
	files := FilesFor(dir, env, keyFile)

	cert, err := tls.LoadX509KeyPair(files.Cert, files.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to load certificate %s with key %s: %w", files.Cert, files.Key, err)
	}

	if err := ValidateCertificate(&cert); err != nil {
		return nil, fmt.Errorf("certificate validation failed: %w", err)
	}

	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	caPool, err := loadCertPool(files.CA)
	if err != nil {
		return nil, fmt.Errorf("failed to load CA bundle: %w", err)
	}

	m := &Material{
		Environment: env,
		Files:       files,
		Certificate: cert,
		Leaf:        leaf,
		CAPool:      caPool,
	}

	if files.InternalCA != "" {
		m.InternalCAPool, err = loadCertPool(files.InternalCA)
		if err != nil {
			return nil, fmt.Errorf("failed to load internal ALB CA: %w", err)
		}
	}

	return m, nil
}

// TrustPolicy returns the outbound trust policy for the material's environment.
func (m *Material) TrustPolicy() (TrustPolicy, error) {
	return PolicyFor(m.Environment, m.InternalCAPool)
}

// loadCertPool reads a PEM bundle into a new pool.
func loadCertPool(path string) (*x509.CertPool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(data) {
		return nil, fmt.Errorf("no PEM certificates found in %s", path)
	}

	return pool, nil
}
