package tls

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

// CertificateRequest describes a certificate to issue.
type CertificateRequest struct {
	CommonName   string
	Organization string

	// Hosts are DNS names or IP addresses placed in the SANs.
	Hosts []string

	// NotBefore defaults to now.
	NotBefore time.Time

	// Validity defaults to one year.
	Validity time.Duration

	// KeySize defaults to 2048.
	KeySize int

	IsCA bool
}

// Issued is a generated certificate and its private key.
type Issued struct {
	Cert    *x509.Certificate
	Key     *rsa.PrivateKey
	CertPEM []byte
	KeyPEM  []byte
}

// TLSCertificate returns the key pair as a tls.Certificate.
func (i *Issued) TLSCertificate() (tls.Certificate, error) {
	return tls.X509KeyPair(i.CertPEM, i.KeyPEM)
}

// Pool returns a cert pool holding only this certificate.
func (i *Issued) Pool() *x509.CertPool {
	pool := x509.NewCertPool()
	pool.AddCert(i.Cert)
	return pool
}

// Issue creates a certificate for req signed by parent, or self-signed when
// parent is nil.
func Issue(req CertificateRequest, parent *Issued) (*Issued, error) {
	keySize := req.KeySize
	if keySize == 0 {
		keySize = 2048
	}

	key, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}

	serialNumber, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, fmt.Errorf("failed to generate serial number: %w", err)
	}

	notBefore := req.NotBefore
	if notBefore.IsZero() {
		notBefore = time.Now().Add(-time.Minute)
	}
	validity := req.Validity
	if validity == 0 {
		validity = 365 * 24 * time.Hour
	}

	template := &x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization: []string{req.Organization},
			CommonName:   req.CommonName,
		},
		NotBefore:             notBefore,
		NotAfter:              notBefore.Add(validity),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
	}

	for _, host := range req.Hosts {
		if ip := net.ParseIP(host); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, host)
		}
	}

	if req.IsCA {
		template.IsCA = true
		template.KeyUsage |= x509.KeyUsageCertSign
	}

	signer, signerKey := template, key
	if parent != nil {
		signer, signerKey = parent.Cert, parent.Key
	}

	der, err := x509.CreateCertificate(rand.Reader, template, signer, &key.PublicKey, signerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	return &Issued{
		Cert:    cert,
		Key:     key,
		CertPEM: pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}),
		KeyPEM:  pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}),
	}, nil
}

// GeneratedFiles lists what WriteMaterial wrote.
type GeneratedFiles struct {
	Files
	CAKey string
}

// WriteMaterial generates a CA and a server certificate for hosts signed by
// it, and writes them under dir with the names LoadMaterial expects. The
// server key is written to key-<env>.pem. Outside development the same CA
// is also written as the internal ALB CA.
func WriteMaterial(dir string, env Environment, hosts []string) (*GeneratedFiles, error) {
	ca, err := Issue(CertificateRequest{
		CommonName:   "sample-app " + env.Name() + " CA",
		Organization: "sample-app",
		IsCA:         true,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to issue CA: %w", err)
	}

	commonName := "localhost"
	if len(hosts) > 0 {
		commonName = hosts[0]
	}
	server, err := Issue(CertificateRequest{
		CommonName:   commonName,
		Organization: "sample-app",
		Hosts:        hosts,
	}, ca)
	if err != nil {
		return nil, fmt.Errorf("failed to issue server certificate: %w", err)
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	out := &GeneratedFiles{
		Files: FilesFor(dir, env, filepath.Join(dir, "key-"+env.Name()+".pem")),
		CAKey: filepath.Join(dir, "ca-"+env.Name()+".key.pem"),
	}

	writes := []struct {
		path string
		data []byte
		perm os.FileMode
	}{
		{out.CA, ca.CertPEM, 0644},
		{out.CAKey, ca.KeyPEM, 0600},
		{out.Cert, server.CertPEM, 0644},
		{out.Key, server.KeyPEM, 0600},
	}
	if out.InternalCA != "" {
		writes = append(writes, struct {
			path string
			data []byte
			perm os.FileMode
		}{out.InternalCA, ca.CertPEM, 0644})
	}

	for _, w := range writes {
		if err := os.WriteFile(w.path, w.data, w.perm); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", w.path, err)
		}
	}

	return out, nil
}
