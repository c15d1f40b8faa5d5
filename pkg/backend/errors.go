package backend

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"syscall"
)

// Error codes reported in CallError.Code.
const (
	CodeConnRefused      = "ECONNREFUSED"
	CodeConnReset        = "ECONNRESET"
	CodeNotFound         = "ENOTFOUND"
	CodeTimedOut         = "ETIMEDOUT"
	CodeUnknownAuthority = "UNABLE_TO_VERIFY_LEAF_SIGNATURE"
	CodeHostnameMismatch = "ERR_TLS_CERT_ALTNAME_INVALID"
	CodeCertExpired      = "CERT_HAS_EXPIRED"
	CodeProtocol         = "EPROTO"
	CodeCancelled        = "ECANCELED"
	CodeUnknown          = "UNKNOWN"
)

// CallError is a failed backend call. It marshals to the JSON document
// written to the client on a 500 response.
type CallError struct {
	// Message is the underlying error text.
	Message string `json:"message"`

	// Code is an errno-style classification of the failure.
	Code string `json:"code"`

	// Syscall is the operation that failed: connect, read, getaddrinfo or
	// handshake. Empty when unknown.
	Syscall string `json:"syscall,omitempty"`

	// Address is the peer address or host name involved.
	Address string `json:"address,omitempty"`

	// Port is the peer port, when known.
	Port int `json:"port,omitempty"`

	// Cause is the underlying error.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *CallError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for error chain support.
func (e *CallError) Unwrap() error {
	return e.Cause
}

// classify converts a transport error into a CallError for target.
func classify(err error, target Target) *CallError {
	ce := &CallError{
		Message: err.Error(),
		Code:    CodeUnknown,
		Address: target.Host,
		Port:    target.Port,
		Cause:   err,
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if addr, ok := opErr.Addr.(*net.TCPAddr); ok {
			ce.Address = addr.IP.String()
			ce.Port = addr.Port
		}
	}

	var (
		dnsErr     *net.DNSError
		authErr    x509.UnknownAuthorityError
		hostErr    x509.HostnameError
		invalidErr x509.CertificateInvalidError
		recordErr  tls.RecordHeaderError
		alertErr   tls.AlertError
		verifyErr  *tls.CertificateVerificationError
		netErr     net.Error
	)

	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		ce.Code, ce.Syscall = CodeConnRefused, "connect"
	case errors.Is(err, syscall.ECONNRESET):
		ce.Code, ce.Syscall = CodeConnReset, "read"
	case errors.As(err, &dnsErr):
		ce.Code, ce.Syscall = CodeNotFound, "getaddrinfo"
		ce.Address, ce.Port = dnsErr.Name, 0
		if ce.Address == "" {
			ce.Address = target.Host
		}
	case errors.As(err, &authErr):
		ce.Code, ce.Syscall = CodeUnknownAuthority, "handshake"
	case errors.As(err, &hostErr):
		ce.Code, ce.Syscall = CodeHostnameMismatch, "handshake"
	case errors.As(err, &invalidErr) && invalidErr.Reason == x509.Expired:
		ce.Code, ce.Syscall = CodeCertExpired, "handshake"
	case errors.As(err, &invalidErr), errors.As(err, &verifyErr),
		errors.As(err, &recordErr), errors.As(err, &alertErr):
		ce.Code, ce.Syscall = CodeProtocol, "handshake"
	case errors.Is(err, context.DeadlineExceeded):
		ce.Code = CodeTimedOut
	case errors.Is(err, context.Canceled):
		ce.Code = CodeCancelled
	case errors.As(err, &netErr) && netErr.Timeout():
		ce.Code = CodeTimedOut
	}

	return ce
}
