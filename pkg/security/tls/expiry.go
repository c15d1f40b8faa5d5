package tls

import (
	"context"
	"crypto/x509"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// ExpiryMonitor periodically reports how many days remain before the server
// certificate expires. It never touches the loaded material.
type ExpiryMonitor struct {
	cert     *x509.Certificate
	schedule string
	observe  func(days int)
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewExpiryMonitor creates a monitor for cert on the given cron schedule.
// observe, when non-nil, receives the days until expiry after every check.
func NewExpiryMonitor(cert *x509.Certificate, schedule string, observe func(days int), logger *slog.Logger) *ExpiryMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpiryMonitor{
		cert:     cert,
		schedule: schedule,
		observe:  observe,
		cron:     cron.New(),
		logger:   logger.With("component", "tls.expiry"),
	}
}

// Check runs one expiry check and returns the days until expiry.
func (m *ExpiryMonitor) Check() int {
	days, warning := CheckCertificateExpiration(m.cert)

	switch {
	case days < 0:
		m.logger.Error("server certificate has expired",
			"subject", m.cert.Subject.String(),
			"not_after", m.cert.NotAfter,
		)
	case warning != "":
		m.logger.Warn(warning, "subject", m.cert.Subject.String())
	default:
		m.logger.Debug("server certificate expiry checked", "days_until_expiry", days)
	}

	if m.observe != nil {
		m.observe(days)
	}
	return days
}

// Run checks once immediately, then on every tick of the schedule until ctx
// is cancelled. An empty schedule runs the initial check only.
func (m *ExpiryMonitor) Run(ctx context.Context) error {
	m.Check()

	if m.schedule == "" {
		m.logger.Info("certificate check schedule not configured, skipping monitor")
		return nil
	}

	if _, err := cron.ParseStandard(m.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", m.schedule, err)
	}

	if _, err := m.cron.AddFunc(m.schedule, func() { m.Check() }); err != nil {
		return fmt.Errorf("failed to schedule certificate check: %w", err)
	}

	m.mu.Lock()
	m.cron.Start()
	m.running = true
	m.mu.Unlock()

	m.logger.Info("certificate expiry monitor started", "schedule", m.schedule)

	<-ctx.Done()
	m.Stop()
	return nil
}

// Stop stops the scheduler and waits for a running check to complete.
func (m *ExpiryMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		<-m.cron.Stop().Done()
		m.running = false
		m.logger.Info("certificate expiry monitor stopped")
	}
}
