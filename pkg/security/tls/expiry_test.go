package tls

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestExpiryMonitor_Check(t *testing.T) {
	issued := mustIssue(t, CertificateRequest{
		CommonName: "localhost",
		NotBefore:  time.Now(),
		Validity:   100 * 24 * time.Hour,
	}, nil)

	var observed atomic.Int64
	monitor := NewExpiryMonitor(issued.Cert, "@hourly", func(days int) {
		observed.Store(int64(days))
	}, nil)

	days := monitor.Check()
	if days != 99 && days != 100 {
		t.Errorf("expected about 100 days, got %d", days)
	}
	if observed.Load() != int64(days) {
		t.Errorf("observer got %d, want %d", observed.Load(), days)
	}
}

func TestExpiryMonitor_Run(t *testing.T) {
	issued := mustIssue(t, CertificateRequest{CommonName: "localhost"}, nil)

	t.Run("checks immediately and stops on cancel", func(t *testing.T) {
		var calls atomic.Int32
		monitor := NewExpiryMonitor(issued.Cert, "@every 1h", func(int) { calls.Add(1) }, nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- monitor.Run(ctx) }()

		deadline := time.After(5 * time.Second)
		for calls.Load() == 0 {
			select {
			case <-deadline:
				t.Fatal("initial check did not run")
			case <-time.After(10 * time.Millisecond):
			}
		}

		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})

	t.Run("invalid schedule", func(t *testing.T) {
		monitor := NewExpiryMonitor(issued.Cert, "not a schedule", nil, nil)
		if err := monitor.Run(context.Background()); err == nil {
			t.Error("expected invalid schedule error")
		}
	})

	t.Run("empty schedule checks once", func(t *testing.T) {
		var calls atomic.Int32
		monitor := NewExpiryMonitor(issued.Cert, "", func(int) { calls.Add(1) }, nil)
		if err := monitor.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls.Load() != 1 {
			t.Errorf("expected 1 check, got %d", calls.Load())
		}
	})
}
