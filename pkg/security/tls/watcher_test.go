package tls

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMaterialWatcher_ReportsChanges(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan string, 16)
	watcher := NewMaterialWatcher(dir, func(path string) {
		select {
		case changed <- path:
		default:
		}
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Watch(ctx) }()

	target := filepath.Join(dir, "cert-development.crt.pem")
	ignored := filepath.Join(dir, "notes.txt")

	// The watch is registered asynchronously; keep writing until it is seen.
	deadline := time.After(5 * time.Second)
	var got string
loop:
	for {
		if err := os.WriteFile(ignored, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		select {
		case got = <-changed:
			break loop
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatal("no change reported")
		}
	}

	if got != target {
		t.Errorf("expected change for %s, got %s", target, got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestMaterialWatcher_MissingDir(t *testing.T) {
	watcher := NewMaterialWatcher(filepath.Join(t.TempDir(), "missing"), nil, nil)
	if err := watcher.Watch(context.Background()); err == nil {
		t.Error("expected error for missing directory")
	}
}
