package tls

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// MaterialWatcher reports changes to the TLS material directory. Material is
// loaded once, so a change only produces a "restart required" warning and a
// call to onChange.
type MaterialWatcher struct {
	dir      string
	onChange func(path string)
	logger   *slog.Logger
}

// NewMaterialWatcher creates a watcher for dir.
func NewMaterialWatcher(dir string, onChange func(path string), logger *slog.Logger) *MaterialWatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &MaterialWatcher{
		dir:      dir,
		onChange: onChange,
		logger:   logger.With("component", "tls.watcher"),
	}
}

// Watch blocks until ctx is cancelled, reporting writes, creates, removes
// and renames of .pem files in the directory.
func (w *MaterialWatcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	w.logger.Info("TLS material watcher started", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("TLS material watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !isMaterialEvent(event) {
				continue
			}

			w.logger.Warn("TLS material changed, restart required to apply",
				"path", event.Name,
				"op", event.Op.String(),
			)
			if w.onChange != nil {
				w.onChange(event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("TLS material watcher error", "error", err)
		}
	}
}

func isMaterialEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	base := filepath.Base(event.Name)
	return !strings.HasPrefix(base, ".") && strings.HasSuffix(base, ".pem")
}
