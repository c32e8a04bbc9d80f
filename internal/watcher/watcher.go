// Package watcher monitors a vault for disappearing markdown files and
// drives delete reconciliation of the shortcut registry.
//
// fsnotify cannot pair a Rename event with the Create of the file's new
// location, so an externally renamed file is observed as a vanish and
// reconciled as a delete. In-tool renames go through `qo mv`, which
// preserves shortcut ids.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/quickopen/quickopen/internal/reconcile"
	"github.com/quickopen/quickopen/internal/vaultfs"
)

// Watcher monitors a vault directory and removes shortcuts whose files
// have vanished.
type Watcher struct {
	vaultPath  string
	reconciler *reconcile.Reconciler

	// Configuration
	settleDelay time.Duration
	debug       bool

	// Internal state
	fsWatcher *fsnotify.Watcher
	pending   map[string]time.Time
	mu        sync.Mutex

	// Callbacks
	onRemove func(relPath string, err error)
}

// Config holds configuration options for the Watcher.
type Config struct {
	VaultPath  string
	Reconciler *reconcile.Reconciler
	// SettleDelay is how long a path must stay gone before it is treated
	// as deleted. Editors that save via rename briefly remove the old
	// file; the delay lets the replacement reappear. Default: 500ms.
	SettleDelay time.Duration
	Debug       bool
	OnRemove    func(relPath string, err error) // Optional callback
}

// New creates a new Watcher with the given configuration.
func New(cfg Config) (*Watcher, error) {
	if cfg.VaultPath == "" {
		return nil, fmt.Errorf("vault path is required")
	}
	if cfg.Reconciler == nil {
		return nil, fmt.Errorf("reconciler is required")
	}

	settle := cfg.SettleDelay
	if settle == 0 {
		settle = 500 * time.Millisecond
	}

	return &Watcher{
		vaultPath:   cfg.VaultPath,
		reconciler:  cfg.Reconciler,
		settleDelay: settle,
		debug:       cfg.Debug,
		pending:     make(map[string]time.Time),
		onRemove:    cfg.OnRemove,
	}, nil
}

// Start begins watching the vault. It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.fsWatcher.Close()

	if err := w.addWatchRecursive(w.vaultPath); err != nil {
		return fmt.Errorf("failed to watch vault: %w", err)
	}

	w.logDebug("Watching vault: %s", w.vaultPath)

	go w.processSettled(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logDebug("Watcher error: %v", err)
		}
	}
}

// handleEvent processes a single filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if !strings.HasSuffix(path, ".md") {
		// But watch new directories
		if event.Op&fsnotify.Create != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				_ = w.addWatchRecursive(path)
			}
		}
		return
	}

	if w.shouldIgnore(path) {
		return
	}

	w.logDebug("Event: %s %s", event.Op, path)

	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		w.scheduleVanishCheck(path)
	}
}

// scheduleVanishCheck marks a path for a deferred gone-for-good check.
func (w *Watcher) scheduleVanishCheck(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[path] = time.Now()
}

// processSettled periodically reconciles paths that stayed gone past the
// settle delay.
func (w *Watcher) processSettled(ctx context.Context) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.processPending()
		}
	}
}

func (w *Watcher) processPending() {
	w.mu.Lock()
	now := time.Now()
	ready := make([]string, 0)

	for path, seenAt := range w.pending {
		if now.Sub(seenAt) >= w.settleDelay {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range ready {
		if _, err := os.Stat(path); err == nil {
			// The file came back (atomic-save rename). Nothing vanished.
			continue
		}

		relPath, err := filepath.Rel(w.vaultPath, path)
		if err != nil {
			w.logDebug("Failed to relativize %s: %v", path, err)
			continue
		}
		relPath = vaultfs.NormalizeRelPath(relPath)

		err = w.reconciler.OnDelete(relPath)
		if w.onRemove != nil {
			w.onRemove(relPath, err)
		}
		if err != nil {
			w.logDebug("Failed to reconcile delete of %s: %v", relPath, err)
		}
	}
}

// addWatchRecursive adds a directory and all subdirectories to the watcher.
func (w *Watcher) addWatchRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if info.IsDir() {
			if path != root && vaultfs.ShouldIgnoreDir(filepath.Base(path)) {
				return filepath.SkipDir
			}
			if err := w.fsWatcher.Add(path); err != nil {
				w.logDebug("Failed to watch %s: %v", path, err)
			}
		}
		return nil
	})
}

// shouldIgnore returns true if the path should be ignored.
func (w *Watcher) shouldIgnore(path string) bool {
	rel, err := filepath.Rel(w.vaultPath, path)
	if err != nil {
		return false
	}

	parts := strings.Split(rel, string(filepath.Separator))
	for i, part := range parts {
		if i == len(parts)-1 {
			break // the file itself
		}
		if vaultfs.ShouldIgnoreDir(part) {
			return true
		}
	}
	return false
}

// logDebug logs a debug message if debug mode is enabled.
func (w *Watcher) logDebug(format string, args ...interface{}) {
	if w.debug {
		fmt.Fprintf(os.Stderr, "[qo-watcher] "+format+"\n", args...)
	}
}
