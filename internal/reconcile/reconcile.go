// Package reconcile keeps the shortcut registry consistent with external
// file-system changes.
//
// Each event is handled synchronously to completion: a rename or delete
// reconciliation never queues, never aborts partway, and produces at most
// one persistence write and one user notice. Host surface calls along the
// way are best-effort; a failed unregister or register is discarded
// because the registry is the source of truth and surface bindings are
// rebuilt on the next registration pass.
package reconcile

import (
	"fmt"

	"github.com/quickopen/quickopen/internal/registry"
)

// Notifier receives transient user-visible notices.
type Notifier interface {
	Notify(msg string)
}

// NopNotifier discards notices.
type NopNotifier struct{}

func (NopNotifier) Notify(string) {}

// Config holds the reconciler's collaborators.
type Config struct {
	Registry *registry.Registry
	Notify   Notifier

	// DisplayName derives a shortcut's display text for a path. Optional;
	// defaults to the path itself.
	DisplayName func(path string) string

	// Invoke builds the invocation handler bound to the surface for a
	// path. Optional; defaults to a no-op handler.
	Invoke func(path string) func() error

	// Refresh repaints any open presentation surface after a delete.
	// Optional and best-effort: a refresh failure is swallowed because
	// the registry state is already correct.
	Refresh func() error
}

// Reconciler applies rename and delete events to the registry.
type Reconciler struct {
	registry    *registry.Registry
	notify      Notifier
	displayName func(path string) string
	invoke      func(path string) func() error
	refresh     func() error
}

// New creates a Reconciler.
func New(cfg Config) (*Reconciler, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("registry is required")
	}

	notify := cfg.Notify
	if notify == nil {
		notify = NopNotifier{}
	}
	displayName := cfg.DisplayName
	if displayName == nil {
		displayName = func(path string) string { return path }
	}
	invoke := cfg.Invoke
	if invoke == nil {
		invoke = func(string) func() error {
			return func() error { return nil }
		}
	}

	return &Reconciler{
		registry:    cfg.Registry,
		notify:      notify,
		displayName: displayName,
		invoke:      invoke,
		refresh:     cfg.Refresh,
	}, nil
}

// OnRename updates every shortcut pointing at oldPath to newPath, keeping
// ids untouched so bound hotkeys stay attached. The surface binding is
// re-registered under the unchanged id because the surface has no
// in-place rename.
func (r *Reconciler) OnRename(oldPath, newPath string) error {
	if oldPath == "" {
		// Defensive guard: some event sources deliver an empty previous path.
		return nil
	}

	updated, err := r.registry.UpdatePath(oldPath, newPath)
	if err != nil {
		return err
	}
	if len(updated) == 0 {
		return nil
	}

	surface := r.registry.Surface()
	for _, cmd := range updated {
		// Best-effort: the surface may not know the id or may reject it.
		_ = surface.Unregister(cmd.ID)
		_ = surface.Register(cmd.ID, r.displayName(newPath), r.invoke(newPath))
	}

	r.notify.Notify(fmt.Sprintf("Updated shortcut path: %s → %s", oldPath, newPath))
	return nil
}

// OnDelete removes every shortcut pointing at path.
func (r *Reconciler) OnDelete(path string) error {
	removed, err := r.registry.RemoveByPath(path)
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return nil
	}

	surface := r.registry.Surface()
	for _, cmd := range removed {
		// Best-effort: the surface may not know the id.
		_ = surface.Unregister(cmd.ID)
	}

	r.notify.Notify(fmt.Sprintf("Removed shortcut for deleted file: %s", path))

	if r.refresh != nil {
		// Best-effort repaint; the registry state is already correct.
		_ = r.refresh()
	}
	return nil
}
