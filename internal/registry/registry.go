// Package registry maintains the ordered set of open-file shortcuts for a
// vault and its persisted mirror.
//
// The registry is single-writer by construction: every mutation runs to
// completion inside one CLI invocation or one watcher callback, and each
// successful mutation is written through to the store before it returns,
// so in-memory and on-disk state never diverge on success.
package registry

import (
	"errors"
	"fmt"
)

// Command is one registered shortcut.
type Command struct {
	// ID is derived from FilePath at creation time and never recomputed,
	// even when the path later changes.
	ID string `json:"id"`

	// FilePath is the vault-relative path to a markdown file. It may
	// dangle when the file was deleted outside of an observed event.
	FilePath string `json:"filePath"`
}

// Sentinel errors for registry operations. All are recovered locally by
// callers and surfaced as user notices, never as fatal failures.
var (
	ErrAlreadyRegistered = errors.New("a shortcut for this file is already registered")
	ErrNotFound          = errors.New("no shortcut with this id")
)

// Registry is the in-memory shortcut list plus its persisted mirror and
// host surface bindings.
type Registry struct {
	store    Store
	surface  Surface
	commands []*Command
}

// Open loads the persisted shortcut list from store. A nil surface
// falls back to NopSurface.
func Open(store Store, surface Surface) (*Registry, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if surface == nil {
		surface = NopSurface{}
	}

	commands, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load shortcuts: %w", err)
	}

	return &Registry{
		store:    store,
		surface:  surface,
		commands: commands,
	}, nil
}

// Add registers a new shortcut for filePath, appending it in insertion
// order. It fails with ErrAlreadyRegistered when any entry already has
// exactly this path. On success the entry is persisted and bound to the
// host surface under displayName.
func (r *Registry) Add(filePath, displayName string, invoke func() error) (*Command, error) {
	if len(r.FindByPath(filePath)) > 0 {
		return nil, ErrAlreadyRegistered
	}

	cmd := &Command{
		ID:       MakeID(filePath),
		FilePath: filePath,
	}
	r.commands = append(r.commands, cmd)

	if err := r.persist(); err != nil {
		r.commands = r.commands[:len(r.commands)-1]
		return nil, err
	}

	// Best-effort: a colliding id already held by the surface is silently
	// dropped; the registry entry stands.
	_ = r.surface.Register(cmd.ID, displayName, invoke)

	return cmd, nil
}

// RemoveByID removes the shortcut with the given id. It fails with
// ErrNotFound when no entry has that id. On success the entry is removed
// from the persisted list and unbound from the host surface.
func (r *Registry) RemoveByID(id string) (*Command, error) {
	idx := -1
	for i, cmd := range r.commands {
		if cmd.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	removed := r.commands[idx]
	r.commands = append(r.commands[:idx], r.commands[idx+1:]...)

	if err := r.persist(); err != nil {
		r.commands = append(r.commands[:idx], append([]*Command{removed}, r.commands[idx:]...)...)
		return nil, err
	}

	// Best-effort: the surface may not know the id.
	_ = r.surface.Unregister(removed.ID)

	return removed, nil
}

// FindByPath returns all entries whose FilePath equals path exactly.
// The normal case is zero or one; multiple matches can exist only after
// out-of-band mutation of the persisted state, and callers must handle
// every match, not just the first.
func (r *Registry) FindByPath(path string) []*Command {
	var out []*Command
	for _, cmd := range r.commands {
		if cmd.FilePath == path {
			out = append(out, cmd)
		}
	}
	return out
}

// UpdatePath rewrites the FilePath of every entry matching oldPath to
// newPath, keeping ids untouched, and persists once. Zero matches is a
// no-op with no persistence write. Returns the updated entries.
func (r *Registry) UpdatePath(oldPath, newPath string) ([]*Command, error) {
	matches := r.FindByPath(oldPath)
	if len(matches) == 0 {
		return nil, nil
	}

	for _, cmd := range matches {
		cmd.FilePath = newPath
	}

	if err := r.persist(); err != nil {
		for _, cmd := range matches {
			cmd.FilePath = oldPath
		}
		return nil, err
	}

	return matches, nil
}

// RemoveByPath removes every entry matching path and persists once.
// Zero matches is a no-op with no persistence write. The removed entries
// are returned; unbinding them from the surface is the caller's concern.
func (r *Registry) RemoveByPath(path string) ([]*Command, error) {
	matches := r.FindByPath(path)
	if len(matches) == 0 {
		return nil, nil
	}

	prev := r.commands
	kept := make([]*Command, 0, len(r.commands)-len(matches))
	for _, cmd := range r.commands {
		if cmd.FilePath != path {
			kept = append(kept, cmd)
		}
	}
	r.commands = kept

	if err := r.persist(); err != nil {
		r.commands = prev
		return nil, err
	}

	return matches, nil
}

// ListAll returns a snapshot of all entries in insertion order.
func (r *Registry) ListAll() []*Command {
	out := make([]*Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of registered shortcuts.
func (r *Registry) Len() int {
	return len(r.commands)
}

// RegisterAll binds every entry to the host surface, including entries
// whose file no longer exists: invocation handlers resolve the path at
// call time, so a dangling shortcut still appears and can report that its
// file is missing instead of vanishing. Surface failures are discarded.
func (r *Registry) RegisterAll(displayName func(*Command) string, invoke func(*Command) func() error) {
	for _, cmd := range r.commands {
		_ = r.surface.Register(cmd.ID, displayName(cmd), invoke(cmd))
	}
}

// UnregisterAll removes every entry's host surface binding without
// touching the registry data itself. Surface failures are discarded.
func (r *Registry) UnregisterAll() {
	for _, cmd := range r.commands {
		_ = r.surface.Unregister(cmd.ID)
	}
}

// Surface returns the host surface the registry binds shortcuts to.
func (r *Registry) Surface() Surface {
	return r.surface
}

func (r *Registry) persist() error {
	if err := r.store.Save(r.commands); err != nil {
		return fmt.Errorf("persist shortcuts: %w", err)
	}
	return nil
}
