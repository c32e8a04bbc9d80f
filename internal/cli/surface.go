package cli

import (
	"fmt"

	"github.com/gosimple/slug"
)

// paletteEntry is one shortcut bound to the in-process command palette.
type paletteEntry struct {
	id      string
	display string
	name    string // slug of display, the addressable shortcut name
	invoke  func() error
}

// paletteSurface is the CLI's host command surface: shortcuts registered
// here are addressable by name via `qo open` and shell completion.
// It implements registry.Surface.
type paletteSurface struct {
	byID  map[string]*paletteEntry
	order []string // ids in registration order
}

func newPaletteSurface() *paletteSurface {
	return &paletteSurface{byID: make(map[string]*paletteEntry)}
}

// Register binds a shortcut. A duplicate id is rejected; the caller treats
// registration as best-effort.
func (p *paletteSurface) Register(id, name string, invoke func() error) error {
	if _, exists := p.byID[id]; exists {
		return fmt.Errorf("command id already registered: %s", id)
	}
	p.byID[id] = &paletteEntry{
		id:      id,
		display: name,
		name:    slug.Make(name),
		invoke:  invoke,
	}
	p.order = append(p.order, id)
	return nil
}

// Unregister removes a shortcut binding. An unknown id is an error the
// caller discards.
func (p *paletteSurface) Unregister(id string) error {
	if _, exists := p.byID[id]; !exists {
		return fmt.Errorf("unknown command id: %s", id)
	}
	delete(p.byID, id)
	for i, oid := range p.order {
		if oid == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return nil
}

// Lookup resolves a shortcut by addressable name (first match in
// registration order).
func (p *paletteSurface) Lookup(name string) (*paletteEntry, bool) {
	for _, id := range p.order {
		if entry, ok := p.byID[id]; ok && entry.name == name {
			return entry, true
		}
	}
	return nil, false
}

// Names returns all addressable shortcut names in registration order.
func (p *paletteSurface) Names() []string {
	out := make([]string, 0, len(p.order))
	for _, id := range p.order {
		if entry, ok := p.byID[id]; ok {
			out = append(out, entry.name)
		}
	}
	return out
}
