package registry

// Surface is the host command surface: the set of invokable, name-addressed
// actions a shortcut is bound to. Implementations may reject operations on
// unknown or duplicate ids; callers treat both directions as best-effort
// and discard the error, because the registry's own state is the source of
// truth and the surface is rebuilt from it on the next registration pass.
type Surface interface {
	Register(id, name string, invoke func() error) error
	Unregister(id string) error
}

// NopSurface is the fallback Surface for contexts with no command palette
// (persistence-only operations, tests).
type NopSurface struct{}

func (NopSurface) Register(id, name string, invoke func() error) error { return nil }
func (NopSurface) Unregister(id string) error                          { return nil }
