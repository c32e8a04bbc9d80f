package reconcile

import (
	"errors"
	"testing"

	"github.com/quickopen/quickopen/internal/registry"
)

// memStore counts saves so tests can assert the one-persist-per-event
// contract.
type memStore struct {
	commands []*registry.Command
	saves    int
}

func (s *memStore) Load() ([]*registry.Command, error) {
	out := make([]*registry.Command, len(s.commands))
	for i, c := range s.commands {
		copied := *c
		out[i] = &copied
	}
	return out, nil
}

func (s *memStore) Save(commands []*registry.Command) error {
	s.saves++
	s.commands = make([]*registry.Command, len(commands))
	for i, c := range commands {
		copied := *c
		s.commands[i] = &copied
	}
	return nil
}

type recordSurface struct {
	registered map[string]string
	regCalls   []string
	unregCalls []string
	alwaysErr  bool
}

func newRecordSurface() *recordSurface {
	return &recordSurface{registered: make(map[string]string)}
}

func (s *recordSurface) Register(id, name string, invoke func() error) error {
	s.regCalls = append(s.regCalls, id)
	if s.alwaysErr {
		return errors.New("surface rejected register")
	}
	s.registered[id] = name
	return nil
}

func (s *recordSurface) Unregister(id string) error {
	s.unregCalls = append(s.unregCalls, id)
	if s.alwaysErr {
		return errors.New("surface rejected unregister")
	}
	if _, exists := s.registered[id]; !exists {
		return errors.New("unknown id")
	}
	delete(s.registered, id)
	return nil
}

type recordNotifier struct {
	notices []string
}

func (n *recordNotifier) Notify(msg string) {
	n.notices = append(n.notices, msg)
}

func setup(t *testing.T, store *memStore, surface registry.Surface) (*Reconciler, *registry.Registry, *recordNotifier) {
	t.Helper()
	reg, err := registry.Open(store, surface)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	notifier := &recordNotifier{}
	rec, err := New(Config{Registry: reg, Notify: notifier})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rec, reg, notifier
}

func TestOnRenameUpdatesPathKeepsID(t *testing.T) {
	store := &memStore{commands: []*registry.Command{
		{ID: "x", FilePath: "A/b.md"},
	}}
	rec, reg, notifier := setup(t, store, nil)
	savesBefore := store.saves

	if err := rec.OnRename("A/b.md", "A/c.md"); err != nil {
		t.Fatalf("OnRename: %v", err)
	}

	all := reg.ListAll()
	if len(all) != 1 {
		t.Fatalf("registry length = %d", len(all))
	}
	if all[0].ID != "x" {
		t.Errorf("id changed across rename: %q", all[0].ID)
	}
	if all[0].FilePath != "A/c.md" {
		t.Errorf("path = %q, want A/c.md", all[0].FilePath)
	}
	if store.saves != savesBefore+1 {
		t.Errorf("saves = %d, want exactly one more than %d", store.saves, savesBefore)
	}
	if len(notifier.notices) != 1 {
		t.Errorf("notices = %v, want exactly one", notifier.notices)
	}
}

func TestOnRenameReregistersUnderSameID(t *testing.T) {
	store := &memStore{commands: []*registry.Command{
		{ID: "x", FilePath: "A/b.md"},
	}}
	surface := newRecordSurface()
	rec, _, _ := setup(t, store, surface)

	if err := rec.OnRename("A/b.md", "A/c.md"); err != nil {
		t.Fatalf("OnRename: %v", err)
	}

	// The surface has no in-place rename: unregister then register, id unchanged.
	if len(surface.unregCalls) != 1 || surface.unregCalls[0] != "x" {
		t.Errorf("unregister calls = %v", surface.unregCalls)
	}
	if len(surface.regCalls) != 1 || surface.regCalls[0] != "x" {
		t.Errorf("register calls = %v", surface.regCalls)
	}
}

func TestOnRenameUpdatesAllMatches(t *testing.T) {
	store := &memStore{commands: []*registry.Command{
		{ID: "one", FilePath: "dup.md"},
		{ID: "two", FilePath: "other.md"},
		{ID: "three", FilePath: "dup.md"},
	}}
	rec, reg, notifier := setup(t, store, nil)
	savesBefore := store.saves

	if err := rec.OnRename("dup.md", "moved.md"); err != nil {
		t.Fatalf("OnRename: %v", err)
	}

	if got := len(reg.FindByPath("moved.md")); got != 2 {
		t.Errorf("moved entries = %d, want 2", got)
	}
	if store.saves != savesBefore+1 {
		t.Errorf("saves = %d, want single persist for all matches", store.saves)
	}
	if len(notifier.notices) != 1 {
		t.Errorf("notices = %v, want single notice", notifier.notices)
	}
}

func TestOnRenameNoMatchIsNoOp(t *testing.T) {
	store := &memStore{commands: []*registry.Command{
		{ID: "x", FilePath: "a.md"},
	}}
	rec, reg, notifier := setup(t, store, nil)
	savesBefore := store.saves

	if err := rec.OnRename("unrelated.md", "elsewhere.md"); err != nil {
		t.Fatalf("OnRename: %v", err)
	}
	if store.saves != savesBefore {
		t.Errorf("no-op rename persisted (saves %d -> %d)", savesBefore, store.saves)
	}
	if len(notifier.notices) != 0 {
		t.Errorf("no-op rename notified: %v", notifier.notices)
	}
	if all := reg.ListAll(); all[0].FilePath != "a.md" {
		t.Errorf("registry mutated by no-op: %+v", all)
	}
}

func TestOnRenameEmptyOldPathGuard(t *testing.T) {
	store := &memStore{commands: []*registry.Command{
		{ID: "x", FilePath: ""},
	}}
	rec, reg, _ := setup(t, store, nil)
	savesBefore := store.saves

	// Even with a (corrupt) empty-path entry present, an empty old path
	// must not reconcile anything.
	if err := rec.OnRename("", "new.md"); err != nil {
		t.Fatalf("OnRename: %v", err)
	}
	if store.saves != savesBefore {
		t.Error("empty old path triggered a persist")
	}
	if all := reg.ListAll(); all[0].FilePath != "" {
		t.Errorf("empty old path mutated registry: %+v", all)
	}
}

func TestOnDeleteRemovesEntry(t *testing.T) {
	store := &memStore{commands: []*registry.Command{
		{ID: "x", FilePath: "A/b.md"},
		{ID: "y", FilePath: "keep.md"},
	}}
	surface := newRecordSurface()
	surface.registered["x"] = "b"
	surface.registered["y"] = "keep"
	rec, reg, notifier := setup(t, store, surface)
	savesBefore := store.saves

	if err := rec.OnDelete("A/b.md"); err != nil {
		t.Fatalf("OnDelete: %v", err)
	}

	if len(reg.FindByPath("A/b.md")) != 0 {
		t.Error("deleted path still registered")
	}
	for _, c := range reg.ListAll() {
		if c.ID == "x" {
			t.Error("deleted id still present")
		}
	}
	if reg.Len() != 1 {
		t.Errorf("registry length = %d, want 1", reg.Len())
	}
	if _, bound := surface.registered["x"]; bound {
		t.Error("deleted shortcut still bound to surface")
	}
	if store.saves != savesBefore+1 {
		t.Errorf("saves = %d, want exactly one more", store.saves)
	}
	if len(notifier.notices) != 1 {
		t.Errorf("notices = %v, want exactly one", notifier.notices)
	}
}

func TestOnDeleteNoMatchIsNoOp(t *testing.T) {
	store := &memStore{commands: []*registry.Command{
		{ID: "x", FilePath: "a.md"},
	}}
	rec, _, notifier := setup(t, store, nil)
	savesBefore := store.saves

	if err := rec.OnDelete("unrelated.md"); err != nil {
		t.Fatalf("OnDelete: %v", err)
	}
	if store.saves != savesBefore {
		t.Error("no-op delete persisted")
	}
	if len(notifier.notices) != 0 {
		t.Errorf("no-op delete notified: %v", notifier.notices)
	}
}

func TestSurfaceFailuresAreDiscarded(t *testing.T) {
	store := &memStore{commands: []*registry.Command{
		{ID: "x", FilePath: "a.md"},
	}}
	surface := newRecordSurface()
	surface.alwaysErr = true
	rec, reg, _ := setup(t, store, surface)

	if err := rec.OnRename("a.md", "b.md"); err != nil {
		t.Fatalf("OnRename with failing surface: %v", err)
	}
	if reg.ListAll()[0].FilePath != "b.md" {
		t.Error("registry not updated despite surface failure")
	}

	if err := rec.OnDelete("b.md"); err != nil {
		t.Fatalf("OnDelete with failing surface: %v", err)
	}
	if reg.Len() != 0 {
		t.Error("registry not emptied despite surface failure")
	}
}

func TestRefreshFailureIsSwallowed(t *testing.T) {
	store := &memStore{commands: []*registry.Command{
		{ID: "x", FilePath: "a.md"},
	}}
	reg, err := registry.Open(store, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	refreshed := 0
	rec, err := New(Config{
		Registry: reg,
		Refresh: func() error {
			refreshed++
			return errors.New("no presentation surface open")
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := rec.OnDelete("a.md"); err != nil {
		t.Fatalf("OnDelete: %v", err)
	}
	if refreshed != 1 {
		t.Errorf("refresh calls = %d, want 1", refreshed)
	}
}
