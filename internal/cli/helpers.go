package cli

import (
	"fmt"
	"path/filepath"

	"github.com/quickopen/quickopen/internal/reconcile"
	"github.com/quickopen/quickopen/internal/registry"
	"github.com/quickopen/quickopen/internal/title"
	"github.com/quickopen/quickopen/internal/ui"
	"github.com/quickopen/quickopen/internal/vaultfs"
)

// openRegistry loads the vault's shortcut registry and runs the startup
// registration pass against a fresh in-process palette. Dangling entries
// are registered too; their handlers report the missing file at invoke
// time instead of the shortcut disappearing.
func openRegistry(vaultPath string) (*registry.Registry, *paletteSurface, error) {
	palette := newPaletteSurface()

	reg, err := registry.Open(registry.NewFileStore(vaultPath), palette)
	if err != nil {
		return nil, nil, err
	}

	reg.RegisterAll(
		func(c *registry.Command) string { return title.ForFile(vaultPath, c.FilePath) },
		func(c *registry.Command) func() error { return openHandler(vaultPath, c) },
	)

	return reg, palette, nil
}

// openHandler builds a shortcut's invocation handler. The path is read
// from the entry at call time, so a rename reconciled earlier in the same
// process is picked up, and a vanished file produces a notice rather
// than a failure.
func openHandler(vaultPath string, c *registry.Command) func() error {
	return func() error {
		return openVaultFile(vaultPath, c.FilePath)
	}
}

// openVaultFile opens a vault-relative file in the configured editor.
func openVaultFile(vaultPath, relPath string) error {
	if !vaultfs.FileExists(vaultPath, relPath) {
		fmt.Println(ui.Warningf("File not found: %s", relPath))
		return nil
	}

	fullPath := filepath.Join(vaultPath, filepath.FromSlash(relPath))
	editor := ""
	if cfg := getConfig(); cfg != nil {
		editor = cfg.GetEditor()
	}

	if vaultfs.OpenInEditor(editor, fullPath) {
		fmt.Printf("Opening %s\n", ui.FilePath(relPath))
	} else {
		fmt.Printf("File: %s\n", ui.FilePath(relPath))
		fmt.Println(ui.Hint("(Set 'editor' in ~/.config/quickopen/config.toml or $EDITOR to open automatically)"))
	}
	return nil
}

// newReconciler builds the reconciler for a loaded registry.
func newReconciler(vaultPath string, reg *registry.Registry) (*reconcile.Reconciler, error) {
	return reconcile.New(reconcile.Config{
		Registry: reg,
		Notify:   printNotifier{},
		DisplayName: func(path string) string {
			return title.ForFile(vaultPath, path)
		},
		Invoke: func(path string) func() error {
			return func() error { return openVaultFile(vaultPath, path) }
		},
	})
}

// printNotifier prints reconciliation notices to stdout.
type printNotifier struct{}

func (printNotifier) Notify(msg string) {
	fmt.Println(ui.Info(msg))
}

// normalizeVaultArg normalizes a user-supplied file argument to a
// vault-relative markdown path.
func normalizeVaultArg(arg string) string {
	return vaultfs.EnsureMarkdownExt(vaultfs.NormalizeRelPath(arg))
}
