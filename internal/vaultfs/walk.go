package vaultfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// StateDir is the vault-local directory quickopen keeps its state in.
const StateDir = ".quickopen"

// FileExists reports whether a vault-relative path resolves to a regular file.
func FileExists(vaultPath, relPath string) bool {
	info, err := os.Stat(filepath.Join(vaultPath, filepath.FromSlash(relPath)))
	return err == nil && info.Mode().IsRegular()
}

// ListMarkdownFiles returns the vault-relative paths of all markdown files
// in the vault, sorted. It skips the quickopen state directory and hidden
// directories such as .git and .obsidian.
func ListMarkdownFiles(vaultPath string) ([]string, error) {
	var out []string

	err := filepath.WalkDir(vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Best-effort: unreadable entries should not abort enumeration.
			return nil
		}

		if d.IsDir() {
			if ShouldIgnoreDir(d.Name()) && path != vaultPath {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(path, ".md") {
			return nil
		}

		relPath, err := filepath.Rel(vaultPath, path)
		if err != nil {
			return nil
		}
		out = append(out, NormalizeRelPath(relPath))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(out)
	return out, nil
}

// ShouldIgnoreDir reports whether a directory name should be excluded from
// enumeration and watching.
func ShouldIgnoreDir(name string) bool {
	if name == StateDir || name == "node_modules" {
		return true
	}
	return strings.HasPrefix(name, ".")
}
