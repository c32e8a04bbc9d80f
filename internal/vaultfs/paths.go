// Package vaultfs provides filesystem access to a markdown vault:
// vault-relative path normalization, markdown enumeration, and opening
// files in the user's editor.
package vaultfs

import (
	"path/filepath"
	"strings"
)

// NormalizeRelPath normalizes a vault-relative path-like value:
// - converts OS separators to '/'
// - trims leading "./" and leading "/"
// - collapses repeated '/'
func NormalizeRelPath(p string) string {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

// EnsureMarkdownExt appends ".md" when the path has no markdown extension.
func EnsureMarkdownExt(p string) string {
	if strings.HasSuffix(p, ".md") {
		return p
	}
	return p + ".md"
}
