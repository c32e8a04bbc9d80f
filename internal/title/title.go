// Package title derives human-readable display names for vault notes.
//
// Precedence: frontmatter `title:` field, then the first level-1 heading,
// then the file's base name without extension.
package title

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// ForFile returns the display name for a vault-relative markdown file.
// Unreadable files fall back to the base name so a dangling shortcut still
// has a stable label.
func ForFile(vaultPath, relPath string) string {
	fallback := BaseName(relPath)

	content, err := os.ReadFile(filepath.Join(vaultPath, filepath.FromSlash(relPath)))
	if err != nil {
		return fallback
	}
	return FromContent(string(content), fallback)
}

// FromContent extracts a display name from markdown content.
func FromContent(content, fallback string) string {
	body := content

	if fm, rest, ok := splitFrontmatter(content); ok {
		body = rest
		var meta struct {
			Title string `yaml:"title"`
		}
		// Malformed frontmatter is not an error here; the heading or the
		// fallback still produce a usable name.
		if err := yaml.Unmarshal([]byte(fm), &meta); err == nil {
			if t := strings.TrimSpace(meta.Title); t != "" {
				return t
			}
		}
	}

	if h := firstHeading(body); h != "" {
		return h
	}
	return fallback
}

// BaseName returns the file's base name without the .md extension.
func BaseName(relPath string) string {
	base := filepath.Base(filepath.FromSlash(relPath))
	return strings.TrimSuffix(base, ".md")
}

// splitFrontmatter separates a leading YAML frontmatter block from the body.
// Frontmatter is only recognized when the first line is exactly "---".
func splitFrontmatter(content string) (frontmatter, body string, ok bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", content, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), true
		}
	}

	// Unclosed frontmatter: treat the whole document as body.
	return "", content, false
}

// firstHeading returns the text of the first level-1 ATX heading, or "".
func firstHeading(body string) string {
	src := []byte(body)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var found string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			found = strings.TrimSpace(string(h.Text(src)))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}
