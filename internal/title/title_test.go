package title

import (
	"testing"

	"github.com/quickopen/quickopen/internal/testutil"
)

func TestFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		fallback string
		want     string
	}{
		{
			name:     "frontmatter title wins",
			content:  "---\ntitle: Weekly Review\n---\n\n# Something Else\n",
			fallback: "weekly",
			want:     "Weekly Review",
		},
		{
			name:     "first h1 when no frontmatter",
			content:  "# Project Plan\n\nbody text\n",
			fallback: "plan",
			want:     "Project Plan",
		},
		{
			name:     "h2 is not a title",
			content:  "## Section\n\nbody\n",
			fallback: "notes",
			want:     "notes",
		},
		{
			name:     "empty frontmatter title falls through to heading",
			content:  "---\ntitle: \"\"\ntags: [a, b]\n---\n# From Heading\n",
			fallback: "file",
			want:     "From Heading",
		},
		{
			name:     "malformed frontmatter falls through",
			content:  "---\ntitle: [unclosed\n---\n# Recovered\n",
			fallback: "file",
			want:     "Recovered",
		},
		{
			name:     "unclosed frontmatter treated as body",
			content:  "---\ntitle: Hidden\n\n# Visible\n",
			fallback: "file",
			want:     "Visible",
		},
		{
			name:     "plain text falls back",
			content:  "no headings here\n",
			fallback: "fallback-name",
			want:     "fallback-name",
		},
		{
			name:     "empty content falls back",
			content:  "",
			fallback: "empty",
			want:     "empty",
		},
		{
			name:     "first of several h1s",
			content:  "# First\n\n# Second\n",
			fallback: "x",
			want:     "First",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromContent(tt.content, tt.fallback)
			if got != tt.want {
				t.Errorf("FromContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForFile(t *testing.T) {
	vault := testutil.NewTestVault(t).
		WithFile("Notes/Daily.md", "---\ntitle: Daily Log\n---\n").
		WithFile("plain.md", "# Plain Heading\n").
		WithFile("bare.md", "just text\n").
		Build()

	tests := []struct {
		relPath string
		want    string
	}{
		{"Notes/Daily.md", "Daily Log"},
		{"plain.md", "Plain Heading"},
		{"bare.md", "bare"},
		{"missing.md", "missing"}, // dangling shortcut keeps a stable label
	}

	for _, tt := range tests {
		t.Run(tt.relPath, func(t *testing.T) {
			got := ForFile(vault.Path, tt.relPath)
			if got != tt.want {
				t.Errorf("ForFile(%q) = %q, want %q", tt.relPath, got, tt.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Notes/Daily.md", "Daily"},
		{"a.md", "a"},
		{"deep/nested/path/file.md", "file"},
		{"no-extension", "no-extension"},
	}

	for _, tt := range tests {
		if got := BaseName(tt.in); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
