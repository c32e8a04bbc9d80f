package vaultfs

import (
	"testing"

	"github.com/quickopen/quickopen/internal/testutil"
)

func TestListMarkdownFiles(t *testing.T) {
	vault := testutil.NewTestVault(t).
		WithFile("b.md", "").
		WithFile("a.md", "").
		WithFile("Notes/Daily.md", "").
		WithFile("Notes/scratch.txt", "").
		WithFile(".obsidian/workspace.md", "").
		WithFile(".quickopen/commands.json", "{}").
		WithFile("node_modules/pkg/readme.md", "").
		Build()

	files, err := ListMarkdownFiles(vault.Path)
	if err != nil {
		t.Fatalf("ListMarkdownFiles: %v", err)
	}

	want := []string{"Notes/Daily.md", "a.md", "b.md"}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFileExists(t *testing.T) {
	vault := testutil.NewTestVault(t).
		WithFile("Notes/Daily.md", "").
		Build()

	if !FileExists(vault.Path, "Notes/Daily.md") {
		t.Error("existing file reported missing")
	}
	if FileExists(vault.Path, "Notes/Missing.md") {
		t.Error("missing file reported present")
	}
	if FileExists(vault.Path, "Notes") {
		t.Error("directory reported as a file")
	}
}

func TestShouldIgnoreDir(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{StateDir, true},
		{".git", true},
		{".obsidian", true},
		{"node_modules", true},
		{"Notes", false},
		{"archive", false},
	}

	for _, tt := range tests {
		if got := ShouldIgnoreDir(tt.name); got != tt.want {
			t.Errorf("ShouldIgnoreDir(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
