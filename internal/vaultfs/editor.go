package vaultfs

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// OpenInEditor opens a file in the given editor command.
// Returns true if the editor was launched, false otherwise.
// The process is started in the background (non-blocking).
//
// If the editor contains spaces (e.g., "open -a Obsidian"), it is executed
// via shell to handle the arguments correctly.
func OpenInEditor(editor, filePath string) bool {
	if editor == "" {
		return false
	}

	var cmd *exec.Cmd
	if strings.Contains(editor, " ") {
		cmd = exec.Command("sh", "-c", editor+" "+shellQuote(filePath))
	} else {
		cmd = exec.Command(editor, filePath)
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to open editor '%s': %v\n", editor, err)
		return false
	}
	return true
}

// shellQuote quotes a string for safe use in shell commands.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}
