package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quickopen/quickopen/internal/ui"
	"github.com/quickopen/quickopen/internal/vaultfs"
)

var previewCmd = &cobra.Command{
	Use:   "preview <name>",
	Short: "Render a shortcut's file in the terminal",
	Long: `Renders the markdown file behind a shortcut in the terminal,
without opening an editor.

Examples:
  qo preview daily-note`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeShortcutNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()
		name := args[0]

		reg, palette, err := openRegistry(vaultPath)
		if err != nil {
			return err
		}

		entry, ok := palette.Lookup(name)
		if !ok {
			return fmt.Errorf("no shortcut named %q\n\nRun 'qo list' to see registered shortcuts", name)
		}

		relPath := ""
		for _, c := range reg.ListAll() {
			if c.ID == entry.id {
				relPath = c.FilePath
				break
			}
		}
		if relPath == "" || !vaultfs.FileExists(vaultPath, relPath) {
			fmt.Println(ui.Warningf("File not found: %s", relPath))
			return nil
		}

		content, err := os.ReadFile(filepath.Join(vaultPath, filepath.FromSlash(relPath)))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", relPath, err)
		}

		rendered, err := ui.RenderMarkdown(string(content), ui.TermWidth())
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", relPath, err)
		}

		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
