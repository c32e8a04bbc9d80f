package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quickopen/quickopen/internal/ui"
	"github.com/quickopen/quickopen/internal/vaultfs"
)

var mvCmd = &cobra.Command{
	Use:     "mv <old> <new>",
	Aliases: []string{"move"},
	Short:   "Rename a vault file and update its shortcuts",
	Long: `Renames a markdown file inside the vault and reconciles any
shortcuts pointing at it. The shortcut keeps its id, so a bound hotkey
stays attached across the rename.

Examples:
  qo mv Notes/Daily.md Notes/Archive/Daily.md
  qo mv inbox/idea projects/idea`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()
		oldRel := normalizeVaultArg(args[0])
		newRel := normalizeVaultArg(args[1])

		if !vaultfs.FileExists(vaultPath, oldRel) {
			return fmt.Errorf("file not found in vault: %s", oldRel)
		}
		if vaultfs.FileExists(vaultPath, newRel) {
			return fmt.Errorf("target already exists: %s", newRel)
		}

		oldPath := filepath.Join(vaultPath, filepath.FromSlash(oldRel))
		newPath := filepath.Join(vaultPath, filepath.FromSlash(newRel))

		if err := os.MkdirAll(filepath.Dir(newPath), 0o755); err != nil {
			return fmt.Errorf("failed to create target directory: %w", err)
		}
		if err := os.Rename(oldPath, newPath); err != nil {
			return fmt.Errorf("failed to rename %s: %w", oldRel, err)
		}

		reg, _, err := openRegistry(vaultPath)
		if err != nil {
			return err
		}
		rec, err := newReconciler(vaultPath, reg)
		if err != nil {
			return err
		}
		if err := rec.OnRename(oldRel, newRel); err != nil {
			return err
		}

		fmt.Println(ui.Successf("Renamed %s to %s", ui.FilePath(oldRel), ui.FilePath(newRel)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mvCmd)
}
