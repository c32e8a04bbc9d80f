package cli

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/quickopen/quickopen/internal/registry"
	"github.com/quickopen/quickopen/internal/title"
	"github.com/quickopen/quickopen/internal/ui"
	"github.com/quickopen/quickopen/internal/vaultfs"
)

var addCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Register an open-file shortcut",
	Long: `Registers a shortcut that opens a specific vault file.

With no argument, pick a file interactively (requires fzf).
Each file can have at most one shortcut; adding the same file twice is
rejected.

Examples:
  qo add Notes/Daily.md
  qo add daily/2025-01-09
  qo add`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()

		var relPath string
		if len(args) == 1 {
			relPath = normalizeVaultArg(args[0])
		} else {
			if !canUseFZFInteractive() {
				return fmt.Errorf("no file specified\n\n%s",
					interactivePickerMissingArgSuggestion("add", "qo add <file>"))
			}
			picked, ok, err := pickVaultFileWithFZF(vaultPath, "add> ", "Pick a file to register")
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			relPath = picked
		}

		if !vaultfs.FileExists(vaultPath, relPath) {
			return fmt.Errorf("file not found in vault: %s", relPath)
		}

		reg, _, err := openRegistry(vaultPath)
		if err != nil {
			return err
		}

		displayName := title.ForFile(vaultPath, relPath)
		invoke := func() error { return openVaultFile(vaultPath, relPath) }

		if _, err := reg.Add(relPath, displayName, invoke); err != nil {
			if errors.Is(err, registry.ErrAlreadyRegistered) {
				fmt.Println(ui.Warningf("A shortcut for %s is already registered", relPath))
				return nil
			}
			return err
		}

		fmt.Println(ui.Successf("Added shortcut %s for %s",
			ui.Bold.Render(displayName), ui.FilePath(relPath)))
		fmt.Println(ui.Hint(fmt.Sprintf("Open it with: qo open %s", slug.Make(displayName))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
