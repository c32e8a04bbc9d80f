package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickopen/quickopen/internal/ui"
)

var openCmd = &cobra.Command{
	Use:   "open [name]",
	Short: "Open a shortcut's file in your editor",
	Long: `Invokes a registered shortcut, opening its file in your editor.

With no argument, pick a shortcut interactively (requires fzf).
The file path is resolved at invocation time: if the file has been
deleted since registration, a notice is shown instead.

The editor is determined by (in order):
  1. The 'editor' setting in ~/.config/quickopen/config.toml
  2. The $EDITOR environment variable

Examples:
  qo open daily-note
  qo open`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeShortcutNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()

		reg, palette, err := openRegistry(vaultPath)
		if err != nil {
			return err
		}
		if reg.Len() == 0 {
			fmt.Println(ui.Hint("No shortcuts registered. Add one with 'qo add <file>'."))
			return nil
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			if !canUseFZFInteractive() {
				return fmt.Errorf("no shortcut specified\n\n%s",
					interactivePickerMissingArgSuggestion("open", "qo open <name>"))
			}
			id, ok, err := pickShortcutWithFZF(reg, palette, "open> ", "Pick a shortcut to open")
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			name = shortcutNameOf(palette, id)
		}

		entry, ok := palette.Lookup(name)
		if !ok {
			return fmt.Errorf("no shortcut named %q\n\nRun 'qo list' to see registered shortcuts", name)
		}

		return entry.invoke()
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
