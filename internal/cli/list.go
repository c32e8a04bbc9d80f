package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickopen/quickopen/internal/ui"
	"github.com/quickopen/quickopen/internal/vaultfs"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered shortcuts",
	Long: `Lists all registered shortcuts in registration order.

Shortcuts whose file no longer exists are marked; they still appear so
their hotkey binding survives until the file comes back or the shortcut
is removed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()

		reg, palette, err := openRegistry(vaultPath)
		if err != nil {
			return err
		}

		commands := reg.ListAll()
		if len(commands) == 0 {
			fmt.Println(ui.Hint("No shortcuts registered. Add one with 'qo add <file>'."))
			return nil
		}

		for _, c := range commands {
			name := shortcutNameOf(palette, c.ID)
			line := fmt.Sprintf("%s  %s", ui.Bold.Render(name), ui.FilePath(c.FilePath))
			if !vaultfs.FileExists(vaultPath, c.FilePath) {
				line += "  " + ui.Warning("missing")
			}
			fmt.Println(line)
			fmt.Println(ui.Hint("    " + c.ID))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
