package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quickopen/quickopen/internal/registry"
	"github.com/quickopen/quickopen/internal/ui"
)

var removeCmd = &cobra.Command{
	Use:     "remove [name]",
	Aliases: []string{"rm"},
	Short:   "Remove a registered shortcut",
	Long: `Removes a shortcut by name or by its file path.

With no argument, pick a shortcut interactively (requires fzf).
Removing a shortcut never touches the file itself.

Examples:
  qo remove daily-note
  qo remove Notes/Daily.md
  qo rm`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeShortcutNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()

		reg, palette, err := openRegistry(vaultPath)
		if err != nil {
			return err
		}
		if reg.Len() == 0 {
			fmt.Println(ui.Hint("No shortcuts registered"))
			return nil
		}

		var ids []string
		if len(args) == 1 {
			ids = resolveShortcutArg(reg, palette, args[0])
			if len(ids) == 0 {
				fmt.Println(ui.Warningf("No shortcut matches %q", args[0]))
				return nil
			}
		} else {
			if !canUseFZFInteractive() {
				return fmt.Errorf("no shortcut specified\n\n%s",
					interactivePickerMissingArgSuggestion("remove", "qo remove <name>"))
			}
			id, ok, err := pickShortcutWithFZF(reg, palette, "remove> ", "Pick a shortcut to remove")
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			ids = []string{id}
		}

		for _, id := range ids {
			removed, err := reg.RemoveByID(id)
			if err != nil {
				return err
			}
			fmt.Println(ui.Successf("Removed shortcut for %s", ui.FilePath(removed.FilePath)))
		}
		return nil
	},
}

// resolveShortcutArg resolves a user argument to registry ids: first as an
// addressable shortcut name, then as a vault-relative file path (all
// entries matching that path).
func resolveShortcutArg(reg *registry.Registry, palette *paletteSurface, arg string) []string {
	if entry, ok := palette.Lookup(arg); ok {
		return []string{entry.id}
	}

	var ids []string
	for _, c := range reg.FindByPath(normalizeVaultArg(arg)) {
		ids = append(ids, c.ID)
	}
	return ids
}

// pickShortcutWithFZF lets the user pick a registered shortcut; returns
// the selected registry id.
func pickShortcutWithFZF(reg *registry.Registry, palette *paletteSurface, prompt, header string) (string, bool, error) {
	commands := reg.ListAll()
	lines := make([]string, 0, len(commands))
	byLine := make(map[string]string, len(commands))
	for _, c := range commands {
		line := fmt.Sprintf("%s\t%s", shortcutNameOf(palette, c.ID), c.FilePath)
		lines = append(lines, line)
		byLine[line] = c.ID
	}

	selected, ok, err := runFZFPicker(lines, fzfPickerOptions{Prompt: prompt, Header: header})
	if err != nil || !ok {
		return "", ok, err
	}
	id, found := byLine[strings.TrimSpace(selected)]
	if !found {
		return "", false, nil
	}
	return id, true, nil
}

// shortcutNameOf returns the addressable name for a registered id, or "".
func shortcutNameOf(palette *paletteSurface, id string) string {
	if entry, ok := palette.byID[id]; ok {
		return entry.name
	}
	return ""
}

// completeShortcutNames provides shell completion over registered names.
func completeShortcutNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	vaultPath := getVaultPath()
	if vaultPath == "" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	_, palette, err := openRegistry(vaultPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var out []string
	for _, name := range palette.Names() {
		if strings.HasPrefix(name, toComplete) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
