package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quickopen/quickopen/internal/registry"
	"github.com/quickopen/quickopen/internal/ui"
	"github.com/quickopen/quickopen/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault and prune shortcuts for deleted files",
	Long: `Watches the vault directory and removes shortcuts whose files are
deleted while the watcher runs.

This runs in the foreground. Files renamed outside of 'qo mv' are
observed as deletions; use 'qo mv' to rename while keeping shortcut ids.

Examples:
  # Watch the default vault
  qo watch

  # Watch with debug output
  qo watch --debug`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Bool("debug", false, "Enable debug logging")
}

func runWatch(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	vaultPath := getVaultPath()

	// No palette in a long-running pruner: the registry file is the only
	// thing being maintained.
	reg, err := registry.Open(registry.NewFileStore(vaultPath), registry.NopSurface{})
	if err != nil {
		return err
	}
	rec, err := newReconciler(vaultPath, reg)
	if err != nil {
		return err
	}

	w, err := watcher.New(watcher.Config{
		VaultPath:  vaultPath,
		Reconciler: rec,
		Debug:      debug,
		OnRemove: func(relPath string, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reconciling %s: %v\n", relPath, err)
			}
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nShutting down watcher...")
		cancel()
	}()

	fmt.Printf("Watching vault: %s\n", ui.FilePath(vaultPath))
	fmt.Println(ui.Hint("Press Ctrl+C to stop"))

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
