package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/quickopen/quickopen/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show quickopen version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := buildinfo.Version
		commit := buildinfo.Commit
		goVersion := runtime.Version()

		if info, ok := debug.ReadBuildInfo(); ok && info != nil {
			if version == "" {
				version = normalizeVersion(info.Main.Version)
			}
			if commit == "" {
				commit = buildSetting(info, "vcs.revision")
			}
			if info.GoVersion != "" {
				goVersion = info.GoVersion
			}
		}
		if version == "" {
			version = "devel"
		}

		fmt.Printf("qo %s\n", version)
		if commit != "" {
			fmt.Printf("commit: %s\n", commit)
		}
		fmt.Printf("go: %s\n", goVersion)
		fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
