// Package cli wires the mapmerge command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mapmerge/mapmerge/internal/cli/browse"
	"github.com/mapmerge/mapmerge/internal/cli/compare"
	"github.com/mapmerge/mapmerge/internal/cli/inspect"
	mergecmd "github.com/mapmerge/mapmerge/internal/cli/merge"
	"github.com/mapmerge/mapmerge/internal/cli/render"
	"github.com/mapmerge/mapmerge/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "mapmerge",
	Short: "Mapmerge - reconcile two ECU firmware definitions and merge their images",
	Long: `Reconcile the symbol layouts of two ECU firmware versions and build
a merged 512 KiB image that selectively carries regions from version A
into version B.

Workflow:
- inspect: list the symbols one definition declares
- compare: reconcile two definitions into a categorized table
- merge:   export a merged image from two binaries and a selection
- render:  rasterize a byte window as a colored grid
- browse:  interactively toggle entries and watch the grid`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to config file (default: per-user config dir)")
	rootCmd.PersistentFlags().String("log-level", "", "override log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(inspect.New())
	rootCmd.AddCommand(compare.New())
	rootCmd.AddCommand(mergecmd.New())
	rootCmd.AddCommand(render.New())
	rootCmd.AddCommand(browse.New())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("mapmerge version %s\n", version.Version)
			cmd.Printf("Git commit: %s\n", version.GitCommit)
			cmd.Printf("Build date: %s\n", version.BuildDate)
			cmd.Printf("Go version: %s\n", version.GoVersion)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
