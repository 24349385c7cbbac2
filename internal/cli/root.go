package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pathmax/pathmax/pkg/buildinfo"
)

// Execute runs the pathmax CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (solve, gen,
// compare, viz), configures logging based on the --verbose flag, loads the
// optional TOML config, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and config are attached to the context and accessible to all
// commands via loggerFromContext and configFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "pathmax",
		Short:         "pathmax finds longest simple paths in weighted graphs",
		Long:          `pathmax solves the longest simple path problem on undirected, positively weighted graphs using an exhaustive exact engine or a randomized multi-strategy approximate engine.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to pathmax.toml (default: ./pathmax.toml, then user config dir)")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newVizCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
