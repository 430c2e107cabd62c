package cmd

import (
	"github.com/dendrascience/dendra-textkit/internal/config"
	"github.com/dendrascience/dendra-textkit/internal/logger"
	"github.com/dendrascience/dendra-textkit/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd creates and returns the root cobra command for the textkit CLI.
// It sets up all subcommands, command groups, configuration and logging.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "textkit - small text, list and file utilities",
		Long: `textkit bundles a handful of independent text utilities.

Use subcommands to perform different operations:
  - parse: Split "First Last user@host" lines into fields
  - diff: Compare two directory listings
  - log: Print a formatted log line
  - rect: Pick the biggest rectangle
  - find: Search a file for a pattern, ignoring case
  - words: List the long words of a file
  - top: Rank the most frequent long words of a file
  - seed: Generate a file of user data lines`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := logger.Setup(cfg.Environment, verbose); err != nil {
				return err
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = logger.WithFields(ctx, zap.String("command", cmd.Name()))
			cmd.SetContext(ctx)

			logger.Debug(ctx, "configuration loaded",
				zap.String("config", configPath),
				zap.String("environment", cfg.Environment))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	groupText := "text"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupText,
		Title: "Text Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	for _, sub := range []*cobra.Command{
		NewParseCmd(),
		NewLogCmd(),
		NewFindCmd(),
		NewWordsCmd(),
		NewTopCmd(),
	} {
		sub.GroupID = groupText
		rootCmd.AddCommand(sub)
	}
	for _, sub := range []*cobra.Command{
		NewDiffCmd(),
		NewRectCmd(),
		NewSeedCmd(),
		NewVersionCmd(),
	} {
		sub.GroupID = groupUtilities
		rootCmd.AddCommand(sub)
	}

	return rootCmd
}

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.Fprint(cmd.OutOrStdout(), "textkit")
		},
	}
}
