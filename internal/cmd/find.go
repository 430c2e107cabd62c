package cmd

import (
	"github.com/dendrascience/dendra-textkit/internal/logger"
	"github.com/dendrascience/dendra-textkit/textutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewFindCmd creates and returns the find subcommand.
// It prints the lines of a file containing a pattern, ignoring case.
func NewFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find PATTERN FILE",
		Short: "Print lines of FILE containing PATTERN, ignoring case",
		Long: `Print every line of FILE that contains PATTERN as a substring,
compared without regard to case. Each line is trimmed and prefixed by its
0-based line number.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithFields(cmd.Context(), zap.String("file", args[1]))
			logger.Debug(ctx, "searching", zap.String("pattern", args[0]))
			return textutil.FprintMatches(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	return cmd
}
