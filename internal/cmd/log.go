package cmd

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dendrascience/dendra-textkit/internal/config"
	"github.com/dendrascience/dendra-textkit/textutil"
	"github.com/spf13/cobra"
)

// NewLogCmd creates and returns the log subcommand.
// It prints one "{timestamp} [{pid}] [{LEVEL}] {message}" line.
func NewLogCmd() *cobra.Command {
	var (
		level     string
		processID int
		timestamp string
	)

	cmd := &cobra.Command{
		Use:   "log MESSAGE...",
		Short: "Print a formatted log line",
		Long: `Print MESSAGE as a single log line:

  {timestamp} [{pid}] [{LEVEL}] {message}

--level takes a name (TRACE, DEBUG, INFO, WARN, ERROR) or an index 0-4.
Indexes outside the vocabulary print the label None.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if !cmd.Flags().Changed("level") {
				level = cfg.Log.Level
			}
			if !cmd.Flags().Changed("pid") {
				processID = cfg.Log.ProcessID
			}
			if processID == 0 {
				processID = os.Getpid()
			}
			if timestamp == "" {
				timestamp = time.Now().Format(cfg.Log.TimeFormat)
			}

			l, err := parseLevelArg(level)
			if err != nil {
				return err
			}
			return textutil.FprintLog(cmd.OutOrStdout(), strings.Join(args, " "), processID, timestamp, l)
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", textutil.DefaultLevel.String(), "Severity name or index")
	cmd.Flags().IntVarP(&processID, "pid", "p", 0, "Process id to print (default: current process)")
	cmd.Flags().StringVarP(&timestamp, "timestamp", "t", "", "Pre-formatted timestamp (default: now)")

	return cmd
}

// parseLevelArg accepts a level name or a raw index. Raw indexes are not
// range checked.
func parseLevelArg(s string) (textutil.Level, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return textutil.Level(n), nil
	}
	return textutil.ParseLevel(s)
}
