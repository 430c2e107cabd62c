package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dendrascience/dendra-textkit/internal/logger"
	"github.com/dendrascience/dendra-textkit/textutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewParseCmd creates and returns the parse subcommand.
// It splits "First Last user@host" lines into their four fields.
func NewParseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse [LINE...]",
		Short: "Split user data lines into name and email fields",
		Long: `Split lines of the form "First Last user@host" into first name,
last name, email local-part and host.

Each LINE argument is parsed; with no arguments lines are read from stdin.
Fields are printed tab-separated, one record per line. The first malformed
line stops the command with an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per line")

	return cmd
}

func runParse(ctx context.Context, in io.Reader, out io.Writer, lines []string, asJSON bool) error {
	emit := func(u textutil.UserData) error {
		if asJSON {
			return json.NewEncoder(out).Encode(u)
		}
		_, err := fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", u.FirstName, u.LastName, u.User, u.Host)
		return err
	}

	parse := func(n int, line string) error {
		u, err := textutil.ParseUserData(line)
		if err != nil {
			logger.Debug(ctx, "rejected line", zap.Int("line", n), zap.Error(err))
			return fmt.Errorf("line %d: %w", n, err)
		}
		return emit(u)
	}

	if len(lines) > 0 {
		for i, line := range lines {
			if err := parse(i+1, line); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	for n := 1; scanner.Scan(); n++ {
		if err := parse(n, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
