package cmd

import (
	"fmt"
	"io"

	"github.com/dendrascience/dendra-textkit/internal/config"
	"github.com/dendrascience/dendra-textkit/internal/logger"
	"github.com/dendrascience/dendra-textkit/textutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewWordsCmd creates and returns the words subcommand.
// It lists the words of a file longer than a minimum length.
func NewWordsCmd() *cobra.Command {
	var (
		minLength int
		countOnly bool
	)

	cmd := &cobra.Command{
		Use:   "words FILE",
		Short: "List the words of FILE longer than --min characters",
		Long: `List the words of FILE, lowercased and in text order, keeping only
words strictly longer than --min characters. The characters . , " ! - are
removed before the text is split on whitespace.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min") {
				minLength = config.FromContext(cmd.Context()).Words.MinLength
			}

			words, err := textutil.ReadLongWords(args[0], minLength)
			if err != nil {
				return err
			}
			logger.Debug(cmd.Context(), "read words",
				zap.String("file", args[0]),
				zap.Int("min", minLength),
				zap.Int("count", len(words)))

			if countOnly {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Total words: %d\n", len(words))
				return err
			}
			return printLines(cmd.OutOrStdout(), words)
		},
	}

	cmd.Flags().IntVarP(&minLength, "min", "m", 0, "Keep words longer than this many characters")
	cmd.Flags().BoolVar(&countOnly, "count", false, "Print only the number of words")

	return cmd
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
