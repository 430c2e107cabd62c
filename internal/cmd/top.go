package cmd

import (
	"fmt"

	"github.com/dendrascience/dendra-textkit/internal/config"
	"github.com/dendrascience/dendra-textkit/textutil"
	"github.com/spf13/cobra"
)

// NewTopCmd creates and returns the top subcommand.
// It ranks the most frequent long words of a file.
func NewTopCmd() *cobra.Command {
	var (
		minLength int
		n         int
	)

	cmd := &cobra.Command{
		Use:   "top FILE",
		Short: "Rank the most frequent words of FILE",
		Long: `Rank the words of FILE (as listed by "textkit words") by how often
they occur and print the first N as "word<TAB>count". Words with the same
count are listed in the order they first appear.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if !cmd.Flags().Changed("min") {
				minLength = cfg.Words.MinLength
			}
			if !cmd.Flags().Changed("number") {
				n = cfg.Words.TopN
			}

			words, err := textutil.ReadLongWords(args[0], minLength)
			if err != nil {
				return err
			}
			for _, wc := range textutil.TopWords(words, n) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", wc.Word, wc.Count); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&minLength, "min", "m", 0, "Keep words longer than this many characters")
	cmd.Flags().IntVarP(&n, "number", "n", textutil.DefaultTopN, "Number of words to print")

	return cmd
}
