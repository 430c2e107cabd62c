package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/dendrascience/dendra-textkit/internal/logger"
	"github.com/dendrascience/dendra-textkit/textutil"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedFirstNames = []string{"John", "Ada", "Grace", "Alan", "Edsger", "Barbara", "Ken", "Radia"}
	seedLastNames  = []string{"Doe", "Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Thompson", "Perlman"}
	seedHosts      = []string{"example.com", "example.org", "mail.example.net", "dendra.science"}
)

// NewSeedCmd creates and returns the seed subcommand.
// It generates a file of user data lines for exercising the parse command.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		lineCount  int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a file of user data lines",
		Long: `Generate lines of the form "First Last user@host" for testing the
parse command. Names and hosts are drawn from small fixed pools; each
local-part is a fresh UUID so every line is unique.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			f, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := writeSeed(f, lineCount); err != nil {
				return err
			}
			logger.Info(cmd.Context(), "seed file written",
				zap.String("output", outputPath),
				zap.Int("lines", lineCount))
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output file (required)")
	cmd.Flags().IntVarP(&lineCount, "count", "n", 100, "Number of lines to generate")

	cmd.MarkFlagRequired("output")

	return cmd
}

func writeSeed(w io.Writer, lineCount int) error {
	bw := bufio.NewWriter(w)
	for range lineCount {
		u := textutil.UserData{
			FirstName: seedFirstNames[rand.IntN(len(seedFirstNames))],
			LastName:  seedLastNames[rand.IntN(len(seedLastNames))],
			User:      uuid.NewString(),
			Host:      seedHosts[rand.IntN(len(seedHosts))],
		}
		if _, err := fmt.Fprintln(bw, u); err != nil {
			return err
		}
	}
	return bw.Flush()
}
