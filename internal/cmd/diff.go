package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dendrascience/dendra-textkit/internal/logger"
	"github.com/dendrascience/dendra-textkit/textutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewDiffCmd creates and returns the diff subcommand.
// It compares two directory listings and reports added and removed names.
func NewDiffCmd() *cobra.Command {
	var (
		fromFiles bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "diff BEFORE AFTER",
		Short: "Compare two directory listings",
		Long: `Compare the entry names of two directories.

Names present only in BEFORE are printed as "- name", names present only in
AFTER as "+ name", each group sorted. With --files, BEFORE and AFTER are
text files holding one name per line instead of directories.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], fromFiles, asJSON)
		},
	}

	cmd.Flags().BoolVarP(&fromFiles, "files", "f", false, "Read listings from newline-separated files")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the diff as JSON")

	return cmd
}

func runDiff(ctx context.Context, out io.Writer, before, after string, fromFiles, asJSON bool) error {
	list := textutil.ListDirectory
	if fromFiles {
		list = readListing
	}

	beforeNames, err := list(before)
	if err != nil {
		return err
	}
	afterNames, err := list(after)
	if err != nil {
		return err
	}

	diff := textutil.CompareLists(beforeNames, afterNames)
	logger.Debug(ctx, "compared listings",
		zap.Int("before", len(beforeNames)),
		zap.Int("after", len(afterNames)),
		zap.Int("removed", len(diff.Removed)),
		zap.Int("added", len(diff.Added)))

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(diff)
	}

	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)
	for _, name := range diff.Removed {
		if _, err := removed.Fprintf(out, "- %s\n", name); err != nil {
			return err
		}
	}
	for _, name := range diff.Added {
		if _, err := added.Fprintf(out, "+ %s\n", name); err != nil {
			return err
		}
	}
	return nil
}

// readListing returns the non-blank lines of a listing file.
func readListing(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", textutil.ErrFileNotFound, path, err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	return names, scanner.Err()
}
