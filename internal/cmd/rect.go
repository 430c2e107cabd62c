package cmd

import (
	"fmt"

	"github.com/dendrascience/dendra-textkit/internal/logger"
	"github.com/dendrascience/dendra-textkit/textutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRectCmd creates and returns the rect subcommand.
func NewRectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rect WxH...",
		Short: "Print the rectangle with the largest area",
		Long: `Print the rectangle with the largest area among the WxH arguments,
for example "textkit rect 2x4 3x3 4x2". When several share the largest area
the first one given wins.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rects := make([]textutil.Rectangle[float64], 0, len(args))
			for _, arg := range args {
				r, err := textutil.ParseRectangle(arg)
				if err != nil {
					return err
				}
				rects = append(rects, r)
			}

			best, err := textutil.BiggestRectangle(rects)
			if err != nil {
				return err
			}
			logger.Debug(cmd.Context(), "picked rectangle",
				zap.Int("candidates", len(rects)),
				zap.Float64("area", best.Area()))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%gx%g\n", best.Width, best.Height)
			return err
		},
	}

	return cmd
}
