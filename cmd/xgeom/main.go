// xgeom runs queries against the geometry kernel from the command line.
//
// Usage:
//
//	xgeom compare <rect> <rect>      - Classify how two rectangles relate
//	xgeom intersect <rect> <rect>    - Compute the overlap of two rectangles
//	xgeom cross <line> <line>        - Check whether two segments cross
//	xgeom combine <rect>...          - Bounding rectangle of several rectangles
//	xgeom bounds <rect>              - Bounds of a rectangle after rotation
//	xgeom cmp <a> <b>                - Tolerant comparison of two numbers
//	xgeom run [file]                 - Evaluate a scenario document
//
// Rectangles are given as four numbers, left top right bottom, and
// line segments as four numbers, x1 y1 x2 y2.
//
// Global flags:
//
//	--verbose    - Log debug output
//	--no-color   - Disable styled output
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type options struct {
	verbose bool
	noColor bool

	logger *log.Logger
	styles styles
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "xgeom",
		Short: "Query rectangles and lines from the command line",
		Long: `xgeom evaluates rectangle and line relationships using the same
tolerant comparisons as the geom package.

Examples:
  xgeom compare 100 100 200 200  110 110 190 210
  xgeom intersect 0 0 10 10  10 0 20 10 --keep-lines
  xgeom cross 0 0 200 200  0 200 200 0
  xgeom bounds 0 0 20 10 --angle 45
  xgeom run scenarios.yaml

Put -- before the positional numbers if any of them are negative:
  xgeom combine -- -10 -10 0 0  5 5 20 20`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				ReportTimestamp: true,
				Prefix:          "xgeom",
			})
			if opts.verbose {
				opts.logger.SetLevel(log.DebugLevel)
			}
			opts.styles = newStyles(cmd.OutOrStdout(), opts.noColor)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable styled output")

	cmd.AddCommand(newCompareCmd(&opts))
	cmd.AddCommand(newIntersectCmd(&opts))
	cmd.AddCommand(newCrossCmd(&opts))
	cmd.AddCommand(newCombineCmd(&opts))
	cmd.AddCommand(newBoundsCmd(&opts))
	cmd.AddCommand(newCmpCmd(&opts))
	cmd.AddCommand(newRunCmd(&opts))

	return cmd
}
