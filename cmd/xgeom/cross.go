package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deedles.dev/xgeom/geom"
	"deedles.dev/xgeom/scenario"
)

func newCrossCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cross <x1 y1 x2 y2> <x1 y1 x2 y2>",
		Short: "Check whether two line segments cross",
		Long: `Check whether two line segments cross and print the crossing point.

Parallel and coincident segments never cross. Coordinates may be inf or
-inf as long as each segment stays unbounded on a single axis.`,
		Args: cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := parseFloats(args)
			if err != nil {
				return err
			}
			l1 := geom.LineXY(fs[0], fs[1], fs[2], fs[3])
			l2 := geom.LineXY(fs[4], fs[5], fs[6], fs[7])
			for _, l := range []geom.Line{l1, l2} {
				if !l.IsValid() {
					return fmt.Errorf("line %v has no defined slope: %w", l, scenario.ErrMissingOperand)
				}
			}

			p, ok := l1.Intersection(l2)
			opts.logger.Debug("crossed", "l1", l1, "l2", l2, "ok", ok)

			s := opts.styles
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.field("crosses", s.bool(ok)))
			if ok {
				fmt.Fprintln(out, s.field("point", p.String()))
			}
			return nil
		},
	}

	return cmd
}
