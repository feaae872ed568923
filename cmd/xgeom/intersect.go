package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIntersectCmd(opts *options) *cobra.Command {
	var keepLines bool

	cmd := &cobra.Command{
		Use:   "intersect <left top right bottom> <left top right bottom>",
		Short: "Compute the overlap of two rectangles",
		Long: `Compute the rectangle where two rectangles overlap.

Rectangles that only touch along an edge have no intersection unless
--keep-lines is given, in which case the shared line is reported as a
zero-width rectangle.`,
		Args: rectArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rects, err := parseRects(args)
			if err != nil {
				return err
			}
			a, b := rects[0], rects[1]

			i, ok := a.Intersection(b, !keepLines)
			opts.logger.Debug("intersected", "a", a, "b", b, "ok", ok)

			s := opts.styles
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.field("intersects", s.bool(ok)))
			if ok {
				fmt.Fprintln(out, s.field("rect", s.rect(i)))
				fmt.Fprintln(out, s.field("size", i.Size().String()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepLines, "keep-lines", false, "Report edge contact as a degenerate intersection")
	return cmd
}
