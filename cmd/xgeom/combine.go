package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deedles.dev/xgeom/geom"
)

func newCombineCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine [<left top right bottom>...]",
		Short: "Compute the bounding rectangle of several rectangles",
		RunE: func(cmd *cobra.Command, args []string) error {
			rects, err := parseRects(args)
			if err != nil {
				return err
			}

			r, err := geom.CombineAll(rects)
			if err != nil {
				return err
			}
			opts.logger.Debug("combined", "count", len(rects), "result", r)

			s := opts.styles
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.field("rect", s.rect(r)))
			fmt.Fprintln(out, s.field("size", r.Size().String()))
			return nil
		},
	}

	return cmd
}
