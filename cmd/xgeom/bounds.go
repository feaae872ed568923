package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deedles.dev/xgeom"
)

func newBoundsCmd(opts *options) *cobra.Command {
	var (
		angle  float32
		origin string
		pixels bool
	)

	cmd := &cobra.Command{
		Use:   "bounds <left top right bottom>",
		Short: "Compute the bounds of a rotated rectangle",
		Long: `Rotate a rectangle around a point and print the smallest upright
rectangle that contains the result.

The origin defaults to the center of the rectangle. With --pixels the
bounds are also printed as integer image coordinates.`,
		Args: rectArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rects, err := parseRects(args)
			if err != nil {
				return err
			}
			r := rects[0]

			o := r.Canon().Center()
			if origin != "" {
				o, err = parsePoint(origin)
				if err != nil {
					return err
				}
			}

			b := r.RotatedBounds(angle, o)
			opts.logger.Debug("rotated", "rect", r, "angle", angle, "origin", o)

			s := opts.styles
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.field("bounds", s.rect(b)))
			fmt.Fprintln(out, s.field("shift", r.RotateShift(angle, o).String()))
			if pixels {
				fmt.Fprintln(out, s.field("pixels", xgeom.ImageRect(b).String()))
			}
			return nil
		},
	}

	cmd.Flags().Float32Var(&angle, "angle", 0, "Rotation in degrees")
	cmd.Flags().StringVar(&origin, "origin", "", "Rotation origin as x,y")
	cmd.Flags().BoolVar(&pixels, "pixels", false, "Also print integer image bounds")
	return cmd
}
