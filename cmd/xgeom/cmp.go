package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deedles.dev/xgeom/geom"
)

func newCmpCmd(opts *options) *cobra.Command {
	epsilon := geom.Epsilon

	cmd := &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two numbers with a tolerance",
		Long: `Compare two numbers, treating them as equal if they differ by no
more than the tolerance. Prints -1, 0 or 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := parseFloats(args)
			if err != nil {
				return err
			}

			c := geom.CompareEps(fs[0], fs[1], epsilon)
			opts.logger.Debug("compared", "a", fs[0], "b", fs[1], "epsilon", epsilon)

			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}

	cmd.Flags().Float32Var(&epsilon, "epsilon", epsilon, "Tolerance")
	return cmd
}
