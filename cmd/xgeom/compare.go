package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deedles.dev/xgeom/geom"
)

func newCompareCmd(opts *options) *cobra.Command {
	var edges bool

	cmd := &cobra.Command{
		Use:   "compare <left top right bottom> <left top right bottom>",
		Short: "Classify how two rectangles relate",
		Long: `Classify how the first rectangle relates to the second one.

Reports whether they interfere, whether they cross over, and which edges
of the first rectangle take part in the crossover. With --edges, pairs
of coinciding edges are listed as well.`,
		Args: rectArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rects, err := parseRects(args)
			if err != nil {
				return err
			}
			a, b := rects[0], rects[1]

			rel := a.Relate(b)
			if edges {
				rel = a.RelateEdges(b)
			}
			opts.logger.Debug("compared", "a", a, "b", b, "edges", rel.Edges())

			s := opts.styles
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.header.Render(s.rect(a)+" vs "+s.rect(b)))
			fmt.Fprintln(out, s.rule())
			fmt.Fprintln(out, s.field("interference", s.bool(rel.Interference)))
			fmt.Fprintln(out, s.field("crossover", s.bool(rel.Crossover)))
			fmt.Fprintln(out, s.field("edges", edgeNames(rel.Edges())))
			if edges {
				fmt.Fprintln(out, s.field("shared", sharedNames(rel)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&edges, "edges", false, "Also report coinciding edges")
	return cmd
}

func edgeNames(e geom.Edges) string {
	names := []struct {
		edge geom.Edges
		name string
	}{
		{geom.EdgeLeft, "left"},
		{geom.EdgeTop, "top"},
		{geom.EdgeRight, "right"},
		{geom.EdgeBottom, "bottom"},
	}

	var str string
	for _, n := range names {
		if !e.Has(n.edge) {
			continue
		}
		if str != "" {
			str += " "
		}
		str += n.name
	}
	if str == "" {
		return "none"
	}
	return str
}

func sharedNames(rel geom.Relation) string {
	pairs := []struct {
		set  bool
		name string
	}{
		{rel.LeftLeft, "left-left"},
		{rel.LeftRight, "left-right"},
		{rel.RightLeft, "right-left"},
		{rel.RightRight, "right-right"},
		{rel.TopTop, "top-top"},
		{rel.TopBottom, "top-bottom"},
		{rel.BottomTop, "bottom-top"},
		{rel.BottomBottom, "bottom-bottom"},
	}

	var str string
	for _, p := range pairs {
		if !p.set {
			continue
		}
		if str != "" {
			str += " "
		}
		str += p.name
	}
	if str == "" {
		return "none"
	}
	return str
}
