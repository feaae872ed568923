package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"deedles.dev/xgeom/geom"
)

func parseFloats(args []string) ([]float32, error) {
	fs := make([]float32, 0, len(args))
	for _, arg := range args {
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		fs = append(fs, float32(f))
	}
	return fs, nil
}

// parseRects parses groups of four numbers into rectangles.
func parseRects(args []string) ([]geom.Rect, error) {
	if len(args)%4 != 0 {
		return nil, fmt.Errorf("rectangles need 4 numbers each, got %v", len(args))
	}

	fs, err := parseFloats(args)
	if err != nil {
		return nil, err
	}

	rects := make([]geom.Rect, 0, len(fs)/4)
	for i := 0; i < len(fs); i += 4 {
		rects = append(rects, geom.Rt(fs[i], fs[i+1], fs[i+2], fs[i+3]))
	}
	return rects, nil
}

// parsePoint parses a point written as "x,y".
func parsePoint(s string) (geom.Point, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("invalid point %q, want x,y", s)
	}
	fs, err := parseFloats([]string{strings.TrimSpace(x), strings.TrimSpace(y)})
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(fs[0], fs[1]), nil
}

// rectArgs accepts exactly n rectangles worth of numbers.
func rectArgs(n int) cobra.PositionalArgs {
	return cobra.ExactArgs(4 * n)
}
