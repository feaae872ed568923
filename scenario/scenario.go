// Package scenario loads and evaluates YAML documents that describe
// geometry queries together with their expected results. A document
// built from the kernel's acceptance checks is embedded as the
// default.
package scenario

import (
	"errors"
	"fmt"

	"deedles.dev/xgeom/geom"
)

var (
	// ErrUnknownKind is returned when a case has a kind that isn't
	// one of the defined Kind constants.
	ErrUnknownKind = errors.New("unknown case kind")

	// ErrMissingOperand is returned when a case lacks an operand that
	// its kind requires or an operand has the wrong number of values.
	ErrMissingOperand = errors.New("missing or malformed operand")
)

// Kind selects the query that a case runs.
type Kind string

const (
	KindCrossover     Kind = "crossover"
	KindInterference  Kind = "interference"
	KindIntersects    Kind = "intersects"
	KindIntersection  Kind = "intersection"
	KindContained     Kind = "contained"
	KindCrosses       Kind = "crosses"
	KindContainsPoint Kind = "contains_point"
	KindCombine       Kind = "combine"
)

// Document is a list of cases.
type Document struct {
	Cases []Case `yaml:"cases"`
}

// Case is a single query and its expected result.
//
// Rectangles are given as [left, top, right, bottom] and points as
// [x, y]. YAML's .inf and -.inf may be used for unbounded values.
type Case struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`

	A     []float32   `yaml:"a,omitempty"`
	B     []float32   `yaml:"b,omitempty"`
	Rects [][]float32 `yaml:"rects,omitempty"`
	LineA *LineSpec   `yaml:"line_a,omitempty"`
	LineB *LineSpec   `yaml:"line_b,omitempty"`
	Point []float32   `yaml:"point,omitempty"`

	// KeepLines makes intersection cases count overlaps that have no
	// width or no height.
	KeepLines bool `yaml:"keep_lines,omitempty"`

	Want     bool      `yaml:"want"`
	WantRect []float32 `yaml:"want_rect,omitempty"`
}

// LineSpec describes a line in one of several ways. Exactly one of
// From and To together, Horizontal, Vertical or Slope should be set.
type LineSpec struct {
	From []float32 `yaml:"from,omitempty"`
	To   []float32 `yaml:"to,omitempty"`

	Horizontal *float32 `yaml:"horizontal,omitempty"`
	Vertical   *float32 `yaml:"vertical,omitempty"`

	Slope     *float32 `yaml:"slope,omitempty"`
	Intercept float32  `yaml:"intercept,omitempty"`
}

// Line returns the line described by s.
func (s *LineSpec) Line() (geom.Line, error) {
	switch {
	case s == nil:
		return geom.Line{}, ErrMissingOperand
	case s.Horizontal != nil:
		return geom.HorizontalLine(*s.Horizontal), nil
	case s.Vertical != nil:
		return geom.VerticalLine(*s.Vertical), nil
	case s.Slope != nil:
		return geom.SlopedLine(*s.Slope, s.Intercept), nil
	}

	from, err := point(s.From)
	if err != nil {
		return geom.Line{}, fmt.Errorf("from: %w", err)
	}
	to, err := point(s.To)
	if err != nil {
		return geom.Line{}, fmt.Errorf("to: %w", err)
	}
	l := geom.Ln(from, to)
	if !l.IsValid() {
		return geom.Line{}, fmt.Errorf("line %v has no defined slope: %w", l, ErrMissingOperand)
	}
	return l, nil
}

func rect(v []float32) (geom.Rect, error) {
	if len(v) != 4 {
		return geom.Rect{}, fmt.Errorf("rectangle needs 4 values, got %v: %w", len(v), ErrMissingOperand)
	}
	return geom.Rt(v[0], v[1], v[2], v[3]), nil
}

func point(v []float32) (geom.Point, error) {
	if len(v) != 2 {
		return geom.Point{}, fmt.Errorf("point needs 2 values, got %v: %w", len(v), ErrMissingOperand)
	}
	return geom.Pt(v[0], v[1]), nil
}
