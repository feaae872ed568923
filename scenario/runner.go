package scenario

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"deedles.dev/xgeom/geom"
)

// Result is the outcome of evaluating a single case.
type Result struct {
	Case Case

	// Got is a short description of what the query returned.
	Got  string
	Pass bool
}

// Runner evaluates the cases of a document.
type Runner struct {
	// Logger receives a debug entry for every case and a warning for
	// every failure. If it is nil, log.Default is used.
	Logger *log.Logger
}

// Run evaluates every case in doc in order. It stops at the first case
// that can't be evaluated because it is malformed; failing cases are
// reported in the results instead.
func (r Runner) Run(doc Document) ([]Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	results := make([]Result, 0, len(doc.Cases))
	for i, c := range doc.Cases {
		res, err := Evaluate(c)
		if err != nil {
			return results, fmt.Errorf("case %v (%q): %w", i, c.Name, err)
		}

		logger.Debug("evaluated", "case", c.Name, "kind", c.Kind, "got", res.Got)
		if !res.Pass {
			logger.Warn("case failed", "case", c.Name, "want", want(c), "got", res.Got)
		}
		results = append(results, res)
	}

	return results, nil
}

// Failed returns the number of results that did not pass.
func Failed(results []Result) (n int) {
	for _, res := range results {
		if !res.Pass {
			n++
		}
	}
	return n
}

// Evaluate runs the query described by c.
func Evaluate(c Case) (Result, error) {
	switch c.Kind {
	case KindCrossover, KindInterference, KindIntersects, KindContained:
		a, b, err := rectPair(c)
		if err != nil {
			return Result{}, err
		}
		var got bool
		switch c.Kind {
		case KindCrossover:
			got = a.Relate(b).Crossover
		case KindInterference:
			got = a.Relate(b).Interference
		case KindIntersects:
			got = a.Intersects(b)
		case KindContained:
			got = a.IsContainedIn(b)
		}
		return boolResult(c, got), nil

	case KindIntersection:
		a, b, err := rectPair(c)
		if err != nil {
			return Result{}, err
		}
		i, ok := a.Intersection(b, !c.KeepLines)
		return rectResult(c, i, ok)

	case KindCrosses:
		a, err := c.LineA.Line()
		if err != nil {
			return Result{}, fmt.Errorf("line_a: %w", err)
		}
		b, err := c.LineB.Line()
		if err != nil {
			return Result{}, fmt.Errorf("line_b: %w", err)
		}
		return boolResult(c, a.Crosses(b)), nil

	case KindContainsPoint:
		l, err := c.LineA.Line()
		if err != nil {
			return Result{}, fmt.Errorf("line_a: %w", err)
		}
		p, err := point(c.Point)
		if err != nil {
			return Result{}, fmt.Errorf("point: %w", err)
		}
		return boolResult(c, l.ContainsPoint(p)), nil

	case KindCombine:
		rects := make([]geom.Rect, 0, len(c.Rects))
		for i, v := range c.Rects {
			r, err := rect(v)
			if err != nil {
				return Result{}, fmt.Errorf("rects[%v]: %w", i, err)
			}
			rects = append(rects, r)
		}
		u, err := geom.CombineAll(rects)
		if err != nil && !errors.Is(err, geom.ErrEmpty) {
			return Result{}, err
		}
		return rectResult(c, u, err == nil)

	default:
		return Result{}, fmt.Errorf("%q: %w", c.Kind, ErrUnknownKind)
	}
}

func rectPair(c Case) (a, b geom.Rect, err error) {
	a, err = rect(c.A)
	if err != nil {
		return a, b, fmt.Errorf("a: %w", err)
	}
	b, err = rect(c.B)
	if err != nil {
		return a, b, fmt.Errorf("b: %w", err)
	}
	return a, b, nil
}

func boolResult(c Case, got bool) Result {
	return Result{
		Case: c,
		Got:  strconv.FormatBool(got),
		Pass: got == c.Want,
	}
}

// rectResult checks both that a rectangle was produced when one was
// wanted and, if the case names one, that it is the right one.
func rectResult(c Case, got geom.Rect, ok bool) (Result, error) {
	res := boolResult(c, ok)
	if !ok || c.WantRect == nil {
		return res, nil
	}

	wantRect, err := rect(c.WantRect)
	if err != nil {
		return Result{}, fmt.Errorf("want_rect: %w", err)
	}
	res.Got = fmt.Sprint(got)
	res.Pass = res.Pass && got == wantRect
	return res, nil
}

func want(c Case) string {
	if c.Want && c.WantRect != nil {
		if r, err := rect(c.WantRect); err == nil {
			return fmt.Sprint(r)
		}
	}
	return strconv.FormatBool(c.Want)
}
