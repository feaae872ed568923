package geom

import (
	"math"
	"strconv"
)

// Point is a 2D coordinate.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return "(" + formatFloat(p.X) + "," + formatFloat(p.Y) + ")"
}

// Add returns p+p2.
func (p Point) Add(p2 Point) Point {
	return Pt(p.X+p2.X, p.Y+p2.Y)
}

// Sub returns p-p2.
func (p Point) Sub(p2 Point) Point {
	return Pt(p.X-p2.X, p.Y-p2.Y)
}

// Mul multiplies p by p2 component-wise.
func (p Point) Mul(p2 Point) Point {
	return Pt(p.X*p2.X, p.Y*p2.Y)
}

// Div divides p by p2 component-wise.
func (p Point) Div(p2 Point) Point {
	return Pt(p.X/p2.X, p.Y/p2.Y)
}

// Scale returns p with both coordinates multiplied by s.
func (p Point) Scale(s float32) Point {
	return Pt(p.X*s, p.Y*s)
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Pt(-p.X, -p.Y)
}

// Equals reports whether p and p2 are exactly equal.
func (p Point) Equals(p2 Point) bool {
	return p == p2
}

// Near reports whether both coordinates of p and p2 are equal within
// [Epsilon].
func (p Point) Near(p2 Point) bool {
	return Compare(p.X, p2.X) == 0 && Compare(p.Y, p2.Y) == 0
}

// Size returns p as a Size with X as the width and Y as the height.
func (p Point) Size() Size {
	return Sz(p.X, p.Y)
}

// Rotated returns p rotated by radians around origin. Sine and cosine
// values within [Epsilon] of zero are treated as zero so that quarter
// turns land on exact coordinates.
func (p Point) Rotated(radians float32, origin Point) Point {
	sin, cos := math.Sincos(float64(radians))
	sa, ca := float32(sin), float32(cos)
	if CloseToZero(sa) {
		sa = 0
	}
	if CloseToZero(ca) {
		ca = 0
	}

	s := p.Sub(origin)
	return Pt(
		ca*s.X-sa*s.Y+origin.X,
		sa*s.X+ca*s.Y+origin.Y,
	)
}

// RotatedDegrees is like [Point.Rotated] but takes the angle in
// degrees.
func (p Point) RotatedDegrees(degrees float32, origin Point) Point {
	return p.Rotated(degrees*math.Pi/180, origin)
}

// Fixed returns p with both coordinates snapped to half units, which
// is where one pixel wide lines render crisply.
func (p Point) Fixed() Point {
	return Pt(fixDim(p.X), fixDim(p.Y))
}

// Clamp returns p moved the minimum distance necessary to be inside
// of r. r is assumed to be normalized.
func (p Point) Clamp(r Rect) Point {
	return Pt(
		min(max(p.X, r.Left), r.Right),
		min(max(p.Y, r.Top), r.Bottom),
	)
}

// Size is a width and a height.
type Size struct {
	Width, Height float32
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

func (s Size) String() string {
	return formatFloat(s.Width) + "x" + formatFloat(s.Height)
}

func (s Size) Add(s2 Size) Size { return Sz(s.Width+s2.Width, s.Height+s2.Height) }

func (s Size) Sub(s2 Size) Size { return Sz(s.Width-s2.Width, s.Height-s2.Height) }

func (s Size) Mul(s2 Size) Size { return Sz(s.Width*s2.Width, s.Height*s2.Height) }

func (s Size) Scale(f float32) Size { return Sz(s.Width*f, s.Height*f) }

func (s Size) Div(f float32) Size { return Sz(s.Width/f, s.Height/f) }

// IsZero reports whether both dimensions are exactly zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Less reports whether either dimension is less than f.
func (s Size) Less(f float32) bool {
	return s.Width < f || s.Height < f
}

// Greater reports whether either dimension is greater than f.
func (s Size) Greater(f float32) bool {
	return s.Width > f || s.Height > f
}

// Point returns s as a Point.
func (s Size) Point() Point {
	return Pt(s.Width, s.Height)
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
