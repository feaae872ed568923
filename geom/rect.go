package geom

import (
	"errors"
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// ErrEmpty is returned by the combining functions when they are given
// no rectangles at all.
var ErrEmpty = errors.New("no rectangles to combine")

// Rect is an axis-aligned rectangle described by its four bounds.
//
// A Rect is normalized when Left <= Right and Top <= Bottom. Rects may
// be unnormalized while they are being built up, and every query
// method works on normalized copies of its operands without modifying
// the originals.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// Rt is shorthand for Rect{Left: left, Top: top, Right: right, Bottom: bottom}.
func Rt(left, top, right, bottom float32) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectFromPoints returns the rectangle with the given corners.
func RectFromPoints(topLeft, bottomRight Point) Rect {
	return Rt(topLeft.X, topLeft.Y, bottomRight.X, bottomRight.Y)
}

// RectFromOriginSize returns the rectangle with its top-left corner
// at origin and the given size.
func RectFromOriginSize(origin Point, size Size) Rect {
	return Rt(origin.X, origin.Y, origin.X+size.Width, origin.Y+size.Height)
}

// RectFromSize returns the rectangle of the given size with its
// top-left corner at the origin.
func RectFromSize(size Size) Rect {
	return Rt(0, 0, size.Width, size.Height)
}

// CenteredRect returns the rectangle of the given size centered on
// center.
func CenteredRect(center Point, size Size) Rect {
	return RectFromOriginSize(center.Sub(size.Div(2).Point()), size)
}

// CenteredSquare returns a square with sides of length side centered
// on center.
func CenteredSquare(center Point, side float32) Rect {
	return CenteredRect(center, Sz(side, side))
}

// ErrorRect returns the sentinel rectangle used to indicate that there
// is no meaningful result. All four of its bounds are the smallest
// positive normal float32. Use [Rect.IsErrorRect] to check for it.
func ErrorRect() Rect {
	return Rt(minNormal, minNormal, minNormal, minNormal)
}

// IsErrorRect reports whether r is exactly [ErrorRect].
func (r Rect) IsErrorRect() bool {
	return r == ErrorRect()
}

// InfiniteRect returns a rectangle that extends infinitely in every
// direction. It contains and intersects every finite rectangle.
func InfiniteRect() Rect {
	return Rt(inf(-1), inf(-1), inf(1), inf(1))
}

func (r Rect) String() string {
	return "Rect:(" + formatFloat(r.Left) + "," + formatFloat(r.Top) + ")(" +
		formatFloat(r.Width()) + "," + formatFloat(r.Height()) + ")"
}

// Normalize swaps the horizontal and vertical bounds of r as necessary
// so that Left <= Right and Top <= Bottom.
func (r *Rect) Normalize() {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
}

// Canon returns a normalized copy of r.
func (r Rect) Canon() Rect {
	r.Normalize()
	return r
}

// IsNormal reports whether r is normalized.
func (r Rect) IsNormal() bool {
	return r.Right >= r.Left && r.Bottom >= r.Top
}

// IsNull reports whether all four bounds are zero.
func (r Rect) IsNull() bool {
	return r == Rect{}
}

// Equals reports whether r and r2 have exactly the same bounds.
func (r Rect) Equals(r2 Rect) bool {
	return r == r2
}

func (r Rect) Width() float32  { return r.Right - r.Left }
func (r Rect) Height() float32 { return r.Bottom - r.Top }
func (r Rect) Area() float32   { return r.Width() * r.Height() }
func (r Rect) Size() Size      { return Sz(r.Width(), r.Height()) }

func (r Rect) Origin() Point      { return r.TopLeft() }
func (r Rect) TopLeft() Point     { return Pt(r.Left, r.Top) }
func (r Rect) TopRight() Point    { return Pt(r.Right, r.Top) }
func (r Rect) BottomLeft() Point  { return Pt(r.Left, r.Bottom) }
func (r Rect) BottomRight() Point { return Pt(r.Right, r.Bottom) }

// Center returns the point in the middle of r.
func (r Rect) Center() Point {
	return Pt((r.Left+r.Right)/2, (r.Top+r.Bottom)/2)
}

// Points returns the corners of r in the order top-left, top-right,
// bottom-left, bottom-right.
func (r Rect) Points() [4]Point {
	return [...]Point{r.TopLeft(), r.TopRight(), r.BottomLeft(), r.BottomRight()}
}

// ContainsPoint reports whether p is inside of r or on its boundary.
func (r Rect) ContainsPoint(p Point) bool {
	r = r.Canon()
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Combine returns the smallest rectangle that contains both r and r2.
func (r Rect) Combine(r2 Rect) Rect {
	return Rt(
		min(r.Left, r2.Left),
		min(r.Top, r2.Top),
		max(r.Right, r2.Right),
		max(r.Bottom, r2.Bottom),
	)
}

// CombineWith grows r in place to also contain r2.
func (r *Rect) CombineWith(r2 Rect) {
	*r = r.Combine(r2)
}

// CombineAll combines rects from left to right. A single rectangle is
// returned unchanged. If rects is empty, it returns [ErrorRect] and
// [ErrEmpty].
func CombineAll(rects []Rect) (Rect, error) {
	return CombineSeq(slices.Values(rects))
}

// CombineSeq is the same as [CombineAll] but takes the rectangles from
// an iterator.
func CombineSeq(rects iter.Seq[Rect]) (Rect, error) {
	c, last := ErrorRect(), -1
	for i, r := range xiter.Enumerate(rects) {
		if i == 0 {
			c = r
		} else {
			c.CombineWith(r)
		}
		last = i
	}

	if last < 0 {
		return c, ErrEmpty
	}
	return c, nil
}

// Intersects reports whether r and r2 overlap or touch. The operands
// are normalized before comparing, and the comparison is exact, so
// rectangles that share only an edge intersect.
func (r Rect) Intersects(r2 Rect) bool {
	r, r2 = r.Canon(), r2.Canon()
	return !(r.Right < r2.Left ||
		r2.Right < r.Left ||
		r.Bottom < r2.Top ||
		r2.Bottom < r.Top)
}

// Intersection returns the area shared by r and r2 and true, or false
// if there is none. If ignoreLine is true, an overlap with no width or
// no height, such as two rectangles touching along an edge, does not
// count. The returned rectangle must be ignored when ok is false.
func (r Rect) Intersection(r2 Rect, ignoreLine bool) (i Rect, ok bool) {
	r, r2 = r.Canon(), r2.Canon()
	if !r.Intersects(r2) {
		return Rect{}, false
	}

	i = Rt(
		max(r.Left, r2.Left),
		max(r.Top, r2.Top),
		min(r.Right, r2.Right),
		min(r.Bottom, r2.Bottom),
	)
	if ignoreLine && (CloseToZero(i.Width()) || CloseToZero(i.Height())) {
		return Rect{}, false
	}
	return i, true
}

// IsContainedIn reports whether r lies entirely inside of r2. Shared
// edges count as inside.
func (r Rect) IsContainedIn(r2 Rect) bool {
	r, r2 = r.Canon(), r2.Canon()
	return r.Left >= r2.Left &&
		r.Right <= r2.Right &&
		r.Top >= r2.Top &&
		r.Bottom <= r2.Bottom
}

// TopLine returns the top edge of r as a line from left to right.
func (r Rect) TopLine() Line { return Ln(r.TopLeft(), r.TopRight()) }

// LeftLine returns the left edge of r as a line from top to bottom.
func (r Rect) LeftLine() Line { return Ln(r.TopLeft(), r.BottomLeft()) }

// BottomLine returns the bottom edge of r as a line from left to right.
func (r Rect) BottomLine() Line { return Ln(r.BottomLeft(), r.BottomRight()) }

// RightLine returns the right edge of r as a line from top to bottom.
func (r Rect) RightLine() Line { return Ln(r.TopRight(), r.BottomRight()) }

// Lines yields the edges of r in the order top, left, bottom, right.
func (r Rect) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		_ = yield(r.TopLine()) &&
			yield(r.LeftLine()) &&
			yield(r.BottomLine()) &&
			yield(r.RightLine())
	}
}

// CrossesLine reports whether l crosses any of the edges of r.
func (r Rect) CrossesLine(l Line) bool {
	for edge := range r.Lines() {
		if l.Crosses(edge) {
			return true
		}
	}
	return false
}

// IDRect is a rectangle tagged with an identifier, for callers that
// need to track which rectangle a result came from.
type IDRect struct {
	Rect
	ID uint64
}
