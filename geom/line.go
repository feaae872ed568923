package geom

// Line is a straight line through two points. Either point may have
// infinite coordinates, in which case the line is unbounded in that
// direction; a line with both ends at infinity is a full infinite
// line and one with a single infinite end is a ray. See [Ln] for how
// the slope of such lines is determined.
//
// The zero Line is a degenerate segment at the origin.
type Line struct {
	Start, End Point

	// m and b hold the slope and intercept of lines that were built
	// from them, as they can't be recovered from infinite endpoints.
	m, b  float32
	fixed bool
}

// Ln returns the line segment from start to end.
//
// If only the x coordinates of the endpoints include an infinity, the
// result is horizontal through the y of the endpoint with a finite x,
// or through the middle of both y values if neither has one. Infinite
// y coordinates produce a vertical line in the same way. A line with
// infinities on both axes has no defined slope; see [Line.IsValid].
func Ln(start, end Point) Line {
	l := Line{Start: start, End: end}
	if l.IsVertical() || l.IsHorizontal() {
		return l
	}

	xinf := isInf(start.X) || isInf(end.X)
	yinf := isInf(start.Y) || isInf(end.Y)
	switch {
	case xinf && yinf:
		l.m, l.b = nan(), nan()
		l.fixed = true
	case xinf:
		l.m, l.b = 0, finiteAnchor(start.X, end.X, start.Y, end.Y)
		l.fixed = true
	case yinf:
		l.m, l.b = inf(1), finiteAnchor(start.Y, end.Y, start.X, end.X)
		l.fixed = true
	}
	return l
}

// finiteAnchor picks the coordinate on the other axis that belongs to
// the endpoint whose coordinate a1 or a2 is finite.
func finiteAnchor(a1, a2, o1, o2 float32) float32 {
	switch {
	case !isInf(a1):
		return o1
	case !isInf(a2):
		return o2
	}
	return (o1 + o2) / 2
}

// LineXY returns the line segment from (x1, y1) to (x2, y2).
func LineXY(x1, y1, x2, y2 float32) Line {
	return Ln(Pt(x1, y1), Pt(x2, y2))
}

// VerticalLine returns the infinite vertical line through x. Its own
// extent never prevents a crossing, but a finite line it is checked
// against only crosses it if the crossing point lies within that
// line's endpoints.
func VerticalLine(x float32) Line {
	return Line{
		Start: Pt(x, inf(-1)),
		End:   Pt(x, inf(1)),
		m:     inf(1),
		b:     x,
		fixed: true,
	}
}

// HorizontalLine returns the infinite horizontal line through y. Like
// [VerticalLine], it only crosses a finite line whose endpoints
// enclose the crossing point.
func HorizontalLine(y float32) Line {
	return Line{
		Start: Pt(inf(-1), y),
		End:   Pt(inf(1), y),
		m:     0,
		b:     y,
		fixed: true,
	}
}

// SlopedLine returns the infinite line y = m*x + b. An infinite m
// produces the vertical line through x = b. The endpoints of a sloped
// line are infinite on both axes, so passing them to [Ln] does not
// recover the line.
func SlopedLine(m, b float32) Line {
	switch {
	case isInf(m):
		return VerticalLine(b)
	case m == 0:
		return HorizontalLine(b)
	}

	l := Line{m: m, b: b, fixed: true}
	if m > 0 {
		l.Start, l.End = Pt(inf(-1), inf(-1)), Pt(inf(1), inf(1))
	} else {
		l.Start, l.End = Pt(inf(-1), inf(1)), Pt(inf(1), inf(-1))
	}
	return l
}

// Ray returns the half-line that starts at start and continues with
// slope m. If forward is true, the ray runs towards increasing values
// along its dominant axis, x for shallow slopes and y for steep ones,
// and otherwise towards decreasing values. An infinite m produces a
// vertical ray.
func Ray(start Point, m float32, forward bool) Line {
	dir := 1
	if !forward {
		dir = -1
	}

	l := Line{Start: start, m: m, fixed: true}
	switch {
	case isInf(m):
		l.m = inf(1)
		l.b = start.X
		l.End = Pt(start.X, inf(dir))
	case abs(m) > 1:
		l.b = start.Y - m*start.X
		l.End = Pt(inf(dir*sign(m)), inf(dir))
	case m == 0:
		l.b = start.Y
		l.End = Pt(inf(dir), start.Y)
	default:
		l.b = start.Y - m*start.X
		l.End = Pt(inf(dir), inf(dir*sign(m)))
	}
	return l
}

func sign(f float32) int {
	if f < 0 {
		return -1
	}
	return 1
}

func (l Line) String() string {
	return l.Start.String() + "-" + l.End.String()
}

// IsVertical reports whether the endpoints share an x coordinate.
func (l Line) IsVertical() bool {
	return Compare(l.Start.X, l.End.X) == 0
}

// IsHorizontal reports whether the endpoints share a y coordinate.
func (l Line) IsHorizontal() bool {
	return Compare(l.Start.Y, l.End.Y) == 0
}

// SlopeIntercept returns the slope m and intercept b of l such that
// y = m*x + b. Vertical lines return an infinite m and their x
// coordinate as b. Both are NaN if l is not valid.
func (l Line) SlopeIntercept() (m, b float32) {
	switch {
	case l.fixed:
		return l.m, l.b
	case l.IsVertical():
		return inf(1), l.Start.X
	case l.IsHorizontal():
		return 0, l.Start.Y
	}

	m = (l.End.Y - l.Start.Y) / (l.End.X - l.Start.X)
	return m, l.Start.Y - m*l.Start.X
}

// IsValid reports whether l has a defined slope and intercept. Lines
// from [Ln] whose endpoints are infinite on both axes do not, and they
// never cross or contain anything.
func (l Line) IsValid() bool {
	m, b := l.SlopeIntercept()
	return !isNaN(m) && !isNaN(b)
}

// XInLine reports whether x lies between the x coordinates of the
// endpoints, inclusive.
func (l Line) XInLine(x float32) bool {
	return between(x, l.Start.X, l.End.X)
}

// YInLine reports whether y lies between the y coordinates of the
// endpoints, inclusive.
func (l Line) YInLine(y float32) bool {
	return between(y, l.Start.Y, l.End.Y)
}

// spans reports whether p, assumed to be on the line through l, is
// inside of l's extent. The extent is measured along x for shallow
// lines and along y for steep ones, since the other axis barely
// changes and would magnify rounding error.
func (l Line) spans(p Point, m float32) bool {
	if abs(m) > 1 {
		return l.YInLine(p.Y)
	}
	return l.XInLine(p.X)
}

func between(v, a, b float32) bool {
	return Compare(v, min(a, b)) >= 0 && Compare(v, max(a, b)) <= 0
}

// ContainsPoint reports whether p lies on l within [Epsilon].
func (l Line) ContainsPoint(p Point) bool {
	m, b := l.SlopeIntercept()
	if isInf(m) {
		return Compare(p.X, b) == 0 && l.YInLine(p.Y)
	}
	if Compare(m*p.X+b, p.Y) != 0 {
		return false
	}
	return l.spans(p, m)
}

// Intersection returns the point at which l and other cross. It
// returns false if they don't. Parallel lines never cross, even when
// they lie on top of each other.
func (l Line) Intersection(other Line) (Point, bool) {
	if !l.IsValid() || !other.IsValid() {
		return Point{}, false
	}

	m1, b1 := l.SlopeIntercept()
	m2, b2 := other.SlopeIntercept()

	var p Point
	switch v1, v2 := isInf(m1), isInf(m2); {
	case v1 && v2:
		return Point{}, false
	case v1:
		p.X = b1
		p.Y = m2*p.X + b2
	case v2:
		p.X = b2
		p.Y = m1*p.X + b1
	default:
		if Compare(m1, m2) == 0 {
			return Point{}, false
		}
		p.X = (b1 - b2) / (m2 - m1)
		p.Y = m1*p.X + b1
	}

	if !l.spans(p, m1) || !other.spans(p, m2) {
		return Point{}, false
	}
	return p, true
}

// Crosses reports whether l and other cross each other. See
// [Line.Intersection].
func (l Line) Crosses(other Line) bool {
	_, ok := l.Intersection(other)
	return ok
}
