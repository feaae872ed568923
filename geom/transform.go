package geom

// Translate returns r moved by p.
func (r Rect) Translate(p Point) Rect {
	return Rt(r.Left+p.X, r.Top+p.Y, r.Right+p.X, r.Bottom+p.Y)
}

// Move returns r moved by dx horizontally and dy vertically.
func (r Rect) Move(dx, dy float32) Rect {
	return r.Translate(Pt(dx, dy))
}

// Scale returns r with every bound multiplied by s.
func (r Rect) Scale(s float32) Rect {
	return Rt(r.Left*s, r.Top*s, r.Right*s, r.Bottom*s)
}

// ScaleXY returns r with its horizontal bounds multiplied by p.X and
// its vertical bounds by p.Y.
func (r Rect) ScaleXY(p Point) Rect {
	return Rt(r.Left*p.X, r.Top*p.Y, r.Right*p.X, r.Bottom*p.Y)
}

// MoveOrigin returns r moved so that its top-left corner is at (x, y).
func (r Rect) MoveOrigin(x, y float32) Rect {
	return r.MoveXOrigin(x).MoveYOrigin(y)
}

// MoveXOrigin returns r moved horizontally so that Left is x.
func (r Rect) MoveXOrigin(x float32) Rect {
	return Rt(x, r.Top, x+r.Width(), r.Bottom)
}

// MoveYOrigin returns r moved vertically so that Top is y.
func (r Rect) MoveYOrigin(y float32) Rect {
	return Rt(r.Left, y, r.Right, y+r.Height())
}

// MoveBottomRight returns r moved so that its bottom-right corner is
// at (right, bottom).
func (r Rect) MoveBottomRight(right, bottom float32) Rect {
	return Rt(right-r.Width(), bottom-r.Height(), right, bottom)
}

// MoveCenter returns r moved so that its center is at c.
func (r Rect) MoveCenter(c Point) Rect {
	return r.Translate(c.Sub(r.Center()))
}

// WithWidth returns r with Right adjusted to give it width w.
func (r Rect) WithWidth(w float32) Rect {
	r.Right = r.Left + w
	return r
}

// WithHeight returns r with Bottom adjusted to give it height h.
func (r Rect) WithHeight(h float32) Rect {
	r.Bottom = r.Top + h
	return r
}

// WithSize returns r with its bottom-right corner adjusted to give it
// the specified size.
func (r Rect) WithSize(s Size) Rect {
	return r.WithWidth(s.Width).WithHeight(s.Height)
}

// Grow returns r expanded by dx horizontally and dy vertically, split
// evenly between opposite edges. Negative amounts shrink it.
func (r Rect) Grow(dx, dy float32) Rect {
	return Rt(r.Left-dx/2, r.Top-dy/2, r.Right+dx/2, r.Bottom+dy/2)
}

// Shrink returns r resized around its center to toPercent of its
// current width and height, where 1 is the current size.
func (r Rect) Shrink(toPercent float32) Rect {
	s := r.Size().Scale(toPercent)
	return RectFromOriginSize(
		r.TopLeft().Sub(s.Sub(r.Size()).Div(2).Point()),
		s,
	)
}

// Fixed returns r with every bound snapped to a half unit. See
// [Point.Fixed].
func (r Rect) Fixed() Rect {
	return RectFromPoints(r.TopLeft().Fixed(), r.BottomRight().Fixed())
}

// DiagonalLength returns the distance between opposite corners of r.
func (r Rect) DiagonalLength() float32 {
	return hypot(r.Width(), r.Height())
}

// RotatedPoints returns the corners of r, in the order of
// [Rect.Points], rotated by radians around origin.
func (r Rect) RotatedPoints(radians float32, origin Point) [4]Point {
	points := r.Points()
	for i, p := range points {
		points[i] = p.Rotated(radians, origin)
	}
	return points
}

// RotatedBounds returns the smallest axis-aligned rectangle that
// contains r after it has been rotated by degrees around origin.
func (r Rect) RotatedBounds(degrees float32, origin Point) Rect {
	bounds := Rt(inf(1), inf(1), inf(-1), inf(-1))
	for _, p := range r.Points() {
		p = p.RotatedDegrees(degrees, origin)
		bounds.Left = min(bounds.Left, p.X)
		bounds.Right = max(bounds.Right, p.X)
		bounds.Top = min(bounds.Top, p.Y)
		bounds.Bottom = max(bounds.Bottom, p.Y)
	}
	return bounds
}

// RotateShift returns the offset that has to be applied after rotating
// r by degrees around origin and then moving it back to the origin so
// that the rotated content starts at the origin again.
func (r Rect) RotateShift(degrees float32, origin Point) Size {
	base := r.RotatedBounds(degrees, origin).MoveOrigin(0, 0)
	return base.RotatedBounds(degrees, Point{}).TopLeft().Neg().Size()
}
