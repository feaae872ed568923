package geom

// Relation describes how a rectangle relates to another one. It is
// produced by [Rect.Relate] and [Rect.RelateEdges].
type Relation struct {
	// Interference is true if the rectangles touch or overlap. If it
	// is false, every other field is false as well.
	Interference bool

	// Crossover is true if the rectangles overlap with a non-empty
	// area but neither one contains the other.
	Crossover bool

	// Left, Top, Right and Bottom mark the edges of the receiver that
	// take part in a crossover by lying inside of the other
	// rectangle. When shared edges are requested, an edge is also
	// marked if it coincides with an edge of the other rectangle.
	Left, Top, Right, Bottom bool

	// The remaining fields are only set by RelateEdges. Each one
	// marks a pair of edges, the receiver's first, that coincide.
	LeftLeft, LeftRight, RightLeft, RightRight bool
	TopTop, TopBottom, BottomTop, BottomBottom bool
}

// Edges returns the edge flags of rel as a bitmask.
func (rel Relation) Edges() Edges {
	var e Edges
	if rel.Top {
		e |= EdgeTop
	}
	if rel.Bottom {
		e |= EdgeBottom
	}
	if rel.Left {
		e |= EdgeLeft
	}
	if rel.Right {
		e |= EdgeRight
	}
	return e
}

// Relate classifies how r relates to r2. Bounds are compared with
// [Compare], so edges within [Epsilon] of each other are considered to
// coincide.
func (r Rect) Relate(r2 Rect) Relation {
	return r.relate(r2, false)
}

// RelateEdges is like [Rect.Relate] but additionally reports which
// edges of the two rectangles coincide.
func (r Rect) RelateEdges(r2 Rect) Relation {
	return r.relate(r2, true)
}

// Crosses reports whether r and r2 partially overlap. It is shorthand
// for r.Relate(r2).Crossover.
func (r Rect) Crosses(r2 Rect) bool {
	return r.Relate(r2).Crossover
}

func (r Rect) relate(r2 Rect, shared bool) (rel Relation) {
	r, r2 = r.Canon(), r2.Canon()

	leftright := Compare(r.Left, r2.Right)
	rightleft := Compare(r.Right, r2.Left)
	topbottom := Compare(r.Top, r2.Bottom)
	bottomtop := Compare(r.Bottom, r2.Top)
	rightright := Compare(r.Right, r2.Right)
	bottombottom := Compare(r.Bottom, r2.Bottom)

	rel.Interference = !(rightleft == -1 ||
		leftright == 1 ||
		bottomtop == -1 ||
		topbottom == 1)
	if !rel.Interference {
		return rel
	}

	leftleft := Compare(r.Left, r2.Left)
	toptop := Compare(r.Top, r2.Top)

	// Either r starts inside of r2 or r starts before r2 and reaches
	// into it. Touching edges don't overlap.
	overlapX := (leftleft >= 0 && leftright == -1) || (leftleft == -1 && rightleft == 1)
	overlapY := (toptop >= 0 && topbottom == -1) || (toptop == -1 && bottomtop == 1)

	inside := leftleft >= 0 && toptop >= 0 && rightright <= 0 && bottombottom <= 0
	outside := leftleft <= 0 && toptop <= 0 && rightright >= 0 && bottombottom >= 0

	rel.Crossover = overlapX && overlapY && !inside && !outside
	if rel.Crossover {
		rel.Left = leftleft == 1
		rel.Top = toptop == 1
		rel.Right = rightright == -1
		rel.Bottom = bottombottom == -1
	}

	if shared {
		rel.LeftLeft = leftleft == 0
		rel.LeftRight = leftright == 0
		rel.RightLeft = rightleft == 0
		rel.RightRight = rightright == 0
		rel.TopTop = toptop == 0
		rel.TopBottom = topbottom == 0
		rel.BottomTop = bottomtop == 0
		rel.BottomBottom = bottombottom == 0

		rel.Left = rel.Left || rel.LeftLeft || rel.LeftRight
		rel.Right = rel.Right || rel.RightLeft || rel.RightRight
		rel.Top = rel.Top || rel.TopTop || rel.TopBottom
		rel.Bottom = rel.Bottom || rel.BottomTop || rel.BottomBottom
	}

	return rel
}
