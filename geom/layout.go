package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits r at w units from its left edge into two rectangles
// arranged side by side.
func hsplit(r Rect, w float32) (left, right Rect) {
	left = r.WithWidth(w)
	right = Rt(r.Left+w, r.Top, r.Right, r.Bottom)
	return left, right
}

func hsplitHalf(r Rect) (left, right Rect) {
	return hsplit(r, r.Width()/2)
}

// vsplit splits r at h units from its top edge into two rectangles
// stacked vertically.
func vsplit(r Rect, h float32) (top, bottom Rect) {
	top = r.WithHeight(h)
	bottom = Rt(r.Left, r.Top+h, r.Right, r.Bottom)
	return top, bottom
}

func vsplitHalf(r Rect) (top, bottom Rect) {
	return vsplit(r, r.Height()/2)
}

// TileRightThenDown arranges tiles so that they split r into a series
// of rectangles that recursively halve the remaining space, first to
// the right and then downwards, alternating. In other words,
//
//	tiles := make([]geom.Rect, 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown(tiles []Rect, r Rect) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		if numtiles <= 0 {
			return
		}

		split, next := hsplitHalf, vsplitHalf

		c, n := r, r
		for range numtiles - 1 {
			c, n = split(n)
			if !yield(c) {
				return
			}
			split, next = next, split
		}

		yield(n)
	}
}

// TileEvenVertically arranges tiles so that they split r into even
// horizontal bands stacked from top to bottom.
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically(tiles []Rect, r Rect) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		if numtiles <= 0 {
			return
		}

		h := r.Height() / float32(numtiles)
		c, _ := vsplit(r, h)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Move(0, h)
		}
	}
}

// TileEvenHorizontally arranges tiles so that they split r into even
// columns from left to right.
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally(tiles []Rect, r Rect) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		if numtiles <= 0 {
			return
		}

		w := r.Width() / float32(numtiles)
		c, _ := hsplit(r, w)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Move(w, 0)
		}
	}
}

// TileRows arranges tiles into rows of at most cols columns that
// together cover r. Rows share the height of r evenly and every row
// shares its width evenly between its own tiles, so a short final row
// has wider tiles.
func TileRows(tiles []Rect, r Rect, cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows(numtiles int, r Rect, cols int) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		if numtiles <= 0 || cols <= 0 {
			return
		}

		numrows := (numtiles + cols - 1) / cols
		for row := range TiledEvenVertically(numrows, r) {
			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields first and then copies
// of it shifted downwards by its height, forever.
func VerticalStack(first Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		first = first.Canon()
		for {
			if !yield(first) {
				return
			}
			first = first.Move(0, first.Height())
		}
	}
}

// Align moves inner so that the specified edges line up with the
// corresponding edges of outer, stretching it if opposite edges are
// both specified. Along an axis with no specified edges inner is
// centered in outer.
func Align(outer, inner Rect, edges Edges) Rect {
	outer, inner = outer.Canon(), inner.Canon()
	inner = inner.MoveCenter(outer.Center())
	switch {
	case edges.Has(EdgeTop):
		inner = inner.MoveYOrigin(outer.Top)
		if edges.Has(EdgeBottom) {
			inner.Bottom = outer.Bottom
		}
	case edges.Has(EdgeBottom):
		inner = inner.MoveBottomRight(inner.Right, outer.Bottom)
	}
	switch {
	case edges.Has(EdgeLeft):
		inner = inner.MoveXOrigin(outer.Left)
		if edges.Has(EdgeRight) {
			inner.Right = outer.Right
		}
	case edges.Has(EdgeRight):
		inner = inner.MoveBottomRight(outer.Right, inner.Bottom)
	}

	return inner
}

func insertTilesFromSeq(tiles []Rect, s iter.Seq[Rect]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
