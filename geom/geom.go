// Package geom provides a single-precision 2D geometry kernel:
// rectangles, points, sizes and lines, compared with a tolerance of
// [Epsilon] so that layout and hit-testing code can tell touching
// edges apart from overlapping ones.
//
// It is patterned after image.Rectangle and image.Point, but keeps
// explicit left/top/right/bottom bounds, tolerates rectangles that
// have not been normalized, and adds relationship queries such as
// [Rect.Relate] and [Line.Crosses].
//
// All types are plain values. Queries never modify their receiver or
// their arguments, so every function in the package is safe to call
// from any number of goroutines.
package geom

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether all of the edges in e2 are set in e.
func (e Edges) Has(e2 Edges) bool {
	return e&e2 == e2
}
