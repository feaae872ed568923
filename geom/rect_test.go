package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

var testRect = geom.Rt(100, 100, 200, 200)

func TestRectNormalize(t *testing.T) {
	rects := []geom.Rect{
		geom.Rt(200, 200, 100, 100),
		geom.Rt(100, 200, 200, 100),
		geom.Rt(200, 100, 100, 200),
		testRect,
		geom.Rt(-5, 3, -10, -3),
	}

	for _, r := range rects {
		once := r
		once.Normalize()
		require.True(t, once.IsNormal(), "%v", r)
		require.LessOrEqual(t, once.Left, once.Right)
		require.LessOrEqual(t, once.Top, once.Bottom)

		twice := once
		twice.Normalize()
		require.Equal(t, once, twice)
		require.Equal(t, once, r.Canon())
	}
}

func TestRectQueriesDoNotModify(t *testing.T) {
	a := geom.Rt(200, 200, 100, 100)
	b := geom.Rt(250, 150, 150, 50)
	a0, b0 := a, b

	a.Intersects(b)
	a.Intersection(b, false)
	a.IsContainedIn(b)
	a.Relate(b)
	a.RelateEdges(b)

	require.Equal(t, a0, a)
	require.Equal(t, b0, b)
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Rect
		want bool
	}{
		{"overlapping", testRect, geom.Rt(150, 150, 250, 250), true},
		{"disjoint horizontally", testRect, geom.Rt(210, 100, 300, 200), false},
		{"disjoint vertically", testRect, geom.Rt(100, 210, 200, 300), false},
		{"touching edge", testRect, geom.Rt(200, 100, 300, 200), true},
		{"touching corner", testRect, geom.Rt(200, 200, 300, 300), true},
		{"contained", testRect, geom.Rt(110, 110, 190, 190), true},
		{"unnormalized", testRect, geom.Rt(250, 250, 150, 150), true},
		{"infinite", testRect, geom.InfiniteRect(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Intersects(tt.b))
			require.Equal(t, tt.want, tt.b.Intersects(tt.a), "reversed")
		})
	}
}

func TestRectIntersection(t *testing.T) {
	tests := []struct {
		name       string
		a, b       geom.Rect
		ignoreLine bool
		want       geom.Rect
		ok         bool
	}{
		{"overlap", testRect, geom.Rt(150, 150, 250, 250), true, geom.Rt(150, 150, 200, 200), true},
		{"disjoint", testRect, geom.Rt(10, 10, 20, 20), false, geom.Rect{}, false},
		{"edge ignored", testRect, geom.Rt(200, 100, 300, 200), true, geom.Rect{}, false},
		{"edge kept", testRect, geom.Rt(200, 100, 300, 200), false, geom.Rt(200, 100, 200, 200), true},
		{"corner kept", testRect, geom.Rt(200, 200, 300, 300), false, geom.Rt(200, 200, 200, 200), true},
		{"unnormalized", geom.Rt(200, 200, 100, 100), geom.Rt(250, 250, 150, 150), true, geom.Rt(150, 150, 200, 200), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersection(tt.b, tt.ignoreLine)
			require.Equal(t, tt.ok, ok)
			if ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRectIsContainedIn(t *testing.T) {
	require.True(t, testRect.IsContainedIn(geom.InfiniteRect()))
	require.True(t, testRect.IsContainedIn(testRect))
	require.True(t, geom.Rt(110, 110, 190, 190).IsContainedIn(testRect))
	require.True(t, geom.Rt(190, 190, 110, 110).IsContainedIn(testRect))
	require.False(t, geom.Rt(90, 110, 190, 190).IsContainedIn(testRect))
	require.False(t, testRect.IsContainedIn(geom.Rt(110, 110, 190, 190)))
}

func TestRectContainedImpliesIntersection(t *testing.T) {
	pairs := [][2]geom.Rect{
		{geom.Rt(110, 110, 190, 190), testRect},
		{testRect, testRect},
		{geom.Rt(190, 120, 110, 180), testRect},
		{testRect, geom.InfiniteRect()},
		{geom.Rt(100, 100, 100, 200), testRect},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		require.True(t, a.IsContainedIn(b))
		require.True(t, a.Intersects(b))

		i, ok := a.Intersection(b, false)
		require.True(t, ok)
		require.Equal(t, a.Canon(), i)
	}
}

func TestCombine(t *testing.T) {
	a := geom.Rt(0, 0, 10, 10)
	b := geom.Rt(5, -5, 20, 5)
	require.Equal(t, geom.Rt(0, -5, 20, 10), a.Combine(b))
	require.Equal(t, a.Combine(b), b.Combine(a))

	a.CombineWith(b)
	require.Equal(t, geom.Rt(0, -5, 20, 10), a)
}

func TestCombineAll(t *testing.T) {
	single := geom.Rt(5, 5, 1, 1)
	r, err := geom.CombineAll([]geom.Rect{single})
	require.NoError(t, err)
	require.Equal(t, single, r)

	r, err = geom.CombineAll([]geom.Rect{
		geom.Rt(0, 0, 10, 10),
		geom.Rt(20, 20, 30, 30),
		geom.Rt(-5, 5, 0, 8),
	})
	require.NoError(t, err)
	require.Equal(t, geom.Rt(-5, 0, 30, 30), r)

	r, err = geom.CombineAll(nil)
	require.ErrorIs(t, err, geom.ErrEmpty)
	require.True(t, r.IsErrorRect())

	r, err = geom.CombineSeq(slices.Values([]geom.Rect{testRect, geom.Rt(0, 0, 1, 1)}))
	require.NoError(t, err)
	require.Equal(t, geom.Rt(0, 0, 200, 200), r)

	r, err = geom.CombineSeq(slices.Values([]geom.Rect{}))
	require.ErrorIs(t, err, geom.ErrEmpty)
	require.True(t, r.IsErrorRect())

	r, err = geom.CombineSeq(slices.Values([]geom.Rect{testRect}))
	require.NoError(t, err)
	require.Equal(t, testRect, r)
}

func TestSentinelRects(t *testing.T) {
	require.True(t, geom.ErrorRect().IsErrorRect())
	require.False(t, geom.Rect{}.IsErrorRect())
	require.False(t, testRect.IsErrorRect())
	require.True(t, geom.Rect{}.IsNull())
	require.False(t, geom.ErrorRect().IsNull())
}

func TestRectAccessors(t *testing.T) {
	r := geom.Rt(10, 20, 40, 60)
	require.Equal(t, float32(30), r.Width())
	require.Equal(t, float32(40), r.Height())
	require.Equal(t, float32(1200), r.Area())
	require.Equal(t, float32(50), r.DiagonalLength())
	require.Equal(t, geom.Sz(30, 40), r.Size())
	require.Equal(t, geom.Pt(25, 40), r.Center())
	require.Equal(t, [...]geom.Point{
		geom.Pt(10, 20), geom.Pt(40, 20), geom.Pt(10, 60), geom.Pt(40, 60),
	}, r.Points())
	require.Equal(t, "Rect:(10,20)(30,40)", r.String())
	require.True(t, r.ContainsPoint(geom.Pt(10, 60)))
	require.False(t, r.ContainsPoint(geom.Pt(9, 60)))
}

func TestRectContainsPointUnnormalized(t *testing.T) {
	r := geom.Rt(200, 200, 100, 100)
	require.True(t, r.ContainsPoint(geom.Pt(150, 150)))
	require.True(t, r.ContainsPoint(geom.Pt(100, 200)))
	require.False(t, r.ContainsPoint(geom.Pt(250, 150)))
	require.Equal(t, geom.Rt(200, 200, 100, 100), r)
}

func TestRectConstructors(t *testing.T) {
	require.Equal(t, geom.Rt(1, 2, 3, 4), geom.RectFromPoints(geom.Pt(1, 2), geom.Pt(3, 4)))
	require.Equal(t, geom.Rt(1, 2, 4, 6), geom.RectFromOriginSize(geom.Pt(1, 2), geom.Sz(3, 4)))
	require.Equal(t, geom.Rt(0, 0, 3, 4), geom.RectFromSize(geom.Sz(3, 4)))
	require.Equal(t, geom.Rt(8, 7, 12, 13), geom.CenteredRect(geom.Pt(10, 10), geom.Sz(4, 6)))
	require.Equal(t, geom.Rt(9, 9, 11, 11), geom.CenteredSquare(geom.Pt(10, 10), 2))
}

func TestRectTransforms(t *testing.T) {
	r := geom.Rt(10, 20, 40, 60)
	require.Equal(t, geom.Rt(15, 15, 45, 55), r.Move(5, -5))
	require.Equal(t, geom.Rt(20, 40, 80, 120), r.Scale(2))
	require.Equal(t, geom.Rt(20, 60, 80, 180), r.ScaleXY(geom.Pt(2, 3)))
	require.Equal(t, geom.Rt(0, 0, 30, 40), r.MoveOrigin(0, 0))
	require.Equal(t, geom.Rt(70, 60, 100, 100), r.MoveBottomRight(100, 100))
	require.Equal(t, geom.Rt(-15, -20, 15, 20), r.MoveCenter(geom.Pt(0, 0)))
	require.Equal(t, geom.Rt(10, 20, 15, 27), r.WithSize(geom.Sz(5, 7)))
	require.Equal(t, geom.Rt(5, 18, 45, 62), r.Grow(10, 4))
	require.Equal(t, geom.Rt(17.5, 30, 32.5, 50), r.Shrink(0.5))
	require.Equal(t, geom.Rt(9.5, 19.5, 39.5, 59.5), r.Fixed())
}

func TestRectRotatedBounds(t *testing.T) {
	r := geom.Rt(0, 0, 20, 10)

	b := r.RotatedBounds(90, geom.Pt(0, 0))
	require.InDelta(t, -10, b.Left, 1e-4)
	require.InDelta(t, 0, b.Top, 1e-4)
	require.InDelta(t, 0, b.Right, 1e-4)
	require.InDelta(t, 20, b.Bottom, 1e-4)
	require.True(t, b.IsNormal())

	b = r.RotatedBounds(45, r.Center())
	require.InDelta(t, 30/1.41421356, b.Width(), 1e-3)
	require.InDelta(t, 30/1.41421356, b.Height(), 1e-3)
	require.InDelta(t, 10, b.Center().X, 1e-3)
	require.InDelta(t, 5, b.Center().Y, 1e-3)

	shift := r.RotateShift(90, geom.Pt(0, 0))
	require.InDelta(t, 20, shift.Width, 1e-4)
	require.InDelta(t, 0, shift.Height, 1e-4)
}

func TestRectLines(t *testing.T) {
	var lines []geom.Line
	for l := range testRect.Lines() {
		lines = append(lines, l)
	}
	require.Equal(t, []geom.Line{
		testRect.TopLine(),
		testRect.LeftLine(),
		testRect.BottomLine(),
		testRect.RightLine(),
	}, lines)

	require.True(t, testRect.CrossesLine(geom.LineXY(0, 150, 300, 150)))
	require.True(t, testRect.CrossesLine(geom.HorizontalLine(150)))
	require.False(t, testRect.CrossesLine(geom.LineXY(0, 0, 50, 300)))
	require.False(t, testRect.CrossesLine(geom.LineXY(120, 120, 180, 130)))
}

func BenchmarkIntersects(b *testing.B) {
	other := geom.Rt(150, 150, 250, 250)
	for b.Loop() {
		testRect.Intersects(other)
	}
}
